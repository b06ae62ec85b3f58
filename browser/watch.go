package browser

import (
	"github.com/pkg/errors"

	"github.com/heathj/framesync"
)

// SyncPage resizes every iframe currently on the page. Frames that refuse
// the read are logged and skipped; the rest are unaffected.
func (s *Session) SyncPage() error {
	handles, err := s.page.QuerySelectorAll("iframe")
	if err != nil {
		return errors.Wrap(err, "scan for frames")
	}
	for _, h := range handles {
		if err := framesync.Resize(NewFrame(h)); err != nil {
			s.log.WithError(err).Debug("resize failed")
		}
	}
	return nil
}

// observerScript is the page-side half of the synchronizer: a child-list
// observer over the body subtree pings the exposed binding once per batch.
// Every batch re-scans the document for frames, and each frame gets a once
// load listener the first time the scan sees it, so content that finishes
// loading after insertion still pings back. The WeakSet keeps rescans from
// stacking listeners on frames already hooked.
const observerScript = `
() => {
	const notify = () => window.__framesyncMutated && window.__framesyncMutated();
	const hooked = new WeakSet();
	const hookFrames = () => {
		for (const frame of document.querySelectorAll('iframe')) {
			if (hooked.has(frame)) {
				continue;
			}
			hooked.add(frame);
			frame.addEventListener('load', notify, { once: true, passive: true });
		}
	};
	new MutationObserver(() => { hookFrames(); notify(); }).observe(document.body, { childList: true, subtree: true });
	hookFrames();
}`

// Watch installs the page-side observer and re-syncs on every mutation batch
// and frame load. It returns once installed; callbacks arrive on
// playwright's dispatch goroutine for the life of the page. Watching an
// already watched session is a no-op: the binding and observer persist until
// the page goes away.
func (s *Session) Watch() error {
	if s.watching {
		return nil
	}
	err := s.page.ExposeFunction("__framesyncMutated", func(args ...interface{}) interface{} {
		if err := s.SyncPage(); err != nil {
			s.log.WithError(err).Debug("sync after mutation failed")
		}
		return nil
	})
	if err != nil {
		return errors.Wrap(err, "expose mutation binding")
	}
	if _, err := s.page.Evaluate(observerScript); err != nil {
		return errors.Wrap(err, "install observer")
	}
	s.watching = true
	return s.SyncPage()
}
