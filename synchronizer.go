package framesync

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/heathj/framesync/dom"
)

// Synchronizer wires frame resizing into a document's lifecycle: a
// child-list observer over the whole body subtree, plus a once listener on
// each frame's inner window load. It keeps no height state of its own; the
// document is the only record of what was written.
type Synchronizer struct {
	doc        *dom.HTMLDocument
	log        logrus.FieldLogger
	observer   *dom.MutationObserver
	loadHooked map[*dom.Node]struct{}
}

type Option func(*Synchronizer)

// WithLogger routes the synchronizer's debug output somewhere visible. The
// default logger discards everything.
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Synchronizer) { s.log = log }
}

// Attach registers the synchronizer on doc. On a document still loading, the
// observer is installed once DOMContentLoaded fires; on a parsed document it
// is installed immediately. Either way the first full scan runs right after
// installation.
func Attach(doc *dom.HTMLDocument, opts ...Option) *Synchronizer {
	s := &Synchronizer{
		doc:        doc,
		loadHooked: map[*dom.Node]struct{}{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		s.log = l
	}

	if doc.ReadyState == dom.Loading {
		doc.AddEventListener(dom.DOMContentLoadedEvent, func(*dom.Event) {
			s.initialize()
		}, dom.AddEventListenerOptions{Once: true})
	} else {
		s.initialize()
	}
	return s
}

func (s *Synchronizer) initialize() {
	s.observer = dom.NewMutationObserver(func(records []*dom.MutationRecord, _ *dom.MutationObserver) {
		s.log.WithField("records", len(records)).Debug("mutation batch")
		s.SyncAll()
	})
	target := s.doc.Body
	if target == nil {
		target = s.doc.Node
	}
	// Child-list only. The height writes below are attribute mutations, so
	// they can never feed back into the observer.
	s.observer.Observe(target, dom.MutationObserverInit{ChildList: true, Subtree: true})
	s.SyncAll()
}

// SyncAll rescans the whole document for iframes and resizes each one. Every
// batch triggers a full rescan rather than a walk of the added nodes:
// redundant for untouched frames but idempotent, and it catches frames whose
// content settled between batches.
func (s *Synchronizer) SyncAll() {
	iter := dom.NewNodeIterator(s.doc.GetElementsByTagName("iframe"))
	for iter.Next() {
		s.syncFrame(iter.Node())
	}
}

func (s *Synchronizer) syncFrame(n *dom.Node) {
	f, err := NewDOMFrame(n)
	if err != nil {
		s.log.WithError(err).Debug("skipping non-frame node")
		return
	}
	if err := Resize(f); err != nil {
		// Best effort: an unreadable inner document stays unsynchronized.
		s.log.WithError(err).Debug("resize failed")
	}

	if _, hooked := s.loadHooked[n]; hooked {
		return
	}
	w := f.ContentWindow()
	if w == nil {
		return
	}
	s.loadHooked[n] = struct{}{}
	w.AddEventListener(dom.LoadEvent, func(*dom.Event) {
		if err := Resize(f); err != nil {
			s.log.WithError(err).Debug("resize on frame load failed")
		}
	}, dom.AddEventListenerOptions{Once: true, Passive: true})
}

// Detach disconnects the mutation observer. Registered frame load listeners
// are once listeners and expire on their own.
func (s *Synchronizer) Detach() {
	if s.observer != nil {
		s.observer.Disconnect()
	}
}
