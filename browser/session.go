// Package browser runs the synchronizer against a real page. The dom package
// is enough for embedders that own their document model; this backend drives
// an actual browser over playwright and reaches into same-origin frames with
// small page-side evaluations.
package browser

import (
	"io"

	"github.com/pkg/errors"
	"github.com/playwright-community/playwright-go"
	"github.com/sirupsen/logrus"
)

// Session owns one playwright run, one browser, one page.
type Session struct {
	pw       *playwright.Playwright
	browser  playwright.Browser
	page     playwright.Page
	log      logrus.FieldLogger
	watching bool
}

type Options struct {
	Headless bool
	Logger   logrus.FieldLogger
}

// NewSession installs and starts playwright, launches chromium, and opens a
// blank page.
func NewSession(opts Options) (*Session, error) {
	runOpts := &playwright.RunOptions{
		Verbose: false,
		Stdout:  io.Discard,
		Stderr:  io.Discard,
	}
	if err := playwright.Install(runOpts); err != nil {
		return nil, errors.Wrap(err, "install playwright")
	}
	pw, err := playwright.Run(runOpts)
	if err != nil {
		return nil, errors.Wrap(err, "start playwright")
	}
	b, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(opts.Headless),
	})
	if err != nil {
		pw.Stop()
		return nil, errors.Wrap(err, "launch browser")
	}
	page, err := b.NewPage()
	if err != nil {
		b.Close()
		pw.Stop()
		return nil, errors.Wrap(err, "open page")
	}

	log := opts.Logger
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Session{pw: pw, browser: b, page: page, log: log}, nil
}

func (s *Session) Page() playwright.Page { return s.page }

func (s *Session) Navigate(url string) error {
	_, err := s.page.Goto(url)
	return errors.Wrap(err, "navigate")
}

func (s *Session) Close() error {
	if s.browser != nil {
		if err := s.browser.Close(); err != nil {
			s.log.WithError(err).Debug("browser close failed")
		}
	}
	if s.pw != nil {
		return s.pw.Stop()
	}
	return nil
}
