package browser

import (
	"fmt"
	"strings"
	"sync"

	"github.com/playwright-community/playwright-go"

	"checkout_bot/domain/interfaces"
)

// session is one request's browser instance plus isolated context.
type session struct {
	browser playwright.Browser
	context playwright.BrowserContext
	page    *page
	release func()

	once sync.Once
	err  error
}

func (s *session) Page() interfaces.Page { return s.page }

// Release closes the context and the browser, then returns the session
// permit. Repeat calls are no-ops.
func (s *session) Release() error {
	s.once.Do(func() {
		if err := s.context.Close(); err != nil && !isClosedErr(err) {
			s.err = fmt.Errorf("failed to close context: %w", err)
		}
		if err := s.browser.Close(); err != nil && !isClosedErr(err) {
			if s.err != nil {
				s.err = fmt.Errorf("%v; failed to close browser: %w", s.err, err)
			} else {
				s.err = fmt.Errorf("failed to close browser: %w", err)
			}
		}
		s.release()
	})
	return s.err
}

// isClosedErr reports whether the error just says the target was already
// gone, which is not worth surfacing during teardown.
func isClosedErr(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "closed") || strings.Contains(msg, "target closed")
}
