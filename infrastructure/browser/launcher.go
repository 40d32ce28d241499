package browser

import (
	"context"
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"
	"github.com/sirupsen/logrus"

	"checkout_bot/domain/interfaces"
)

// Options configure browser launches.
type Options struct {
	ActionTimeout time.Duration
	MaxSessions   int
	Headless      bool
}

// Launcher owns the Playwright driver and hands out one-shot browser
// sessions. A fixed pool of permits bounds how many sessions are open at
// once: each session holds a full Chromium process.
type Launcher struct {
	pw      *playwright.Playwright
	permits chan struct{}
	launch  func() (interfaces.Session, error)

	actionTimeout float64
	headless      bool
	log           *logrus.Entry
}

// NewLauncher starts the Playwright driver once for the process lifetime.
func NewLauncher(opts Options, log *logrus.Entry) (*Launcher, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	max := opts.MaxSessions
	if max < 1 {
		max = 1
	}

	l := &Launcher{
		pw:            pw,
		permits:       make(chan struct{}, max),
		actionTimeout: float64(opts.ActionTimeout.Milliseconds()),
		headless:      opts.Headless,
		log:           log,
	}
	l.launch = l.launchChromium
	return l, nil
}

// Acquire blocks until a session permit is free, then launches a fresh
// browser with one isolated context and one page. The caller must Release
// the returned session on every exit path.
func (l *Launcher) Acquire(ctx context.Context) (interfaces.Session, error) {
	select {
	case l.permits <- struct{}{}:
	case <-ctx.Done():
		return nil, fmt.Errorf("waiting for browser session: %w", ctx.Err())
	}

	s, err := l.launch()
	if err != nil {
		<-l.permits
		return nil, err
	}
	return s, nil
}

func (l *Launcher) launchChromium() (interfaces.Session, error) {
	l.log.Info("launching browser")
	browser, err := l.pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(l.headless),
		Args: []string{
			"--no-sandbox",
			"--disable-dev-shm-usage",
			"--disable-blink-features=AutomationControlled",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	browserCtx, err := browser.NewContext()
	if err != nil {
		browser.Close()
		return nil, fmt.Errorf("failed to create context: %w", err)
	}

	pg, err := browserCtx.NewPage()
	if err != nil {
		browserCtx.Close()
		browser.Close()
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	pg.SetDefaultTimeout(l.actionTimeout)
	pg.SetDefaultNavigationTimeout(l.actionTimeout)

	return &session{
		browser: browser,
		context: browserCtx,
		page:    &page{pw: pg, timeout: l.actionTimeout},
		release: func() { <-l.permits },
	}, nil
}

// Close stops the Playwright driver.
func (l *Launcher) Close() error {
	return l.pw.Stop()
}
