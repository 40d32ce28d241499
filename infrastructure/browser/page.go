package browser

import (
	"context"
	"strings"

	"github.com/playwright-community/playwright-go"

	"checkout_bot/domain/entities"
)

// page adapts a Playwright page to the domain Page interface. Timeouts are
// enforced by the page's default action timeout; the ctx parameter keeps
// the contract uniform for non-Playwright drivers.
type page struct {
	pw      playwright.Page
	timeout float64
}

func (p *page) Navigate(ctx context.Context, url string) error {
	if _, err := p.pw.Goto(url); err != nil {
		return &entities.NavigationError{URL: url, Err: err}
	}
	return nil
}

func (p *page) Fill(ctx context.Context, selector, value string) error {
	if err := p.pw.Locator(selector).Fill(value); err != nil {
		return &entities.InteractionError{Selector: selector, Err: err}
	}
	return nil
}

func (p *page) Click(ctx context.Context, selector string) error {
	if err := p.pw.Locator(selector).Click(); err != nil {
		return &entities.InteractionError{Selector: selector, Err: err}
	}
	return nil
}

// ClickAndExpectResponse runs the click inside Playwright's response
// expectation, so the wait is armed before the trigger fires and a fast
// acknowledgment is never missed.
func (p *page) ClickAndExpectResponse(ctx context.Context, selector, urlFragment string) error {
	matches := func(resp playwright.Response) bool {
		return strings.Contains(resp.URL(), urlFragment) &&
			resp.Status() >= 200 && resp.Status() < 300
	}

	_, err := p.pw.ExpectResponse(matches, func() error {
		return p.pw.Locator(selector).Click()
	}, playwright.PageExpectResponseOptions{
		Timeout: playwright.Float(p.timeout),
	})
	if err != nil {
		return &entities.InteractionError{Selector: selector, Err: err}
	}
	return nil
}

func (p *page) Press(ctx context.Context, key string) error {
	if err := p.pw.Keyboard().Press(key); err != nil {
		return &entities.InteractionError{Selector: "keyboard:" + key, Err: err}
	}
	return nil
}

func (p *page) Content(ctx context.Context) (string, error) {
	return p.pw.Content()
}
