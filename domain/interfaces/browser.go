package interfaces

import "context"

// Page drives a single browser tab. Every call is bounded by the session's
// uniform action timeout.
type Page interface {
	// Navigate loads the given URL.
	Navigate(ctx context.Context, url string) error

	// Fill writes value into the element matched by selector.
	Fill(ctx context.Context, selector, value string) error

	// Click clicks the element matched by selector.
	Click(ctx context.Context, selector string) error

	// ClickAndExpectResponse arms a wait for a network response whose URL
	// contains urlFragment and whose status is 2xx, then clicks selector.
	// The wait starts before the click fires so the response cannot slip
	// through a timing gap.
	ClickAndExpectResponse(ctx context.Context, selector, urlFragment string) error

	// Press sends a single keyboard key to the page.
	Press(ctx context.Context, key string) error

	// Content returns the rendered HTML of the current page.
	Content(ctx context.Context) (string, error)
}
