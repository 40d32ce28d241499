package entities

import "fmt"

// FormatError reports a quantity string that could not be parsed. It is
// scoped to a single product line and never aborts the batch.
type FormatError struct {
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid quantity format: %q", e.Input)
}

// NavigationError reports a failed page load. It is non-fatal during the
// product loop and fatal when the checkout page itself cannot be reached.
type NavigationError struct {
	URL string
	Err error
}

func (e *NavigationError) Error() string {
	return fmt.Sprintf("failed to load page %s: %v", e.URL, e.Err)
}

func (e *NavigationError) Unwrap() error { return e.Err }

// InteractionError reports an element that could not be found, filled or
// clicked within the action timeout. Never fatal.
type InteractionError struct {
	Selector string
	Err      error
}

func (e *InteractionError) Error() string {
	return fmt.Sprintf("interaction with %q failed: %v", e.Selector, e.Err)
}

func (e *InteractionError) Unwrap() error { return e.Err }
