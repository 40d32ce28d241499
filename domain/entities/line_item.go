package entities

// LineItem is one parsed product entry: the product page URL plus the
// already-normalized quantity.
type LineItem struct {
	URL      string
	Quantity string
}

// FailureReason classifies why a product could not be added to the cart.
type FailureReason string

const (
	FailureNavigation  FailureReason = "navigation_failed"
	FailureInteraction FailureReason = "interaction_failed"
	FailureOutOfStock  FailureReason = "out_of_stock"
)

// CartEntryResult records the outcome of a single add-to-cart attempt.
// One is produced per attempted line item, in input order.
type CartEntryResult struct {
	URL      string        `json:"url"`
	Quantity string        `json:"qty"`
	Added    bool          `json:"added"`
	Reason   FailureReason `json:"reason,omitempty"`
}
