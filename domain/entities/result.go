package entities

// CheckoutOutcome tracks how far the checkout form got.
type CheckoutOutcome string

const (
	CheckoutPending CheckoutOutcome = "pending"
	CheckoutFilled  CheckoutOutcome = "filled"
	CheckoutFailed  CheckoutOutcome = "failed"
)

// Request status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// RequestResult is the externally visible artifact of one request,
// immutable after return.
type RequestResult struct {
	Status     string            `json:"status"`
	DurationMs int64             `json:"duration_ms"`
	Items      []CartEntryResult `json:"items"`
	Checkout   CheckoutOutcome   `json:"checkout"`
}
