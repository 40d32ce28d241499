package entities

// CheckoutInfo holds the buyer billing details written into the checkout
// form. The field set mirrors the WooCommerce billing form of the target
// storefront; address_2 is the only optional field.
type CheckoutInfo struct {
	Email        string `json:"email" binding:"required"`
	FirstName    string `json:"first_name" binding:"required"`
	LastName     string `json:"last_name" binding:"required"`
	CPF          string `json:"cpf" binding:"required"`
	CEP          string `json:"cep" binding:"required"`
	Address1     string `json:"address_1" binding:"required"`
	Number       string `json:"number" binding:"required"`
	Address2     string `json:"address_2"`
	Neighborhood string `json:"neighborhood" binding:"required"`
	City         string `json:"city" binding:"required"`
	State        string `json:"state" binding:"required,len=2"`
	Phone        string `json:"phone" binding:"required"`
}

// Payload is the validated body of one checkout request: product lines in
// "<url>:<quantity>" form plus the billing details.
type Payload struct {
	Produtos []string     `json:"produtos" binding:"required"`
	Checkout CheckoutInfo `json:"checkout" binding:"required"`
}
