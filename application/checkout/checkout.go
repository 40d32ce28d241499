package checkout

import (
	"context"

	"github.com/sirupsen/logrus"

	"checkout_bot/domain/entities"
	"checkout_bot/domain/interfaces"
)

// fieldBinding pairs a checkout form selector with the value to write.
type fieldBinding struct {
	selector string
	value    string
}

// checkoutFields returns the ordered selector/value bindings for the
// billing form. Order and coverage are part of the storefront contract.
func checkoutFields(info entities.CheckoutInfo) []fieldBinding {
	return []fieldBinding{
		{"#billing_email", info.Email},
		{"#billing_first_name", info.FirstName},
		{"#billing_last_name", info.LastName},
		{"#billing_cpf", info.CPF},
		{"#billing_postcode", info.CEP},
		{"#billing_address_1", info.Address1},
		{"#billing_number", info.Number},
		{"#billing_address_2", info.Address2},
		{"#billing_neighborhood", info.Neighborhood},
		{"#billing_city", info.City},
		{"#billing_phone", info.Phone},
	}
}

// CheckoutFiller fills the billing form on the checkout page.
type CheckoutFiller struct {
	page        interfaces.Page
	pacer       *Pacer
	checkoutURL string
	log         *logrus.Entry
}

// NewCheckoutFiller creates a checkout filler bound to one session's page.
func NewCheckoutFiller(page interfaces.Page, pacer *Pacer, checkoutURL string, log *logrus.Entry) *CheckoutFiller {
	return &CheckoutFiller{page: page, pacer: pacer, checkoutURL: checkoutURL, log: log}
}

// Fill navigates to the checkout page and writes every billing field. A
// field that cannot be written is skipped so one bad selector never blocks
// the rest of the form. A navigation failure aborts the whole request: no
// checkout can proceed without the page.
func (f *CheckoutFiller) Fill(ctx context.Context, info entities.CheckoutInfo) (entities.CheckoutOutcome, error) {
	f.log.Infof("navigating to checkout: %s", f.checkoutURL)
	if err := f.page.Navigate(ctx, f.checkoutURL); err != nil {
		f.log.Errorf("failed to reach checkout page: %v", err)
		return entities.CheckoutFailed, &entities.NavigationError{URL: f.checkoutURL, Err: err}
	}

	for _, field := range checkoutFields(info) {
		if err := f.page.Fill(ctx, field.selector, field.value); err != nil {
			f.log.Warnf("failed to fill %s: %v", field.selector, err)
		} else {
			f.log.Infof("filled: %s", field.selector)
		}
		f.pacer.BetweenFields()
	}

	f.selectState(ctx, info.State)

	return entities.CheckoutFilled, nil
}

// selectState drives the select2 widget for the billing state: open the
// container, type the two-letter code into its search box, confirm with
// Enter. Failures here are logged only.
func (f *CheckoutFiller) selectState(ctx context.Context, state string) {
	if err := f.page.Click(ctx, selStateContainer); err != nil {
		f.log.Warnf("failed to open state dropdown: %v", err)
		return
	}
	f.pacer.BeforeClick()

	if err := f.page.Fill(ctx, selStateSearch, state); err != nil {
		f.log.Warnf("failed to search state %q: %v", state, err)
		return
	}

	if err := f.page.Press(ctx, "Enter"); err != nil {
		f.log.Warnf("failed to confirm state %q: %v", state, err)
		return
	}

	f.log.Infof("state %q selected", state)
}
