package checkout

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"checkout_bot/domain/entities"
	"checkout_bot/domain/interfaces"
)

// CartFiller adds each line item to the storefront cart, strictly one at a
// time: the page under automation handles a single navigation at a time and
// the pacing is meant to look human.
type CartFiller struct {
	page  interfaces.Page
	pacer *Pacer
	log   *logrus.Entry
}

// NewCartFiller creates a cart filler bound to one session's page.
func NewCartFiller(page interfaces.Page, pacer *Pacer, log *logrus.Entry) *CartFiller {
	return &CartFiller{page: page, pacer: pacer, log: log}
}

// Fill processes the items sequentially. A failed item is recorded and the
// loop moves on to the next one; results preserve input order.
func (f *CartFiller) Fill(ctx context.Context, items []entities.LineItem) []entities.CartEntryResult {
	results := make([]entities.CartEntryResult, 0, len(items))

	for _, item := range items {
		f.log.Infof("opening %s (qty=%s)", item.URL, item.Quantity)

		if err := f.page.Navigate(ctx, item.URL); err != nil {
			f.log.Errorf("failed to load product page %s: %v", item.URL, err)
			results = append(results, entities.CartEntryResult{
				URL:      item.URL,
				Quantity: item.Quantity,
				Reason:   entities.FailureNavigation,
			})
			continue
		}

		result := f.addToCart(ctx, item)
		results = append(results, result)

		if result.Added {
			f.pacer.BetweenItems()
		}
	}

	return results
}

func (f *CartFiller) addToCart(ctx context.Context, item entities.LineItem) entities.CartEntryResult {
	result := entities.CartEntryResult{URL: item.URL, Quantity: item.Quantity}

	if err := f.fillAndTrigger(ctx, item); err != nil {
		f.log.Warnf("failed to add product %s: %v", item.URL, err)
		result.Reason = f.classifyFailure(ctx, item.URL)
		return result
	}

	f.log.Infof("product added to cart: %s", item.URL)
	result.Added = true
	return result
}

func (f *CartFiller) fillAndTrigger(ctx context.Context, item entities.LineItem) error {
	if err := f.page.Fill(ctx, selQuantityInput, item.Quantity); err != nil {
		return err
	}
	f.pacer.BeforeClick()

	// The response wait is armed together with the click, so the wc-ajax
	// acknowledgment cannot be missed between trigger and wait.
	return f.page.ClickAndExpectResponse(ctx, selAddToCart, cartAjaxFragment)
}

func (f *CartFiller) classifyFailure(ctx context.Context, url string) entities.FailureReason {
	html, err := f.page.Content(ctx)
	if err == nil && strings.Contains(html, outOfStockPhrase) {
		f.log.Warnf("product out of stock: %s", url)
		return entities.FailureOutOfStock
	}
	return entities.FailureInteraction
}
