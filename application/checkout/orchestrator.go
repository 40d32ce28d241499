package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"checkout_bot/domain/entities"
	"checkout_bot/domain/interfaces"
)

// Orchestrator runs the full cart-then-checkout flow inside one browser
// session and assembles the request result.
type Orchestrator struct {
	pool        interfaces.SessionPool
	checkoutURL string
	log         *logrus.Entry
	newPacer    func() *Pacer
}

// NewOrchestrator wires the orchestrator to a session pool and the fixed
// checkout URL.
func NewOrchestrator(pool interfaces.SessionPool, checkoutURL string, log *logrus.Entry) *Orchestrator {
	return &Orchestrator{
		pool:        pool,
		checkoutURL: checkoutURL,
		log:         log,
		newPacer:    NewPacer,
	}
}

// Process executes one request end to end: acquire a session, add every
// product, fill the checkout form, report duration. The session is released
// on every exit path. On a fatal error no partial result is returned.
func (o *Orchestrator) Process(ctx context.Context, payload entities.Payload) (entities.RequestResult, error) {
	start := time.Now()
	o.log.Info("starting checkout run")

	session, err := o.pool.Acquire(ctx)
	if err != nil {
		return entities.RequestResult{}, fmt.Errorf("failed to acquire browser session: %w", err)
	}
	defer func() {
		if err := session.Release(); err != nil {
			o.log.Warnf("failed to release browser session: %v", err)
			return
		}
		o.log.Info("browser closed")
	}()

	pacer := o.newPacer()
	page := session.Page()

	items := ParseLineItems(payload.Produtos, o.log)
	results := NewCartFiller(page, pacer, o.log).Fill(ctx, items)

	outcome, err := NewCheckoutFiller(page, pacer, o.checkoutURL, o.log).Fill(ctx, payload.Checkout)
	if err != nil {
		return entities.RequestResult{}, err
	}

	return entities.RequestResult{
		Status:     entities.StatusSuccess,
		DurationMs: time.Since(start).Milliseconds(),
		Items:      results,
		Checkout:   outcome,
	}, nil
}
