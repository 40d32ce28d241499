package checkout

import (
	"context"
	"io"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"checkout_bot/domain/interfaces"
)

func testLogger() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}

func testPacer() *Pacer {
	return &Pacer{
		rng:   rand.New(rand.NewSource(1)),
		sleep: func(time.Duration) {},
	}
}

// fakePage records every operation in order and fails the ones it was told
// to fail.
type fakePage struct {
	ops []string

	navErr    map[string]error // url -> error
	fillErr   map[string]error // selector -> error
	clickErr  map[string]error // selector -> error
	expectErr map[string]error // url of last navigation -> error

	content    string
	contentErr error

	lastURL string
}

var _ interfaces.Page = (*fakePage)(nil)

func (p *fakePage) Navigate(_ context.Context, url string) error {
	p.ops = append(p.ops, "navigate:"+url)
	p.lastURL = url
	return p.navErr[url]
}

func (p *fakePage) Fill(_ context.Context, selector, value string) error {
	p.ops = append(p.ops, "fill:"+selector+"="+value)
	return p.fillErr[selector]
}

func (p *fakePage) Click(_ context.Context, selector string) error {
	p.ops = append(p.ops, "click:"+selector)
	return p.clickErr[selector]
}

func (p *fakePage) ClickAndExpectResponse(_ context.Context, selector, urlFragment string) error {
	p.ops = append(p.ops, "expect:"+selector+"~"+urlFragment)
	return p.expectErr[p.lastURL]
}

func (p *fakePage) Press(_ context.Context, key string) error {
	p.ops = append(p.ops, "press:"+key)
	return nil
}

func (p *fakePage) Content(_ context.Context) (string, error) {
	p.ops = append(p.ops, "content")
	return p.content, p.contentErr
}

// fakeSession counts releases so tests can assert exactly-once teardown.
type fakeSession struct {
	page     *fakePage
	releases int
}

func (s *fakeSession) Page() interfaces.Page { return s.page }

func (s *fakeSession) Release() error {
	s.releases++
	return nil
}

// fakePool hands out a fixed session, or fails acquisition.
type fakePool struct {
	session    *fakeSession
	acquireErr error
}

func (p *fakePool) Acquire(context.Context) (interfaces.Session, error) {
	if p.acquireErr != nil {
		return nil, p.acquireErr
	}
	return p.session, nil
}
