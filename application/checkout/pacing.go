package checkout

import (
	"math/rand"
	"time"
)

// Delay bounds for the randomized pacing between automated actions,
// approximating human interaction timing.
var (
	pauseShort   = pause{300 * time.Millisecond, 800 * time.Millisecond}
	pauseField   = pause{200 * time.Millisecond, 600 * time.Millisecond}
	pauseBetween = pause{500 * time.Millisecond, 1200 * time.Millisecond}
)

type pause struct {
	min, max time.Duration
}

// Pacer inserts randomized delays between automated actions. The sleep
// function is injectable so tests run without waiting.
type Pacer struct {
	rng   *rand.Rand
	sleep func(time.Duration)
}

// NewPacer returns a Pacer backed by real sleeps.
func NewPacer() *Pacer {
	return &Pacer{
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
		sleep: time.Sleep,
	}
}

func (p *Pacer) wait(b pause) {
	span := int64(b.max - b.min)
	p.sleep(b.min + time.Duration(p.rng.Int63n(span+1)))
}

// BeforeClick pauses between writing an input and triggering the next
// control.
func (p *Pacer) BeforeClick() { p.wait(pauseShort) }

// BetweenFields pauses between checkout field writes.
func (p *Pacer) BetweenFields() { p.wait(pauseField) }

// BetweenItems pauses between product add-to-cart attempts.
func (p *Pacer) BetweenItems() { p.wait(pauseBetween) }
