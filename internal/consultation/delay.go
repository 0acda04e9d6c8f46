package consultation

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// Delayer simulates analysis latency before a turn is processed. It is a
// presentation concern kept out of the engine so the core stays deterministic.
type Delayer interface {
	// Wait blocks for the simulated duration or until ctx is done, in which
	// case it returns ctx's error.
	Wait(ctx context.Context) error
}

// RandomDelayer waits a uniformly random duration in [Min, Max].
type RandomDelayer struct {
	Min time.Duration
	Max time.Duration

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandomDelayer constructs a delayer over the given range.
func NewRandomDelayer(min, max time.Duration) *RandomDelayer {
	if max < min {
		max = min
	}
	return &RandomDelayer{
		Min: min,
		Max: max,
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (d *RandomDelayer) Wait(ctx context.Context) error {
	span := d.Max - d.Min
	wait := d.Min
	if span > 0 {
		d.mu.Lock()
		wait += time.Duration(d.rnd.Int63n(int64(span)))
		d.mu.Unlock()
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// NopDelayer waits for nothing; used in tests.
type NopDelayer struct{}

func (NopDelayer) Wait(ctx context.Context) error { return ctx.Err() }
