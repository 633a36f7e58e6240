// Package presence simulates the "parents coding now" counter.
package presence

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/napstack/napstack/internal/clock"
)

const (
	DefaultStart    = 12
	DefaultMin      = 8
	DefaultMax      = 15
	DefaultInterval = 45 * time.Second
)

// Rand is the random source used to pick the drift direction.
type Rand interface {
	IntN(n int) int
}

type Options struct {
	Clock    clock.Clock
	Rand     Rand
	Interval time.Duration
	Start    int
	Min      int
	Max      int
	// OnChange is called with the new count after every drift step.
	OnChange func(count int)
}

// Counter drifts a count by one step per interval within [Min, Max].
type Counter struct {
	mu     sync.Mutex
	opts   Options
	count  int
	handle clock.Timer
	gen    uint64
	closed bool
}

// New creates a counter and starts drifting it.
func New(opts Options) *Counter {
	if opts.Clock == nil {
		opts.Clock = clock.Real{}
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.Min == 0 && opts.Max == 0 {
		opts.Min, opts.Max = DefaultMin, DefaultMax
	}
	if opts.Start == 0 {
		opts.Start = DefaultStart
	}
	c := &Counter{opts: opts, count: clamp(opts.Start, opts.Min, opts.Max)}
	c.mu.Lock()
	c.scheduleLocked()
	c.mu.Unlock()
	return c
}

// Count returns the current simulated count.
func (c *Counter) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

// Close stops the drift.
func (c *Counter) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.gen++
	clock.Stop(c.handle)
	c.handle = nil
}

func (c *Counter) scheduleLocked() {
	gen := c.gen
	c.handle = c.opts.Clock.AfterFunc(c.opts.Interval, func() { c.step(gen) })
}

func (c *Counter) step(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || gen != c.gen {
		return
	}
	delta := 1
	if c.opts.Rand.IntN(2) == 0 {
		delta = -1
	}
	c.count = clamp(c.count+delta, c.opts.Min, c.opts.Max)
	if c.opts.OnChange != nil {
		c.opts.OnChange(c.count)
	}
	c.scheduleLocked()
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
