// Package activity holds the live feed: a bounded, de-duplicating event
// buffer with an idle watchdog that injects quiet events.
package activity

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/napstack/napstack/internal/clock"
	"github.com/napstack/napstack/internal/domain"
)

const (
	DefaultRetained    = 20
	DefaultVisible     = 5
	DefaultIdleTimeout = 60 * time.Second
	DefaultFreshFor    = 2 * time.Minute
)

// Options configures a Log. Zero values get the defaults above.
type Options struct {
	Clock       clock.Clock
	NewID       func() string
	Retained    int
	Visible     int
	IdleTimeout time.Duration
	FreshFor    time.Duration
}

// Log is the single writer of the retained event sequence. Everything else
// gets the Record method as a domain.Emitter.
type Log struct {
	mu   sync.Mutex
	opts Options

	// events is newest-first in ingestion order.
	events       []domain.ActivityEvent
	placeholders []domain.ActivityEvent
	bootstrapped bool

	hasNew    bool
	freshness clock.Timer
	freshGen  uint64

	watchdog      clock.Timer
	watchdogGen   uint64
	sessionActive bool

	subscribers []chan domain.ActivityEvent
	closed      bool
}

// New creates an empty Log.
func New(opts Options) *Log {
	if opts.Clock == nil {
		opts.Clock = clock.Real{}
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	if opts.Retained <= 0 {
		opts.Retained = DefaultRetained
	}
	if opts.Visible <= 0 {
		opts.Visible = DefaultVisible
	}
	if opts.IdleTimeout <= 0 {
		opts.IdleTimeout = DefaultIdleTimeout
	}
	if opts.FreshFor <= 0 {
		opts.FreshFor = DefaultFreshFor
	}
	return &Log{opts: opts}
}

// Record stamps and ingests a new event. It has the domain.Emitter shape;
// an empty category is recorded as general.
func (l *Log) Record(text string, category domain.Category) {
	l.Ingest(domain.ActivityEvent{Text: text, Category: category})
}

// Emitter returns Record as a write-only capability.
func (l *Log) Emitter() domain.Emitter {
	return l.Record
}

// Ingest adds an event that may carry its own id and timestamp. Missing
// fields are filled from the log's id source and clock.
func (l *Log) Ingest(ev domain.ActivityEvent) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.ingestLocked(ev)
}

func (l *Log) ingestLocked(ev domain.ActivityEvent) {
	if l.closed {
		return
	}
	ev.Category = domain.NormalizeCategory(ev.Category)
	quiet := ev.Category == domain.CategoryQuiet
	if quiet && l.hasQuietLocked() {
		return
	}
	if ev.ID == "" {
		ev.ID = l.opts.NewID()
	}
	if ev.Timestamp.IsZero() {
		ev.Timestamp = l.opts.Clock.Now()
	}
	ev.Placeholder = false

	if !quiet {
		l.dropQuietLocked()
	}
	l.events = append([]domain.ActivityEvent{ev}, l.events...)
	if len(l.events) > l.opts.Retained {
		l.events = l.events[:l.opts.Retained]
	}
	l.placeholders = nil
	l.bootstrapped = true

	l.markFreshLocked()
	if quiet {
		l.disarmWatchdogLocked()
	} else {
		l.armWatchdogLocked()
	}
	l.publishLocked(ev)
}

// View returns at most Visible events, newest timestamp first. Before the
// first real event it returns the bootstrap placeholders.
func (l *Log) View() []domain.ActivityEvent {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.events) == 0 {
		if !l.bootstrapped {
			l.placeholders = placeholderEvents(l.opts.Clock.Now())
			l.bootstrapped = true
		}
		return slices.Clone(l.placeholders)
	}

	view := slices.Clone(l.events)
	slices.SortStableFunc(view, func(a, b domain.ActivityEvent) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
	if len(view) > l.opts.Visible {
		view = view[:l.opts.Visible]
	}
	return view
}

// Retained returns the full retained sequence, newest ingestion first.
func (l *Log) Retained() []domain.ActivityEvent {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.events)
}

// HasNew reports whether something was ingested within the freshness window.
func (l *Log) HasNew() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.hasNew
}

// SetSessionActive gates quiet synthesis: while a session runs the watchdog
// keeps re-arming instead of recording a quiet event. It has the shape of a
// timer run-state listener.
func (l *Log) SetSessionActive(active bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sessionActive = active
}

// Subscribe returns a channel receiving every ingested event. Slow
// subscribers miss events rather than block the log.
func (l *Log) Subscribe(buffer int) <-chan domain.ActivityEvent {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan domain.ActivityEvent, buffer)
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		close(ch)
		return ch
	}
	l.subscribers = append(l.subscribers, ch)
	return ch
}

// Close cancels the watchdog and freshness timers and closes subscribers.
// Later ingestions are dropped.
func (l *Log) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	l.closed = true
	l.disarmWatchdogLocked()
	l.freshGen++
	clock.Stop(l.freshness)
	l.freshness = nil
	for _, ch := range l.subscribers {
		close(ch)
	}
	l.subscribers = nil
}

func (l *Log) hasQuietLocked() bool {
	for _, ev := range l.events {
		if ev.Category == domain.CategoryQuiet {
			return true
		}
	}
	return false
}

func (l *Log) dropQuietLocked() {
	l.events = slices.DeleteFunc(l.events, func(ev domain.ActivityEvent) bool {
		return ev.Category == domain.CategoryQuiet
	})
}

func (l *Log) markFreshLocked() {
	l.hasNew = true
	l.freshGen++
	clock.Stop(l.freshness)
	gen := l.freshGen
	l.freshness = l.opts.Clock.AfterFunc(l.opts.FreshFor, func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		if gen != l.freshGen || l.closed {
			return
		}
		l.hasNew = false
		l.freshness = nil
	})
}

func (l *Log) armWatchdogLocked() {
	l.disarmWatchdogLocked()
	gen := l.watchdogGen
	l.watchdog = l.opts.Clock.AfterFunc(l.opts.IdleTimeout, func() { l.idle(gen) })
}

func (l *Log) disarmWatchdogLocked() {
	l.watchdogGen++
	clock.Stop(l.watchdog)
	l.watchdog = nil
}

func (l *Log) idle(gen uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != l.watchdogGen || l.closed {
		return
	}
	l.watchdog = nil
	if l.sessionActive {
		l.armWatchdogLocked()
		return
	}
	l.ingestLocked(domain.ActivityEvent{Text: domain.QuietCopy, Category: domain.CategoryQuiet})
}

func (l *Log) publishLocked(ev domain.ActivityEvent) {
	for _, ch := range l.subscribers {
		select {
		case ch <- ev:
		default:
		}
	}
}
