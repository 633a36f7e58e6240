package timer

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/napstack/napstack/internal/clock"
	"github.com/napstack/napstack/internal/domain"
)

const (
	DefaultTickInterval    = time.Second
	DefaultRefreshInterval = 5 * time.Minute
	DefaultCelebration     = 3 * time.Second

	// milestoneSeconds is the spacing of milestone announcements.
	milestoneSeconds = 5 * 60
)

// Rand is the random source used for message rotation. *rand.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// Options wires a Timer to its clock, random source and listeners.
// Listeners run after the Timer releases its state lock, in the order the
// operation produced them, one operation at a time. They may call Snapshot
// but must not start, pause or stop the Timer.
type Options struct {
	Clock clock.Clock
	Rand  Rand

	Emit             domain.Emitter
	OnComplete       func(minutesCredited int)
	OnCredit         func(credit domain.SessionCredit)
	OnRunStateChange func(running bool)

	TickInterval    time.Duration
	RefreshInterval time.Duration
	Celebration     time.Duration
}

// Snapshot is a consistent read of the timer for rendering.
type Snapshot struct {
	State            domain.TimerState
	DurationMinutes  int
	RemainingSeconds int
	Message          string
	Celebrating      bool
}

// ElapsedSeconds is the countdown time consumed so far.
func (s Snapshot) ElapsedSeconds() int {
	return s.DurationMinutes*60 - s.RemainingSeconds
}

// Progress returns the fraction of the session completed, in [0, 1].
func (s Snapshot) Progress() float64 {
	total := s.DurationMinutes * 60
	if total <= 0 {
		if s.State == domain.TimerCompleted {
			return 1
		}
		return 0
	}
	return float64(s.ElapsedSeconds()) / float64(total)
}

// Timer is the session countdown state machine. Every periodic callback it
// arms is owned by the Timer and released on state exit via cancelAllLocked.
type Timer struct {
	mu   sync.Mutex
	opts Options

	// notifyMu serializes listener delivery. It is taken before mu is
	// released so operations notify in the order they ran.
	notifyMu sync.Mutex
	pending  []func()

	state     domain.TimerState
	duration  int
	remaining int
	message   string
	startedAt time.Time

	// Ticks are due at segmentStart + n*TickInterval, where n counts the
	// ticks since segmentRemaining. Start and Resume open a new segment so
	// paused time is excluded.
	segmentStart     time.Time
	segmentRemaining int

	// announced is the last 5-minute boundary a milestone was shown for.
	announced int

	countdown  clock.Timer
	refresh    clock.Timer
	refreshSeq uint64
	// gen invalidates callbacks that were already in flight when their
	// handle was cancelled.
	gen uint64

	celebrating bool
	celebration clock.Timer
	celebGen    uint64

	closed bool
}

// New creates an idle Timer. Zero-valued options get production defaults.
func New(opts Options) *Timer {
	if opts.Clock == nil {
		opts.Clock = clock.Real{}
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = DefaultTickInterval
	}
	if opts.RefreshInterval <= 0 {
		opts.RefreshInterval = DefaultRefreshInterval
	}
	if opts.Celebration <= 0 {
		opts.Celebration = DefaultCelebration
	}
	return &Timer{opts: opts, state: domain.TimerIdle}
}

// Snapshot returns the current state.
func (t *Timer) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return Snapshot{
		State:            t.state,
		DurationMinutes:  t.duration,
		RemainingSeconds: t.remaining,
		Message:          t.message,
		Celebrating:      t.celebrating,
	}
}

// Start begins a session of the given length from Idle or Completed.
func (t *Timer) Start(minutes int) {
	t.mu.Lock()
	defer t.unlockAndNotify()
	if t.closed || minutes <= 0 {
		return
	}
	if t.state != domain.TimerIdle && t.state != domain.TimerCompleted {
		return
	}

	t.cancelAllLocked()
	t.stopCelebrationLocked()
	t.duration = minutes
	t.remaining = minutes * 60
	t.startedAt = t.opts.Clock.Now()
	t.announced = 0
	t.state = domain.TimerRunning
	t.beginSegmentLocked()

	t.notifyRunLocked(true)
	t.emitLocked(domain.StartCopy(minutes), domain.CategoryTimerStart)
	t.scheduleCountdownLocked()
	t.startMessagesLocked()
}

// Pause freezes a running countdown.
func (t *Timer) Pause() {
	t.mu.Lock()
	defer t.unlockAndNotify()
	if t.closed || t.state != domain.TimerRunning {
		return
	}
	t.cancelAllLocked()
	t.message = ""
	t.state = domain.TimerPaused

	t.notifyRunLocked(false)
	t.emitLocked(domain.PauseCopy, domain.CategoryTimerPause)
}

// Resume continues a paused countdown from exactly where it stopped.
func (t *Timer) Resume() {
	t.mu.Lock()
	defer t.unlockAndNotify()
	if t.closed || t.state != domain.TimerPaused {
		return
	}
	t.state = domain.TimerRunning
	t.beginSegmentLocked()

	t.notifyRunLocked(true)
	t.emitLocked(domain.ResumeCopy, domain.CategoryTimerResume)
	t.scheduleCountdownLocked()
	t.startMessagesLocked()
}

// Toggle pauses a running timer or resumes a paused one.
func (t *Timer) Toggle() {
	switch t.Snapshot().State {
	case domain.TimerRunning:
		t.Pause()
	case domain.TimerPaused:
		t.Resume()
	}
}

// Reset abandons the session without credit. A completed timer is also
// returned to Idle.
func (t *Timer) Reset() {
	t.mu.Lock()
	defer t.unlockAndNotify()
	if t.closed || t.state == domain.TimerIdle {
		return
	}
	t.resetLocked()
}

// EndEarly stops the session and credits the whole minutes elapsed, which it
// returns. Less than one minute behaves exactly like Reset and returns 0.
func (t *Timer) EndEarly() int {
	t.mu.Lock()
	defer t.unlockAndNotify()
	if t.closed || (t.state != domain.TimerRunning && t.state != domain.TimerPaused) {
		return 0
	}

	elapsedMinutes := (t.duration*60 - t.remaining) / 60
	if elapsedMinutes < 1 {
		t.resetLocked()
		return 0
	}

	wasRunning := t.state == domain.TimerRunning
	t.cancelAllLocked()
	if wasRunning {
		t.notifyRunLocked(false)
	}
	t.creditLocked(elapsedMinutes, domain.OutcomeEndedEarly)
	t.emitLocked(domain.EarlyCopy(elapsedMinutes), domain.CategoryTimerEarly)

	t.state = domain.TimerIdle
	t.remaining = 0
	t.duration = 0
	t.message = ""
	return elapsedMinutes
}

// Close cancels every outstanding callback. The Timer ignores all calls
// afterwards.
func (t *Timer) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cancelAllLocked()
	t.stopCelebrationLocked()
	t.closed = true
}

func (t *Timer) resetLocked() {
	wasRunning := t.state == domain.TimerRunning
	t.cancelAllLocked()
	t.state = domain.TimerIdle
	t.remaining = 0
	t.duration = 0
	t.message = ""
	if wasRunning {
		t.notifyRunLocked(false)
	}
}

// cancelAllLocked releases the countdown and refresh handles and invalidates
// any of their callbacks already in flight.
func (t *Timer) cancelAllLocked() {
	t.gen++
	clock.Stop(t.countdown)
	clock.Stop(t.refresh)
	t.countdown = nil
	t.refresh = nil
}

func (t *Timer) beginSegmentLocked() {
	t.segmentStart = t.opts.Clock.Now()
	t.segmentRemaining = t.remaining
}

// scheduleCountdownLocked arms the next tick against the segment start, so
// callback latency does not accumulate over a long session.
func (t *Timer) scheduleCountdownLocked() {
	gen := t.gen
	ticked := t.segmentRemaining - t.remaining
	due := t.segmentStart.Add(time.Duration(ticked+1) * t.opts.TickInterval)
	delay := max(due.Sub(t.opts.Clock.Now()), 0)
	t.countdown = t.opts.Clock.AfterFunc(delay, func() { t.tick(gen) })
}

func (t *Timer) tick(gen uint64) {
	t.mu.Lock()
	defer t.unlockAndNotify()
	if t.closed || gen != t.gen || t.state != domain.TimerRunning {
		return
	}

	if t.remaining <= 1 {
		t.completeLocked()
		return
	}
	t.remaining--
	t.scheduleCountdownLocked()
	t.checkMilestoneLocked()
}

func (t *Timer) completeLocked() {
	t.cancelAllLocked()
	t.remaining = 0
	t.message = ""
	t.state = domain.TimerCompleted

	t.notifyRunLocked(false)
	t.creditLocked(t.duration, domain.OutcomeCompleted)
	t.emitLocked(domain.CompleteCopy(t.duration), domain.CategoryTimerComplete)
	t.celebrateLocked()
}

func (t *Timer) creditLocked(minutes int, outcome domain.SessionOutcome) {
	if t.opts.OnComplete != nil {
		onComplete := t.opts.OnComplete
		t.notifyLocked(func() { onComplete(minutes) })
	}
	if t.opts.OnCredit != nil {
		onCredit := t.opts.OnCredit
		credit := domain.SessionCredit{
			PresetMinutes: t.duration,
			Minutes:       minutes,
			Outcome:       outcome,
			StartedAt:     t.startedAt,
			EndedAt:       t.opts.Clock.Now(),
		}
		t.notifyLocked(func() { onCredit(credit) })
	}
}

func (t *Timer) celebrateLocked() {
	t.stopCelebrationLocked()
	t.celebrating = true
	gen := t.celebGen
	t.celebration = t.opts.Clock.AfterFunc(t.opts.Celebration, func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		if gen == t.celebGen {
			t.celebrating = false
			t.celebration = nil
		}
	})
}

func (t *Timer) stopCelebrationLocked() {
	t.celebGen++
	clock.Stop(t.celebration)
	t.celebration = nil
	t.celebrating = false
}

func (t *Timer) notifyRunLocked(running bool) {
	if t.opts.OnRunStateChange != nil {
		onChange := t.opts.OnRunStateChange
		t.notifyLocked(func() { onChange(running) })
	}
}

func (t *Timer) emitLocked(text string, category domain.Category) {
	if t.opts.Emit != nil {
		emit := t.opts.Emit
		t.notifyLocked(func() { emit(text, category) })
	}
}

// notifyLocked queues a listener call for delivery by unlockAndNotify.
func (t *Timer) notifyLocked(f func()) {
	t.pending = append(t.pending, f)
}

// unlockAndNotify releases mu and then runs the queued listener calls.
// Snapshot is not blocked while a listener (a credit write, say) runs.
func (t *Timer) unlockAndNotify() {
	pending := t.pending
	t.pending = nil
	t.notifyMu.Lock()
	t.mu.Unlock()
	defer t.notifyMu.Unlock()
	for _, f := range pending {
		f()
	}
}
