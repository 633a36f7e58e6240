package timer

import "github.com/napstack/napstack/internal/domain"

// startMessagesLocked shows a fresh message on entering Running and arms the
// periodic refresh.
func (t *Timer) startMessagesLocked() {
	t.message = t.rotationMessageLocked()
	t.scheduleRefreshLocked()
}

// scheduleRefreshLocked (re)arms the refresh. Arming again supersedes any
// refresh already pending.
func (t *Timer) scheduleRefreshLocked() {
	if t.refresh != nil {
		t.refresh.Stop()
	}
	t.refreshSeq++
	gen, seq := t.gen, t.refreshSeq
	t.refresh = t.opts.Clock.AfterFunc(t.opts.RefreshInterval, func() { t.refreshMessage(gen, seq) })
}

func (t *Timer) refreshMessage(gen, seq uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed || gen != t.gen || seq != t.refreshSeq || t.state != domain.TimerRunning {
		return
	}
	t.message = t.rotationMessageLocked()
	t.scheduleRefreshLocked()
}

// checkMilestoneLocked fires once per 5-minute boundary crossed by the tick
// stream. The refresh is re-phased from the milestone so rotation does not
// immediately overwrite it.
func (t *Timer) checkMilestoneLocked() {
	boundary := (t.duration*60 - t.remaining) / milestoneSeconds
	if boundary <= t.announced {
		return
	}
	t.announced = boundary
	msg := domain.MilestoneMessage(boundary * milestoneSeconds / 60)
	if msg == "" {
		return
	}
	t.message = msg
	t.scheduleRefreshLocked()
}

func (t *Timer) rotationMessageLocked() string {
	pool := domain.RotationMessages(t.opts.Clock.Now().Hour())
	return pool[t.opts.Rand.IntN(len(pool))]
}
