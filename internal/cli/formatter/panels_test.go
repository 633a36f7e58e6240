package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/napstack/napstack/internal/domain"
	"github.com/napstack/napstack/internal/timer"
	"github.com/stretchr/testify/assert"
)

func stripANSI(s string) string {
	return ansi.Strip(s)
}

func TestFormatTimer_Running(t *testing.T) {
	got := stripANSI(FormatTimer(timer.Snapshot{
		State:            domain.TimerRunning,
		DurationMinutes:  45,
		RemainingSeconds: 2699,
		Message:          "Coffee's hot ☕",
	}))

	assert.Contains(t, got, "RUNNING")
	assert.Contains(t, got, "Naptime Sprint")
	assert.Contains(t, got, "44:59")
	assert.Contains(t, got, "Coffee's hot ☕")
	assert.Contains(t, got, "] ")
	assert.Regexp(t, `\] +0%`, got)
}

func TestFormatTimer_IdleAndCustom(t *testing.T) {
	got := stripANSI(FormatTimer(timer.Snapshot{State: domain.TimerIdle}))
	assert.Contains(t, got, "READY")
	assert.Contains(t, got, "--:--")

	got = stripANSI(FormatTimer(timer.Snapshot{State: domain.TimerPaused, DurationMinutes: 7, RemainingSeconds: 61}))
	assert.Contains(t, got, "PAUSED")
	assert.Contains(t, got, "7 min")
	assert.Contains(t, got, "01:01")
}

func TestFormatPresetBar(t *testing.T) {
	got := stripANSI(FormatPresetBar([]string{"1", "2", "3", "4"}, 20))
	assert.Contains(t, got, "[1] ⚡ Quick Fix 5m")
	assert.Contains(t, got, "[4] 🦉 Night Owl 90m")
}

func TestFormatPresets(t *testing.T) {
	got := stripANSI(FormatPresets())
	for _, p := range domain.Presets {
		assert.Contains(t, got, p.Name)
	}
	assert.Contains(t, got, "1h 30m")
}

func TestFormatFeed(t *testing.T) {
	now := fmtNow
	got := stripANSI(FormatFeed(FeedView{
		Count:  12,
		HasNew: true,
		Now:    now,
		Events: []domain.ActivityEvent{
			{Text: "Focus block started! ⏰", Category: domain.CategoryTimerStart, Timestamp: now.Add(-12 * time.Second)},
			{Text: "Quiet coding moment... 🧘", Category: domain.CategoryQuiet, Timestamp: now.Add(-3 * time.Minute)},
		},
	}))

	assert.Contains(t, got, "12 parents coding now")
	assert.Contains(t, got, "NEW")
	assert.Contains(t, got, "Focus block started! ⏰  12s ago")
	assert.Contains(t, got, "3m ago")
	assert.Less(t, strings.Index(got, "Focus block"), strings.Index(got, "Quiet coding"))
}

func TestFormatFeed_Empty(t *testing.T) {
	got := stripANSI(FormatFeed(FeedView{Count: 8, Now: fmtNow}))
	assert.Contains(t, got, "8 parents coding now")
	assert.NotContains(t, got, "NEW")
	assert.Contains(t, got, "Nothing yet.")
}

func TestFormatMixer(t *testing.T) {
	prefs := domain.SoundPrefs{Active: []string{"rain", "coffee"}, Volume: 40}
	got := stripANSI(FormatMixer(prefs, []string{"a", "s", "d", "f"}))

	assert.Contains(t, got, "[s] 🌧️ Rain")
	assert.Contains(t, got, "40%")
	assert.Contains(t, got, "NOW PLAYING 🌧️ Rain + ☕ Coffee Shop")
	assert.Equal(t, 2, strings.Count(got, "● on"))
}

func TestFormatMixer_NothingPlaying(t *testing.T) {
	got := stripANSI(FormatMixer(domain.DefaultSoundPrefs(), nil))
	assert.NotContains(t, got, "NOW PLAYING")
	assert.Contains(t, got, "70%")
}

func TestFormatSoundList(t *testing.T) {
	got := stripANSI(FormatSoundList(domain.SoundPrefs{Active: []string{"fireplace"}, Volume: 55}))
	assert.Contains(t, got, "fireplace.mp3")
	assert.Contains(t, got, "(no audio)")
	assert.Contains(t, got, "Volume: 55%")
}

func TestFormatStats(t *testing.T) {
	got := stripANSI(FormatStats(
		domain.DailyStats{Sessions: 3, TotalMinutes: 75, Ships: 1, Streak: 4},
		domain.TodaySummary{Sessions: 1, Minutes: 20},
	))
	assert.Contains(t, got, "3 sessions")
	assert.Contains(t, got, "75 minutes")
	assert.Contains(t, got, "1 ships")
	assert.Contains(t, got, "4 day streak")
	assert.Contains(t, got, "Today: 1 session, 20m")
}

func TestFormatSessions(t *testing.T) {
	logs := []*domain.SessionLog{
		{ID: "a1b2c3d4-0000", PresetMinutes: 45, CreditedMin: 45, Outcome: domain.OutcomeCompleted,
			StartedAt: fmtNow.Add(-50 * time.Minute), EndedAt: fmtNow.Add(-5 * time.Minute)},
		{ID: "ffff0000-1111", PresetMinutes: 33, CreditedMin: 12, Outcome: domain.OutcomeEndedEarly,
			StartedAt: fmtNow.AddDate(0, 0, -1), EndedAt: fmtNow.AddDate(0, 0, -1).Add(12 * time.Minute)},
	}
	got := stripANSI(FormatSessions(logs, fmtNow))

	assert.Contains(t, got, "a1b2c3d4")
	assert.NotContains(t, got, "a1b2c3d4-0000")
	assert.Contains(t, got, "🍼 Naptime Sprint")
	assert.Contains(t, got, "33m")
	assert.Contains(t, got, "ended early")
	assert.Contains(t, got, "Yesterday")

	assert.Contains(t, stripANSI(FormatSessions(nil, fmtNow)), "No sessions logged yet.")
}

func TestFormatCelebration(t *testing.T) {
	got := stripANSI(FormatCelebration("Shipped!"))
	assert.Contains(t, got, "🎉 Shipped! 🎉")
}
