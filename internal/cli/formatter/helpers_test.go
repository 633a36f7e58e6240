package formatter

import (
	"testing"
	"time"

	"github.com/napstack/napstack/internal/domain"
	"github.com/stretchr/testify/assert"
)

var fmtNow = time.Date(2025, 6, 15, 14, 0, 0, 0, time.UTC)

func TestRelativeAge(t *testing.T) {
	tests := []struct {
		name string
		ago  time.Duration
		want string
	}{
		{"just now", 0, "0s ago"},
		{"seconds", 12 * time.Second, "12s ago"},
		{"59 seconds", 59 * time.Second, "59s ago"},
		{"one minute", time.Minute, "1m ago"},
		{"minutes round down", 3*time.Minute + 50*time.Second, "3m ago"},
		{"one hour", time.Hour, "1h ago"},
		{"hours", 5*time.Hour + 59*time.Minute, "5h ago"},
		{"future clamps", -10 * time.Second, "0s ago"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeAge(fmtNow.Add(-tt.ago), fmtNow))
		})
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "00:00"},
		{-3, "00:00"},
		{59, "00:59"},
		{300, "05:00"},
		{2699, "44:59"},
		{5400, "90:00"},
		{6000, "100:00"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatClock(tt.seconds))
		})
	}
}

func TestHumanDate(t *testing.T) {
	assert.Equal(t, "Today", HumanDate(fmtNow.Add(-3*time.Hour), fmtNow))
	assert.Equal(t, "Yesterday", HumanDate(fmtNow.AddDate(0, 0, -1), fmtNow))
	assert.Equal(t, "Sep 30, 2022", HumanDate(time.Date(2022, 9, 30, 0, 0, 0, 0, time.UTC), fmtNow))
}

func TestStateIndicator(t *testing.T) {
	tests := []struct {
		state    domain.TimerState
		contains string
	}{
		{domain.TimerIdle, "READY"},
		{domain.TimerRunning, "RUNNING"},
		{domain.TimerPaused, "PAUSED"},
		{domain.TimerCompleted, "DONE"},
	}
	for _, tt := range tests {
		t.Run(string(tt.state), func(t *testing.T) {
			assert.Contains(t, StateIndicator(tt.state), tt.contains)
		})
	}
}

func TestTruncID(t *testing.T) {
	id := "a1b2c3d4-e5f6-7890-abcd-ef1234567890"
	got := TruncID(id)
	assert.Contains(t, got, "a1b2c3d4")
	assert.NotContains(t, got, "e5f6")

	got = TruncID("short")
	assert.Contains(t, got, "short")
}

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		input int
		want  string
	}{
		{0, "0m"},
		{-5, "0m"},
		{45, "45m"},
		{60, "1h"},
		{150, "2h 30m"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMinutes(tt.input))
		})
	}
}

func TestRenderBox(t *testing.T) {
	result := RenderBox("live feed", "content here")
	assert.Contains(t, result, "LIVE FEED")
	assert.Contains(t, result, "content here")
	assert.Contains(t, result, "╭")
	assert.Contains(t, result, "╰")

	result = RenderBox("", "just content")
	assert.Contains(t, result, "just content")
	assert.NotContains(t, result, "\n\n\n")
}
