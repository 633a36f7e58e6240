package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var statsNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func daysAgo(n int) time.Time {
	return statsNow.AddDate(0, 0, -n)
}

func TestApplySession(t *testing.T) {
	s := DefaultStats()
	s.ApplySession(20)
	s.ApplySession(0)
	s.ApplySession(7)

	assert.Equal(t, DailyStats{Sessions: 2, TotalMinutes: 27, Streak: 1}, s)
}

func TestRecordShip(t *testing.T) {
	s := DefaultStats()
	s.RecordShip()
	s.RecordShip()
	assert.Equal(t, 2, s.Ships)
}

func TestComputeStreak(t *testing.T) {
	cases := []struct {
		name string
		days []time.Time
		want int
	}{
		{"no sessions", nil, 1},
		{"today only", []time.Time{statsNow}, 1},
		{"three days running", []time.Time{daysAgo(0), daysAgo(1), daysAgo(2)}, 3},
		{"ends yesterday", []time.Time{daysAgo(1), daysAgo(2)}, 2},
		{"gap breaks streak", []time.Time{daysAgo(0), daysAgo(1), daysAgo(3), daysAgo(4)}, 2},
		{"stale history", []time.Time{daysAgo(5), daysAgo(6)}, 1},
		{"duplicates on a day", []time.Time{statsNow, statsNow.Add(-time.Hour), daysAgo(1)}, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ComputeStreak(tc.days, statsNow))
		})
	}
}
