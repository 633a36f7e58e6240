package domain

import "time"

// DailyStats are the cumulative counters shown on the dashboard.
type DailyStats struct {
	Sessions     int `json:"sessions"`
	TotalMinutes int `json:"totalMinutes"`
	Ships        int `json:"ships"`
	Streak       int `json:"streak"`
}

// DefaultStats is what a fresh install starts with.
func DefaultStats() DailyStats {
	return DailyStats{Streak: 1}
}

// ApplySession credits one session worth of minutes.
func (s *DailyStats) ApplySession(minutes int) {
	if minutes <= 0 {
		return
	}
	s.Sessions++
	s.TotalMinutes += minutes
}

// RecordShip counts one shipped change.
func (s *DailyStats) RecordShip() {
	s.Ships++
}

// ComputeStreak counts consecutive days with at least one session, ending
// today or, when nothing was logged yet today, yesterday. The result is
// never below 1.
func ComputeStreak(sessionDays []time.Time, now time.Time) int {
	days := make(map[string]bool, len(sessionDays))
	for _, d := range sessionDays {
		days[d.In(now.Location()).Format(time.DateOnly)] = true
	}

	cursor := now
	if !days[cursor.Format(time.DateOnly)] {
		cursor = cursor.AddDate(0, 0, -1)
	}
	streak := 0
	for days[cursor.Format(time.DateOnly)] {
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	if streak < 1 {
		return 1
	}
	return streak
}

// TodaySummary aggregates the sessions credited on the current local day.
type TodaySummary struct {
	Sessions int
	Minutes  int
}
