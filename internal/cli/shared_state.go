package cli

import "github.com/napstack/napstack/internal/domain"

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// LastDuration is the length of the most recently started session, so
	// space can start it again.
	LastDuration int

	// Terminal dimensions
	Width  int
	Height int
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator) and
// status bar (2 lines: separator + hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		return 1
	}
	return h
}

// startSession starts the timer and remembers the length. It is a no-op
// while a session is in progress.
func (s *SharedState) startSession(minutes int) {
	if minutes <= 0 {
		return
	}
	s.App.Timer.Start(minutes)
	if snap := s.App.Timer.Snapshot(); snap.State == domain.TimerRunning && snap.DurationMinutes == minutes {
		s.LastDuration = minutes
	}
}
