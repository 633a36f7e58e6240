package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/napstack/napstack/internal/domain"
)

// SessionLog options
type SessionLogOption func(*domain.SessionLog)

// WithEndedAt moves the session so it ends at t, keeping its length.
func WithEndedAt(t time.Time) SessionLogOption {
	return func(s *domain.SessionLog) {
		s.StartedAt = t.Add(-time.Duration(s.CreditedMin) * time.Minute)
		s.EndedAt = t
		s.CreatedAt = t
	}
}

// WithEndedEarly marks the session as an early exit crediting minutes.
func WithEndedEarly(minutes int) SessionLogOption {
	return func(s *domain.SessionLog) {
		s.CreditedMin = minutes
		s.Outcome = domain.OutcomeEndedEarly
		s.EndedAt = s.StartedAt.Add(time.Duration(minutes) * time.Minute)
		s.CreatedAt = s.EndedAt
	}
}

// NewTestSessionLog builds a completed session of the given preset length
// that ended now.
func NewTestSessionLog(presetMinutes int, opts ...SessionLogOption) *domain.SessionLog {
	now := time.Now().UTC().Truncate(time.Second)
	s := &domain.SessionLog{
		ID:            uuid.New().String(),
		PresetMinutes: presetMinutes,
		CreditedMin:   presetMinutes,
		Outcome:       domain.OutcomeCompleted,
		StartedAt:     now.Add(-time.Duration(presetMinutes) * time.Minute),
		EndedAt:       now,
		CreatedAt:     now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewTestCredit builds the credit a timer reports for a session that
// started at start.
func NewTestCredit(presetMinutes, minutes int, start time.Time) domain.SessionCredit {
	outcome := domain.OutcomeCompleted
	if minutes < presetMinutes {
		outcome = domain.OutcomeEndedEarly
	}
	return domain.SessionCredit{
		PresetMinutes: presetMinutes,
		Minutes:       minutes,
		Outcome:       outcome,
		StartedAt:     start,
		EndedAt:       start.Add(time.Duration(minutes) * time.Minute),
	}
}
