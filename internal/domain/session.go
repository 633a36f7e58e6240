package domain

import "time"

// SessionLog is the durable record of a credited timer session.
type SessionLog struct {
	ID            string
	PresetMinutes int
	CreditedMin   int
	Outcome       SessionOutcome
	StartedAt     time.Time
	EndedAt       time.Time
	CreatedAt     time.Time
}

// SessionCredit is what the timer hands to its completion listener, enriched
// with the session bounds so it can be logged.
type SessionCredit struct {
	PresetMinutes int
	Minutes       int
	Outcome       SessionOutcome
	StartedAt     time.Time
	EndedAt       time.Time
}
