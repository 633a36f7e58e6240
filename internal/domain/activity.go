package domain

import "time"

// ActivityEvent is one entry in the live feed. Events are never mutated
// after they are recorded.
type ActivityEvent struct {
	ID          string
	Text        string
	Timestamp   time.Time
	Category    Category
	Placeholder bool
}

// Emitter is the write capability handed to anything that produces feed events.
type Emitter func(text string, category Category)
