package domain

type TimerState string

const (
	TimerIdle      TimerState = "idle"
	TimerRunning   TimerState = "running"
	TimerPaused    TimerState = "paused"
	TimerCompleted TimerState = "completed"
)

// Category tags an activity event with the transition or action that produced it.
type Category string

const (
	CategoryTimerStart    Category = "timer-start"
	CategoryTimerComplete Category = "timer-complete"
	CategoryTimerPause    Category = "timer-pause"
	CategoryTimerResume   Category = "timer-resume"
	CategoryTimerEarly    Category = "timer-early"
	CategoryShip          Category = "ship"
	CategorySound         Category = "sound"
	CategoryQuiet         Category = "quiet"
	CategoryGeneral       Category = "general"
)

// ValidCategories is the canonical set of accepted category strings.
var ValidCategories = map[Category]bool{
	CategoryTimerStart: true, CategoryTimerComplete: true, CategoryTimerPause: true,
	CategoryTimerResume: true, CategoryTimerEarly: true, CategoryShip: true,
	CategorySound: true, CategoryQuiet: true, CategoryGeneral: true,
}

// NormalizeCategory maps empty or unknown categories to CategoryGeneral.
func NormalizeCategory(c Category) Category {
	if ValidCategories[c] {
		return c
	}
	return CategoryGeneral
}

type SessionOutcome string

const (
	OutcomeCompleted  SessionOutcome = "completed"
	OutcomeEndedEarly SessionOutcome = "ended_early"
)
