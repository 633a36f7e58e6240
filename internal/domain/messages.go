package domain

import "fmt"

// DayPart buckets the hour of day for greeting selection.
type DayPart string

const (
	Morning   DayPart = "morning"
	Afternoon DayPart = "afternoon"
	Evening   DayPart = "evening"
	Night     DayPart = "night"
)

// DayPartFor maps an hour (0-23) to its bucket: morning 5-12, afternoon 12-17,
// evening 17-22, night otherwise.
func DayPartFor(hour int) DayPart {
	switch {
	case hour >= 5 && hour < 12:
		return Morning
	case hour >= 12 && hour < 17:
		return Afternoon
	case hour >= 17 && hour < 22:
		return Evening
	default:
		return Night
	}
}

var dayPartMessages = map[DayPart][]string{
	Morning: {
		"Good morning, parent coder! ☀️",
		"Early bird gets the bug fixes! 🐛",
		"Morning coffee and code! ☕",
		"Fresh start, fresh code! 🌅",
	},
	Afternoon: {
		"Afternoon coding session! 🌤️",
		"Lunch break coding? Nice! 🥪",
		"Midday momentum! 💪",
		"Afternoon productivity! ⚡",
	},
	Evening: {
		"Evening coding vibes! 🌆",
		"After-dinner debugging! 🍽️",
		"Sunset sessions hit different! 🌅",
		"Evening energy! 🔥",
	},
	Night: {
		"Late night session? 🌙",
		"Night owl mode activated! 🦉",
		"Burning the midnight oil! 🕯️",
		"Late night, great code! ✨",
	},
}

var motivationalMessages = []string{
	"You've got this! 💪",
	"Focus mode: activated! 🎯",
	"Building something amazing! 🚀",
	"One line at a time! 📝",
	"Code like a parent: efficiently! ⚡",
	"Making magic happen! ✨",
	"Debug like a detective! 🔍",
	"Shipping greatness! 📦",
	"Code, coffee, conquer! ☕",
	"Parent power coding! 🍼",
}

// RotationMessages returns the pool a rotating message is drawn from:
// the bucket for hour followed by the fixed motivational set.
func RotationMessages(hour int) []string {
	bucket := dayPartMessages[DayPartFor(hour)]
	pool := make([]string, 0, len(bucket)+len(motivationalMessages))
	pool = append(pool, bucket...)
	return append(pool, motivationalMessages...)
}

// MilestoneMessage returns the milestone copy for an elapsed-minute count,
// or "" below the first threshold. Thresholds are checked descending.
func MilestoneMessage(elapsedMinutes int) string {
	switch {
	case elapsedMinutes >= 60:
		return fmt.Sprintf("%d minutes of pure focus! 🔥", elapsedMinutes)
	case elapsedMinutes >= 45:
		return fmt.Sprintf("%d mins of coding zen! 🧘", elapsedMinutes)
	case elapsedMinutes >= 30:
		return fmt.Sprintf("%d minutes of flow state! 🌊", elapsedMinutes)
	case elapsedMinutes >= 15:
		return fmt.Sprintf("%d mins of solid progress! 📈", elapsedMinutes)
	case elapsedMinutes >= 5:
		return fmt.Sprintf("%d minutes in the zone! 🎯", elapsedMinutes)
	}
	return ""
}
