package domain

import (
	"fmt"
	"strings"
)

// Preset is a named, fixed-length timer configuration with its own feed copy.
type Preset struct {
	Name         string
	Minutes      int
	Emoji        string
	StartText    string
	CompleteText string
}

// Presets is the fixed catalog, ordered by length.
var Presets = []Preset{
	{Name: "Quick Fix", Minutes: 5, Emoji: "⚡", StartText: "Quick fix mode activated! ⚡", CompleteText: "Quick fix accomplished! ✅"},
	{Name: "Focus Block", Minutes: 20, Emoji: "⏰", StartText: "Focus block started! ⏰", CompleteText: "Focus block completed! ⏰"},
	{Name: "Naptime Sprint", Minutes: 45, Emoji: "🍼", StartText: "Someone started a naptime sprint! 💪", CompleteText: "A parent completed a naptime sprint! 🎉"},
	{Name: "Night Owl", Minutes: 90, Emoji: "🦉", StartText: "Night owl session begun! 🦉", CompleteText: "Night owl session crushed! 🌙"},
}

// PresetFor returns the catalog entry for a duration, if any.
func PresetFor(minutes int) (Preset, bool) {
	for _, p := range Presets {
		if p.Minutes == minutes {
			return p, true
		}
	}
	return Preset{}, false
}

// PresetByName matches a preset by case-insensitive name, ignoring spaces and dashes.
func PresetByName(name string) (Preset, bool) {
	want := presetKey(name)
	for _, p := range Presets {
		if presetKey(p.Name) == want {
			return p, true
		}
	}
	return Preset{}, false
}

func presetKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s)
}

// StartCopy returns the feed text for starting a session of the given length.
// Durations outside the catalog get generic copy.
func StartCopy(minutes int) string {
	if p, ok := PresetFor(minutes); ok {
		return p.StartText
	}
	return fmt.Sprintf("Someone started a %d-minute session! ⏱️", minutes)
}

// CompleteCopy returns the feed text for finishing a session of the given length.
func CompleteCopy(minutes int) string {
	if p, ok := PresetFor(minutes); ok {
		return p.CompleteText
	}
	return fmt.Sprintf("A parent finished a %d-minute session! 🎉", minutes)
}

// EarlyCopy returns the feed text for an early exit that still earned credit.
func EarlyCopy(minutes int) string {
	unit := "mins"
	if minutes == 1 {
		unit = "min"
	}
	return fmt.Sprintf("Parent ended early but still got %d %s! 💪", minutes, unit)
}

const (
	PauseCopy  = "Chaos handled, parent paused ⏸️"
	ResumeCopy = "Back to coding! A parent resumed 💻"
	ShipCopy   = "Someone just shipped code! 🚀"
	QuietCopy  = "Quiet coding moment... 🧘"
)
