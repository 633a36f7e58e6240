package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/napstack/napstack/internal/domain"
	"github.com/napstack/napstack/internal/timer"
)

const timerBarWidth = 24

var styleClock = lipgloss.NewStyle().Foreground(ColorFg).Bold(true).Padding(0, 1)

// FormatTimer renders the timer panel: state, countdown, progress and the
// rotating message.
func FormatTimer(s timer.Snapshot) string {
	var b strings.Builder

	b.WriteString(StateIndicator(s.State))
	if p, ok := domain.PresetFor(s.DurationMinutes); ok && s.State != domain.TimerIdle {
		b.WriteString("  " + Dim(p.Emoji+" "+p.Name))
	} else if s.DurationMinutes > 0 {
		b.WriteString("  " + Dim(fmt.Sprintf("⏱️ %d min", s.DurationMinutes)))
	}
	b.WriteString("\n\n")

	clock := "--:--"
	switch s.State {
	case domain.TimerRunning, domain.TimerPaused:
		clock = FormatClock(s.RemainingSeconds)
	case domain.TimerCompleted:
		clock = FormatClock(0)
	}
	b.WriteString(StateStyle(s.State).Inherit(styleClock).Render(clock))
	b.WriteString("\n\n")

	b.WriteString(RenderProgress(s.Progress(), timerBarWidth, s.State != domain.TimerRunning))
	b.WriteString("\n")

	if s.Message != "" {
		b.WriteString("\n" + StyleBlue.Italic(true).Render(s.Message) + "\n")
	}
	return b.String()
}

// FormatPresetBar renders the preset buttons with their key hints, two per
// row. The preset matching the active duration is highlighted.
func FormatPresetBar(keys []string, activeMinutes int) string {
	parts := make([]string, 0, len(domain.Presets))
	for i, p := range domain.Presets {
		key := ""
		if i < len(keys) {
			key = keys[i]
		}
		label := fmt.Sprintf("%s %s %dm", p.Emoji, p.Name, p.Minutes)
		if p.Minutes == activeMinutes {
			label = StyleHeader.Render(label)
		} else {
			label = StyleFg.Render(label)
		}
		parts = append(parts, Dim("["+key+"]")+" "+label)
	}
	var rows []string
	for i := 0; i < len(parts); i += 2 {
		rows = append(rows, strings.Join(parts[i:min(i+2, len(parts))], "   "))
	}
	return strings.Join(rows, "\n")
}

// FormatPresets renders the preset catalog as a table.
func FormatPresets() string {
	rows := make([][]string, 0, len(domain.Presets))
	for i, p := range domain.Presets {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			p.Emoji + " " + Bold(p.Name),
			FormatMinutes(p.Minutes),
			Dim(p.StartText),
		})
	}
	return RenderTable([]string{"KEY", "PRESET", "LENGTH", "FEED"}, rows)
}
