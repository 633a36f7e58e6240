package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/napstack/napstack/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StateStyle returns the style used for a timer state.
func StateStyle(state domain.TimerState) lipgloss.Style {
	switch state {
	case domain.TimerRunning:
		return StyleGreen
	case domain.TimerPaused:
		return StyleYellow
	case domain.TimerCompleted:
		return StylePurple
	default:
		return StyleDim
	}
}

// StateIndicator returns a colored state label such as "● RUNNING".
func StateIndicator(state domain.TimerState) string {
	switch state {
	case domain.TimerRunning:
		return StyleGreen.Render("● RUNNING")
	case domain.TimerPaused:
		return StyleYellow.Render("‖ PAUSED")
	case domain.TimerCompleted:
		return StylePurple.Render("✔ DONE")
	default:
		return StyleDim.Render("○ READY")
	}
}

// CategoryStyle colors feed events by what produced them.
func CategoryStyle(c domain.Category) lipgloss.Style {
	switch c {
	case domain.CategoryTimerStart, domain.CategoryTimerResume:
		return StyleGreen
	case domain.CategoryTimerComplete, domain.CategoryShip:
		return StylePurple
	case domain.CategoryTimerPause, domain.CategoryTimerEarly:
		return StyleYellow
	case domain.CategorySound:
		return StyleBlue
	case domain.CategoryQuiet:
		return StyleDim
	default:
		return StyleFg
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
