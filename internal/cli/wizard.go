package cli

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/napstack/napstack/internal/cli/formatter"
	"github.com/napstack/napstack/internal/domain"
)

// napstackHuhTheme returns a huh theme built on the Gruvbox palette.
func napstackHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorGreen).SetString("● ")
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorDim).SetString("○ ")
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// wizardInputDuration creates a huh form asking for a custom session length.
func wizardInputDuration(defaultMin int, result *string) *huh.Form {
	defStr := strconv.Itoa(defaultMin)
	*result = defStr

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Session length (minutes)").
				Description("Presets are 5, 20, 45 and 90.").
				Placeholder(defStr).
				Value(result).
				Validate(validateMinutes),
		),
	).WithTheme(napstackHuhTheme()).WithShowHelp(false)
}

// wizardSelectSounds creates a huh form to pick the active mixer channels.
// Channels without audio are listed but marked.
func wizardSelectSounds(selected *[]string) *huh.Form {
	options := make([]huh.Option[string], 0, len(domain.Sounds))
	for _, s := range domain.Sounds {
		label := s.Icon + " " + s.Name
		if s.Source == "" {
			label += " (no audio yet)"
		}
		opt := huh.NewOption(label, s.ID)
		for _, id := range *selected {
			if id == s.ID {
				opt = opt.Selected(true)
			}
		}
		options = append(options, opt)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Ambient sounds").
				Options(options...).
				Value(selected),
		),
	).WithTheme(napstackHuhTheme())
}

// parseMinutes converts a validated form value, returning fallback when it
// is not a positive number.
func parseMinutes(s string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
