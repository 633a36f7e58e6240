package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/napstack/napstack/internal/domain"
)

// presetKeys label the preset buttons, in catalog order.
var presetKeys = []string{"1", "2", "3", "4"}

// mixerKeys toggle the mixer channels, in catalog order.
var mixerKeys = []string{"a", "s", "d", "f"}

const volumeStep = 10

type dashboardKeys struct {
	Presets  []key.Binding
	Toggle   key.Binding
	EndEarly key.Binding
	Reset    key.Binding
	Custom   key.Binding
	Sounds   []key.Binding
	VolUp    key.Binding
	VolDown  key.Binding
	Ship     key.Binding
	History  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newDashboardKeys() dashboardKeys {
	k := dashboardKeys{
		Toggle:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pause/resume")),
		EndEarly: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "end early")),
		Reset:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "reset")),
		Custom:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "custom length")),
		VolUp:    key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "volume up")),
		VolDown:  key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "volume down")),
		Ship:     key.NewBinding(key.WithKeys("!"), key.WithHelp("!", "I shipped!")),
		History:  key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "history")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
	for i, p := range domain.Presets {
		k.Presets = append(k.Presets, key.NewBinding(
			key.WithKeys(presetKeys[i]),
			key.WithHelp(presetKeys[i], p.Name),
		))
	}
	for i, s := range domain.Sounds {
		k.Sounds = append(k.Sounds, key.NewBinding(
			key.WithKeys(mixerKeys[i]),
			key.WithHelp(mixerKeys[i], s.Name),
		))
	}
	return k
}

// ShortHelp implements help.KeyMap.
func (k dashboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.EndEarly, k.Ship, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k dashboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.Presets,
		{k.Toggle, k.EndEarly, k.Reset, k.Custom},
		append(append([]key.Binding{}, k.Sounds...), k.VolUp, k.VolDown),
		{k.Ship, k.History, k.Help, k.Quit},
	}
}

// matchIndex returns the index of the first binding matching msg, or -1.
func matchIndex(msg tea.KeyMsg, bindings []key.Binding) int {
	for i, b := range bindings {
		if key.Matches(msg, b) {
			return i
		}
	}
	return -1
}
