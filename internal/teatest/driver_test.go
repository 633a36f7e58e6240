package teatest

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type echoModel struct{ text string }

func (m echoModel) Init() tea.Cmd { return nil }
func (m echoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		m.text += k.String()
	}
	return m, nil
}
func (m echoModel) View() string { return m.text }

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "ready", "ready"},
		{"sgr", "\x1b[1;32mRUNNING\x1b[0m", "RUNNING"},
		{"cursor", "\x1b[?25lhidden\x1b[?25h", "hidden"},
		{"osc hyperlink", "\x1b]8;;https://example.com\x07docs\x1b]8;;\x07", "docs"},
		{"osc st terminator", "\x1b]0;title\x1b\\body", "body"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripANSI(tt.in))
		})
	}
}

func TestDriver_TypeAndPlainView(t *testing.T) {
	d := New(t, echoModel{})
	d.DrainInit()

	d.Type("ab")
	d.PressKey(' ')

	assert.Equal(t, "ab ", d.PlainView())
	assert.Zero(t, d.Skipped())
}
