package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/napstack/napstack/internal/cli/formatter"
	"github.com/napstack/napstack/internal/domain"
)

const historyDays = 30

type sessionsLoadedMsg struct {
	logs []*domain.SessionLog
	err  error
}

// sessionsView lists recent sessions in a scrollable viewport.
type sessionsView struct {
	state  *SharedState
	vp     viewport.Model
	back   key.Binding
	logs   []*domain.SessionLog
	err    error
	loaded bool
}

func newSessionsView(state *SharedState) *sessionsView {
	vp := viewport.New(max(state.Width, 20), state.ContentHeight())
	vp.KeyMap = viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		Up:           key.NewBinding(key.WithKeys("up", "k")),
		Down:         key.NewBinding(key.WithKeys("down", "j")),
	}
	return &sessionsView{
		state: state,
		vp:    vp,
		back:  key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "back")),
	}
}

func (v *sessionsView) Init() tea.Cmd {
	return v.loadData()
}

func (v *sessionsView) loadData() tea.Cmd {
	stats := v.state.App.Stats
	return func() tea.Msg {
		logs, err := stats.ListSessions(context.Background(), historyDays)
		return sessionsLoadedMsg{logs: logs, err: err}
	}
}

func (v *sessionsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.vp.Width = msg.Width
		v.vp.Height = v.state.ContentHeight()
		return v, nil

	case sessionsLoadedMsg:
		v.logs, v.err, v.loaded = msg.logs, msg.err, true
		v.vp.SetContent(v.render())
		v.vp.GotoTop()
		return v, nil

	case refreshViewMsg:
		return v, v.loadData()

	case activityMsg:
		switch msg.event.Category {
		case domain.CategoryTimerComplete, domain.CategoryTimerEarly:
			return v, v.loadData()
		}
		return v, nil

	case tea.KeyMsg:
		if key.Matches(msg, v.back) {
			return v, popView()
		}
		var cmd tea.Cmd
		v.vp, cmd = v.vp.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *sessionsView) render() string {
	if v.err != nil {
		return formatter.StyleRed.Render("Could not load sessions: " + v.err.Error())
	}
	total := 0
	for _, l := range v.logs {
		total += l.CreditedMin
	}
	header := formatter.Header(fmt.Sprintf("Last %d days", historyDays))
	summary := formatter.Dim(fmt.Sprintf("%d sessions, %s", len(v.logs), formatter.FormatMinutes(total)))
	return header + "\n" + summary + "\n\n" + formatter.FormatSessions(v.logs, v.state.App.now())
}

func (v *sessionsView) View() string {
	if !v.loaded {
		return formatter.Dim("Loading sessions...")
	}
	return v.vp.View()
}

func (v *sessionsView) ID() ViewID    { return ViewSessions }
func (v *sessionsView) Title() string { return "history" }
func (v *sessionsView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "scroll")),
		v.back,
	}
}
