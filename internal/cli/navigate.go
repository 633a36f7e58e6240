package cli

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/napstack/napstack/internal/domain"
)

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// popViewMsg pops the current view off the navigation stack,
// returning to the previous view.
type popViewMsg struct{}

// wizardCompleteMsg is sent when a wizard form completes or is cancelled.
// The appModel handles it atomically: pop the wizard view, then run nextCmd.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

// flashMsg shows a transient line in the status bar until the next key.
type flashMsg struct {
	text string
}

// Broadcast messages reach every view on the stack, so the dashboard keeps
// ticking and listening while another view is on top.

// tickMsg is the once-a-second redraw.
type tickMsg time.Time

// activityMsg carries one event from the activity log subscription.
type activityMsg struct {
	event domain.ActivityEvent
}

// activityClosedMsg reports that the subscription channel was closed.
type activityClosedMsg struct{}

// refreshViewMsg asks views to reload their data.
type refreshViewMsg struct{}

// pushView returns a tea.Cmd that pushes a view onto the stack.
func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

// popView returns a tea.Cmd that pops the current view.
func popView() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}

func flash(text string) tea.Cmd {
	return func() tea.Msg { return flashMsg{text: text} }
}

// wizardCompleteOutput pops the wizard and flashes text.
func wizardCompleteOutput(text string) wizardCompleteMsg {
	return wizardCompleteMsg{nextCmd: flash(text)}
}

func tickEvery(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func waitForActivity(events <-chan domain.ActivityEvent) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return activityClosedMsg{}
		}
		return activityMsg{event: ev}
	}
}

func isBroadcast(msg tea.Msg) bool {
	switch msg.(type) {
	case tickMsg, activityMsg, activityClosedMsg, refreshViewMsg:
		return true
	}
	return false
}
