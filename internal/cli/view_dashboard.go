package cli

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/napstack/napstack/internal/cli/formatter"
	"github.com/napstack/napstack/internal/domain"
	"github.com/napstack/napstack/internal/timer"
)

const (
	tickInterval           = time.Second
	defaultCustomMinutes   = 30
	defaultShipCelebration = 3 * time.Second
	completeBanner         = "Session complete! Nice work"
	shipBanner             = "Shipped! 🚀"
)

// statsLoadedMsg carries the counters for the stats panel.
type statsLoadedMsg struct {
	stats domain.DailyStats
	today domain.TodaySummary
	err   error
}

// shippedMsg reports the outcome of the ship action.
type shippedMsg struct {
	stats domain.DailyStats
	err   error
}

// soundChangedMsg reports a mixer action. Failures are shown as a flash.
type soundChangedMsg struct {
	err error
}

// dashboardView is the home view: timer, live feed, mixer and stats.
type dashboardView struct {
	state  *SharedState
	keys   dashboardKeys
	help   help.Model
	events <-chan domain.ActivityEvent

	stats     domain.DailyStats
	today     domain.TodaySummary
	loaded    bool
	err       error
	lastState domain.TimerState
	shipUntil time.Time
}

func newDashboardView(state *SharedState) *dashboardView {
	h := help.New()
	h.Styles.ShortKey = formatter.StyleHeader
	h.Styles.FullKey = formatter.StyleHeader
	h.Styles.ShortDesc = formatter.StyleDim
	h.Styles.FullDesc = formatter.StyleDim

	return &dashboardView{
		state:     state,
		keys:      newDashboardKeys(),
		help:      h,
		events:    state.App.Activity.Subscribe(64),
		lastState: state.App.Timer.Snapshot().State,
	}
}

func (v *dashboardView) Init() tea.Cmd {
	return tea.Batch(
		v.loadData(),
		tickEvery(tickInterval),
		waitForActivity(v.events),
	)
}

// loadData fetches the stats panel counters.
func (v *dashboardView) loadData() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		ctx := context.Background()
		stats, err := app.Stats.Get(ctx)
		if err != nil {
			return statsLoadedMsg{err: err}
		}
		today, err := app.Stats.Today(ctx)
		return statsLoadedMsg{stats: stats, today: today, err: err}
	}
}

func (v *dashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.help.Width = msg.Width
		return v, nil

	case statsLoadedMsg:
		v.err = msg.err
		if msg.err == nil {
			v.stats, v.today, v.loaded = msg.stats, msg.today, true
		}
		return v, nil

	case shippedMsg:
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.stats = msg.stats
		v.shipUntil = v.state.App.now().Add(v.celebration())
		return v, nil

	case soundChangedMsg:
		if msg.err != nil {
			return v, flash(formatter.StyleRed.Render(msg.err.Error()))
		}
		return v, nil

	case tickMsg:
		return v, tea.Batch(v.syncTimer(), tickEvery(tickInterval))

	case activityMsg:
		var reload tea.Cmd
		switch msg.event.Category {
		case domain.CategoryTimerComplete, domain.CategoryTimerEarly, domain.CategoryShip:
			reload = v.loadData()
		}
		return v, tea.Batch(reload, waitForActivity(v.events))

	case activityClosedMsg:
		return v, nil

	case refreshViewMsg:
		return v, v.loadData()

	case tea.KeyMsg:
		return v.handleKey(msg)
	}
	return v, nil
}

// syncTimer reloads the stats when a session ended since the last look.
func (v *dashboardView) syncTimer() tea.Cmd {
	prev := v.lastState
	v.lastState = v.state.App.Timer.Snapshot().State
	wasActive := prev == domain.TimerRunning || prev == domain.TimerPaused
	ended := v.lastState == domain.TimerIdle || v.lastState == domain.TimerCompleted
	if wasActive && ended {
		return v.loadData()
	}
	return nil
}

func (v *dashboardView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	app := v.state.App

	if i := matchIndex(msg, v.keys.Presets); i >= 0 {
		v.state.startSession(domain.Presets[i].Minutes)
		return v, v.syncTimer()
	}
	if i := matchIndex(msg, v.keys.Sounds); i >= 0 {
		return v, v.toggleSound(domain.Sounds[i].ID)
	}

	switch {
	case key.Matches(msg, v.keys.Toggle):
		switch app.Timer.Snapshot().State {
		case domain.TimerIdle, domain.TimerCompleted:
			if v.state.LastDuration == 0 {
				return v, flash(formatter.Dim("Pick a preset with 1-4 or c for a custom length."))
			}
			v.state.startSession(v.state.LastDuration)
		default:
			app.Timer.Toggle()
		}
		return v, v.syncTimer()

	case key.Matches(msg, v.keys.EndEarly):
		app.Timer.EndEarly()
		return v, v.syncTimer()

	case key.Matches(msg, v.keys.Reset):
		app.Timer.Reset()
		return v, v.syncTimer()

	case key.Matches(msg, v.keys.Custom):
		snap := app.Timer.Snapshot()
		if snap.State == domain.TimerRunning || snap.State == domain.TimerPaused {
			return v, flash(formatter.Dim("Finish or reset the current session first."))
		}
		minutes := new(string)
		def := defaultCustomMinutes
		if v.state.LastDuration > 0 {
			def = v.state.LastDuration
		}
		form := wizardInputDuration(def, minutes)
		return v, startWizardCmd(v.state, "Custom session", form, func() tea.Cmd {
			v.state.startSession(parseMinutes(*minutes, 0))
			return nil
		})

	case key.Matches(msg, v.keys.VolUp):
		return v, v.setVolume(app.Sounds.Prefs().Volume + volumeStep)

	case key.Matches(msg, v.keys.VolDown):
		return v, v.setVolume(app.Sounds.Prefs().Volume - volumeStep)

	case key.Matches(msg, v.keys.Ship):
		return v, v.ship()

	case key.Matches(msg, v.keys.History):
		return v, pushView(newSessionsView(v.state))

	case key.Matches(msg, v.keys.Help):
		v.help.ShowAll = !v.help.ShowAll
		return v, nil
	}
	return v, nil
}

func (v *dashboardView) toggleSound(id string) tea.Cmd {
	sounds := v.state.App.Sounds
	return func() tea.Msg {
		_, err := sounds.Toggle(context.Background(), id)
		return soundChangedMsg{err: err}
	}
}

func (v *dashboardView) setVolume(volume int) tea.Cmd {
	volume = max(0, min(100, volume))
	sounds := v.state.App.Sounds
	return func() tea.Msg {
		return soundChangedMsg{err: sounds.SetVolume(context.Background(), volume)}
	}
}

func (v *dashboardView) ship() tea.Cmd {
	stats := v.state.App.Stats
	return func() tea.Msg {
		s, err := stats.Ship(context.Background())
		return shippedMsg{stats: s, err: err}
	}
}

func (v *dashboardView) celebration() time.Duration {
	if v.state.App.Celebration > 0 {
		return v.state.App.Celebration
	}
	return defaultShipCelebration
}

// ── rendering ────────────────────────────────────────────────────────────────

func (v *dashboardView) View() string {
	app := v.state.App
	snap := app.Timer.Snapshot()
	now := app.now()

	width := max(v.state.Width, 80)
	leftW := width*3/5 - 1
	rightW := width - leftW - 1

	timerPanel := panel("naptime timer", leftW,
		formatter.FormatTimer(snap)+"\n"+formatter.FormatPresetBar(presetKeys, v.activeMinutes(snap)))
	feedPanel := panel("live feed", rightW, formatter.FormatFeed(formatter.FeedView{
		Count:  app.Presence.Count(),
		HasNew: app.Activity.HasNew(),
		Events: app.Activity.View(),
		Now:    now,
	}))
	mixerPanel := panel("ambient mixer", leftW, formatter.FormatMixer(app.Sounds.Prefs(), mixerKeys))
	statsPanel := panel("today", rightW, v.renderStats())

	var b strings.Builder
	if banner := v.banner(snap, now); banner != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, formatter.FormatCelebration(banner)))
		b.WriteString("\n")
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, timerPanel, " ", feedPanel))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, mixerPanel, " ", statsPanel))
	if v.help.ShowAll {
		b.WriteString("\n")
		b.WriteString(v.help.View(v.keys))
	}
	return b.String()
}

func (v *dashboardView) renderStats() string {
	if v.err != nil {
		return formatter.StyleRed.Render("Stats unavailable: "+v.err.Error()) + "\n"
	}
	if !v.loaded {
		return formatter.Dim("Loading...") + "\n"
	}
	return formatter.FormatStats(v.stats, v.today) + "\n" +
		formatter.StyleRed.Bold(true).Render("[!] I SHIPPED SOMETHING! 🚀")
}

// banner picks the celebration text, if one is showing.
func (v *dashboardView) banner(snap timer.Snapshot, now time.Time) string {
	if now.Before(v.shipUntil) {
		return shipBanner
	}
	if snap.Celebrating {
		return completeBanner
	}
	return ""
}

// activeMinutes is the duration to highlight in the preset bar.
func (v *dashboardView) activeMinutes(snap timer.Snapshot) int {
	if snap.DurationMinutes > 0 {
		return snap.DurationMinutes
	}
	return v.state.LastDuration
}

func panel(title string, width int, content string) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(formatter.ColorDim).
		Padding(0, 1).
		Width(max(width-2, 10))
	return style.Render(formatter.StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + strings.TrimRight(content, "\n"))
}

func (v *dashboardView) ID() ViewID    { return ViewDashboard }
func (v *dashboardView) Title() string { return "" }
func (v *dashboardView) ShortHelp() []key.Binding {
	return v.keys.ShortHelp()
}
