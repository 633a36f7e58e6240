package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/napstack/napstack/internal/activity"
	"github.com/napstack/napstack/internal/audio"
	"github.com/napstack/napstack/internal/domain"
	"github.com/napstack/napstack/internal/presence"
	"github.com/napstack/napstack/internal/repository"
	"github.com/napstack/napstack/internal/service"
	"github.com/napstack/napstack/internal/testutil"
	"github.com/napstack/napstack/internal/timer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 14, 0, 0, 0, time.UTC)

// testApp wires a full App on a fake clock, backed by an in-memory DB.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	clk := testutil.NewFakeClock(testNow)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	sessions := repository.NewSQLiteSessionLogRepo(database)
	prefs := repository.NewSQLitePreferenceRepo(database)

	n := 0
	feed := activity.New(activity.Options{
		Clock: clk,
		NewID: func() string { n++; return fmt.Sprintf("ev-%d", n) },
	})
	stats := service.NewStatsService(sessions, prefs, testutil.NewTestUoW(database), clk, feed.Record)
	sounds := service.NewSoundService(prefs, audio.LogPlayer{Logger: logger}, feed.Record, logger)

	tm := timer.New(timer.Options{
		Clock:            clk,
		Rand:             rand.New(rand.NewPCG(1, 2)),
		Emit:             feed.Record,
		OnCredit:         CreditRecorder(stats, logger),
		OnRunStateChange: feed.SetSessionActive,
	})
	counter := presence.New(presence.Options{Clock: clk, Rand: rand.New(rand.NewPCG(3, 4))})

	t.Cleanup(func() {
		tm.Close()
		counter.Close()
		feed.Close()
		sounds.Close()
	})

	return &App{
		Timer:    tm,
		Activity: feed,
		Presence: counter,
		Stats:    stats,
		Sounds:   sounds,
		Clock:    clk,
		Logger:   logger,
	}
}

// testClock returns the fake clock testApp installed.
func testClock(t *testing.T, app *App) *testutil.FakeClock {
	t.Helper()
	clk, ok := app.Clock.(*testutil.FakeClock)
	require.True(t, ok, "app is not on a fake clock")
	return clk
}

// executeCmd runs a CLI command against the test app and captures output.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	return executeCmdContext(t, context.Background(), app, args...)
}

func executeCmdContext(t *testing.T, ctx context.Context, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	return buf.String(), err
}

// waitForState polls until the timer reaches want. It is used from helper
// goroutines racing a foreground command.
func waitForState(app *App, want domain.TimerState) bool {
	deadline := time.After(5 * time.Second)
	for app.Timer.Snapshot().State != want {
		select {
		case <-deadline:
			return false
		case <-time.After(time.Millisecond):
		}
	}
	return true
}

// --- Root command ---

func TestRootCmd_PrintsHelpWhenNotInteractive(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "sounds")
	assert.Contains(t, out, "stats")
}

func TestRootCmd_UnknownCommand(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "nap")
	assert.Error(t, err)
}

// --- Stats and ship ---

func TestStatsCmd_Defaults(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "STATS")
	assert.Contains(t, out, "0 sessions")
	assert.Contains(t, out, "1 day streak")
	assert.Contains(t, out, "Today: 0 sessions, 0m")
}

func TestStatsCmd_AfterSessions(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	_, err := app.Stats.RecordSession(ctx, testutil.NewTestCredit(20, 20, testNow.Add(-30*time.Minute)))
	require.NoError(t, err)
	_, err = app.Stats.RecordSession(ctx, testutil.NewTestCredit(45, 7, testNow.Add(-7*time.Minute)))
	require.NoError(t, err)

	out, err := executeCmd(t, app, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "2 sessions")
	assert.Contains(t, out, "27 minutes")
	assert.Contains(t, out, "Today: 2 sessions, 27m")
}

func TestShipCmd_IncrementsAndAnnounces(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "ship")
	require.NoError(t, err)
	assert.Contains(t, out, "Ships so far: 1")

	out, err = executeCmd(t, app, "ship")
	require.NoError(t, err)
	assert.Contains(t, out, "Ships so far: 2")

	stats, err := app.Stats.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Ships)

	require.NotEmpty(t, app.Activity.Retained())
	assert.Equal(t, domain.ShipCopy, app.Activity.Retained()[0].Text)
}

// --- Sessions and presets ---

func TestSessionListCmd_Empty(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "sessions", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No sessions logged yet.")
}

func TestSessionListCmd_ShowsHistory(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	_, err := app.Stats.RecordSession(ctx, testutil.NewTestCredit(45, 45, testNow.Add(-45*time.Minute)))
	require.NoError(t, err)
	_, err = app.Stats.RecordSession(ctx, testutil.NewTestCredit(90, 12, testNow.Add(-12*time.Minute)))
	require.NoError(t, err)

	out, err := executeCmd(t, app, "session", "list", "--days", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Naptime Sprint")
	assert.Contains(t, out, "Night Owl")
	assert.Contains(t, out, "completed")
	assert.Contains(t, out, "ended early")
	assert.Contains(t, out, "2 sessions, 57m in the last 3 days")
}

func TestPresetsCmd(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "presets")
	require.NoError(t, err)
	for _, p := range domain.Presets {
		assert.Contains(t, out, p.Name)
		assert.Contains(t, out, p.StartText)
	}
}

// --- Sounds ---

func TestSoundsListCmd_Defaults(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "sounds", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Coffee Shop")
	assert.Contains(t, out, "(no audio)")
	assert.Contains(t, out, fmt.Sprintf("Volume: %d%%", domain.DefaultVolume))
}

func TestSoundsToggleCmd_PersistsAcrossLoads(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "sounds", "toggle", "rain")
	require.NoError(t, err)
	assert.Contains(t, out, "Rain is on")

	prefs, err := app.Sounds.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"rain"}, prefs.Active)

	out, err = executeCmd(t, app, "mixer", "toggle", "rain")
	require.NoError(t, err)
	assert.Contains(t, out, "Rain is off")

	prefs, err = app.Sounds.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, prefs.Active)
}

func TestSoundsToggleCmd_UnknownSound(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "sounds", "toggle", "whalesong")
	assert.ErrorIs(t, err, domain.ErrUnknownSound)
}

func TestSoundsVolumeCmd(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "sounds", "volume")
	require.NoError(t, err)
	assert.Contains(t, out, "Volume: 70%")

	out, err = executeCmd(t, app, "sounds", "volume", "35")
	require.NoError(t, err)
	assert.Contains(t, out, "Volume set to 35%")

	out, err = executeCmd(t, app, "sounds", "volume")
	require.NoError(t, err)
	assert.Contains(t, out, "Volume: 35%")
}

func TestSoundsVolumeCmd_Invalid(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "sounds", "volume", "150")
	assert.ErrorIs(t, err, domain.ErrInvalidVolume)

	_, err = executeCmd(t, app, "sounds", "volume", "loud")
	assert.Error(t, err)
}

func TestSoundsPickCmd_NeedsTerminal(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "sounds", "pick")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
}

// --- Run ---

func TestRunCmd_CompletesAndCredits(t *testing.T) {
	app := testApp(t)
	clk := testClock(t, app)

	go func() {
		if waitForState(app, domain.TimerRunning) {
			clk.Advance(5 * time.Minute)
		}
	}()

	out, err := executeCmd(t, app, "run", "--preset", "quick-fix")
	require.NoError(t, err)
	assert.Contains(t, out, "Running for ⚡ Quick Fix")
	assert.Contains(t, out, "Quick fix mode activated!")
	assert.Contains(t, out, "Quick fix accomplished!")
	assert.Contains(t, out, "5m credited.")

	stats, err := app.Stats.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Sessions)
	assert.Equal(t, 5, stats.TotalMinutes)
}

func TestRunCmd_InterruptCreditsElapsedMinutes(t *testing.T) {
	app := testApp(t)
	clk := testClock(t, app)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		if waitForState(app, domain.TimerRunning) {
			clk.Advance(3*time.Minute + 20*time.Second)
		}
		cancel()
	}()

	out, err := executeCmdContext(t, ctx, app, "run", "-m", "20")
	require.NoError(t, err)
	assert.Contains(t, out, "Parent ended early but still got 3 mins!")
	assert.Contains(t, out, "3m credited.")
	assert.Equal(t, domain.TimerIdle, app.Timer.Snapshot().State)

	logs, err := app.Stats.ListSessions(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, domain.OutcomeEndedEarly, logs[0].Outcome)
	assert.Equal(t, 20, logs[0].PresetMinutes)
	assert.Equal(t, 3, logs[0].CreditedMin)
}

func TestRunCmd_InterruptBeforeFirstMinute(t *testing.T) {
	app := testApp(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := executeCmdContext(t, ctx, app, "run", "--preset", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "nothing credited")
	assert.Equal(t, domain.TimerIdle, app.Timer.Snapshot().State)

	stats, err := app.Stats.Get(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.Sessions)
}

func TestRunCmd_RejectsBusyTimer(t *testing.T) {
	app := testApp(t)
	app.Timer.Start(45)

	_, err := executeCmd(t, app, "run", "-m", "5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already in progress")
	assert.Equal(t, 45, app.Timer.Snapshot().DurationMinutes)
}

func TestRunCmd_FlagErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"both flags", []string{"run", "-m", "10", "-p", "night-owl"}, "not both"},
		{"unknown preset", []string{"run", "-p", "siesta"}, "unknown preset"},
		{"preset number out of range", []string{"run", "-p", "7"}, "between 1 and 4"},
		{"zero minutes", []string{"run", "-m", "0"}, "positive number"},
		{"over a day", []string{"run", "-m", "1441"}, "at most 1440"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := testApp(t)
			_, err := executeCmd(t, app, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.Equal(t, domain.TimerIdle, app.Timer.Snapshot().State)
		})
	}
}

// --- Credit recording ---

func TestCreditRecorder_LogsFailures(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	stats := failingStats{err: fmt.Errorf("disk full")}

	CreditRecorder(stats, logger)(testutil.NewTestCredit(20, 20, testNow))

	assert.Contains(t, buf.String(), "recording session failed")
	assert.Contains(t, buf.String(), "disk full")
}

// failingStats is a StatsService whose writes fail.
type failingStats struct {
	service.StatsService
	err error
}

func (f failingStats) RecordSession(context.Context, domain.SessionCredit) (domain.DailyStats, error) {
	return domain.DailyStats{}, f.err
}
