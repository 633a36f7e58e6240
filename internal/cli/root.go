package cli

import (
	"context"
	"log/slog"
	"time"

	"github.com/napstack/napstack/internal/activity"
	"github.com/napstack/napstack/internal/clock"
	"github.com/napstack/napstack/internal/domain"
	"github.com/napstack/napstack/internal/presence"
	"github.com/napstack/napstack/internal/service"
	"github.com/napstack/napstack/internal/timer"
	"github.com/spf13/cobra"
)

// App holds the live components and service interfaces used by CLI commands
// and the dashboard.
type App struct {
	Timer    *timer.Timer
	Activity *activity.Log
	Presence *presence.Counter
	Stats    service.StatsService
	Sounds   service.SoundService
	Clock    clock.Clock
	Logger   *slog.Logger

	// Celebration is how long the ship banner stays up.
	Celebration time.Duration

	// IsInteractive reports whether the process is attached to a terminal.
	// Nil means it is not.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) now() time.Time {
	if a.Clock == nil {
		return time.Now()
	}
	return a.Clock.Now()
}

func (a *App) logger() *slog.Logger {
	if a.Logger == nil {
		return slog.Default()
	}
	return a.Logger
}

// CreditRecorder adapts StatsService.RecordSession to the timer's credit
// listener. Failures are logged; the timer never sees them.
func CreditRecorder(stats service.StatsService, logger *slog.Logger) func(domain.SessionCredit) {
	if logger == nil {
		logger = slog.Default()
	}
	return func(credit domain.SessionCredit) {
		if _, err := stats.RecordSession(context.Background(), credit); err != nil {
			logger.Error("recording session failed",
				"minutes", credit.Minutes,
				"outcome", string(credit.Outcome),
				"error", err.Error(),
			)
		}
	}
}

// NewRootCmd creates the top-level "napstack" command and registers all
// subcommands against the provided App. Without a subcommand it opens the
// dashboard on a terminal and prints help otherwise.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "napstack",
		Short:         "Focus timer and live feed for parents who code",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return cmd.Help()
			}
			return runDashboard(cmd, app)
		},
	}

	root.AddCommand(
		newDashboardCmd(app),
		newRunCmd(app),
		newStatsCmd(app),
		newShipCmd(app),
		newSessionsCmd(app),
		newPresetsCmd(app),
		newSoundsCmd(app),
	)

	return root
}
