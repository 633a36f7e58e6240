package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/napstack/napstack/internal/cli/formatter"
	"github.com/napstack/napstack/internal/domain"
	"github.com/spf13/cobra"
)

func newRunCmd(app *App) *cobra.Command {
	var minutes int
	var preset presetValue

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a focus session in the foreground, printing the feed",
		Long: "Run a focus session without the dashboard. Feed events are printed as they\n" +
			"happen. Ctrl-C ends the session early and credits the whole minutes elapsed.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if preset.set && cmd.Flags().Changed("minutes") {
				return fmt.Errorf("use either --minutes or --preset, not both")
			}
			if preset.set {
				minutes = preset.preset.Minutes
			}
			if err := validateMinutes(fmt.Sprint(minutes)); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runSession(ctx, app, cmd.OutOrStdout(), minutes)
		},
	}

	cmd.Flags().IntVarP(&minutes, "minutes", "m", 45, "session length in minutes")
	cmd.Flags().VarP(&preset, "preset", "p", "preset name or number ("+presetNames()+")")

	return cmd
}

// runSession starts the timer and echoes feed events until the session
// completes or ctx is cancelled, in which case it ends early.
func runSession(ctx context.Context, app *App, out io.Writer, minutes int) error {
	if s := app.Timer.Snapshot().State; s == domain.TimerRunning || s == domain.TimerPaused {
		return fmt.Errorf("a session is already in progress")
	}
	events := app.Activity.Subscribe(32)

	label := fmt.Sprintf("%d min", minutes)
	if p, ok := domain.PresetFor(minutes); ok {
		label = p.Emoji + " " + p.Name
	}
	fmt.Fprintf(out, "%s for %s. %s\n", formatter.Bold("Running"), label, formatter.Dim("Ctrl-C ends early."))

	app.Timer.Start(minutes)

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			fmt.Fprintln(out, formatter.FormatEventLine(ev))
			if ev.Category == domain.CategoryTimerComplete {
				fmt.Fprintf(out, "\n%s %s credited.\n", formatter.StyleGreen.Render("✔"), formatter.FormatMinutes(minutes))
				return nil
			}

		case <-ctx.Done():
			credited := app.Timer.EndEarly()
			drainEvents(events, out)
			if credited == 0 {
				fmt.Fprintln(out, formatter.Dim("Session abandoned before the first minute; nothing credited."))
				return nil
			}
			fmt.Fprintf(out, "\n%s %s credited.\n", formatter.StyleYellow.Render("✔"), formatter.FormatMinutes(credited))
			return nil
		}
	}
}

// drainEvents prints whatever is already buffered.
func drainEvents(events <-chan domain.ActivityEvent, out io.Writer) {
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			fmt.Fprintln(out, formatter.FormatEventLine(ev))
		default:
			return
		}
	}
}
