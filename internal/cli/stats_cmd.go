package cli

import (
	"fmt"
	"strings"

	"github.com/napstack/napstack/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show session, minute, ship and streak counters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			stats, err := app.Stats.Get(ctx)
			if err != nil {
				return err
			}
			today, err := app.Stats.Today(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderBox("stats", strings.TrimRight(formatter.FormatStats(stats, today), "\n")))
			return nil
		},
	}
}

func newShipCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "ship",
		Short: "Record that you shipped something",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := app.Stats.Ship(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Ships so far: %d\n",
				formatter.StyleGreen.Render("🚀 Shipped!"), stats.Ships)
			return nil
		},
	}
}
