package cli

import (
	"fmt"

	"github.com/napstack/napstack/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSessionsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sessions",
		Aliases: []string{"session"},
		Short:   "Inspect credited focus sessions",
	}

	cmd.AddCommand(newSessionListCmd(app))

	return cmd
}

func newSessionListCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logs, err := app.Stats.ListSessions(cmd.Context(), days)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSessions(logs, app.now()))

			total := 0
			for _, l := range logs {
				total += l.CreditedMin
			}
			if len(logs) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n",
					formatter.Dim(fmt.Sprintf("%d sessions, %s in the last %d days", len(logs), formatter.FormatMinutes(total), days)))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "how many days back to list")

	return cmd
}

func newPresetsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the session presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPresets())
			return nil
		},
	}
}
