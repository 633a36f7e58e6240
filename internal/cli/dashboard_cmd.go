package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"ui"},
		Short:   "Open the interactive dashboard",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd, app)
		},
	}
}

// runDashboard loads the saved mixer state and runs the TUI until quit.
func runDashboard(cmd *cobra.Command, app *App) error {
	ctx := cmd.Context()
	if _, err := app.Sounds.Load(ctx); err != nil {
		app.logger().Warn("loading sound preferences failed", "error", err.Error())
	}

	p := tea.NewProgram(newAppModel(app),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	_, err := p.Run()
	return err
}
