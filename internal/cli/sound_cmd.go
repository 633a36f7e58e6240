package cli

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/napstack/napstack/internal/cli/formatter"
	"github.com/napstack/napstack/internal/domain"
	"github.com/spf13/cobra"
)

func newSoundsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sounds",
		Aliases: []string{"sound", "mixer"},
		Short:   "Manage the ambient sound mixer",
	}

	cmd.AddCommand(
		newSoundListCmd(app),
		newSoundToggleCmd(app),
		newSoundVolumeCmd(app),
		newSoundPickCmd(app),
	)

	return cmd
}

func newSoundListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List mixer channels and the saved volume",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs, err := app.Sounds.Load(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSoundList(prefs))
			return nil
		},
	}
}

func newSoundToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:       "toggle <sound>",
		Short:     "Switch a channel on or off",
		Args:      cobra.ExactArgs(1),
		ValidArgs: soundIDs(),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if _, err := app.Sounds.Load(ctx); err != nil {
				return err
			}
			on, err := app.Sounds.Toggle(ctx, args[0])
			if err != nil {
				return err
			}
			s, _ := domain.SoundByID(args[0])
			state := formatter.Dim("off")
			if on {
				state = formatter.StyleGreen.Render("on")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s is %s\n", s.Icon, s.Name, state)
			return nil
		},
	}
}

func newSoundVolumeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "volume [0-100]",
		Short: "Show or set the mixer volume",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			prefs, err := app.Sounds.Load(ctx)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Volume: %d%%\n", prefs.Volume)
				return nil
			}
			v, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("volume must be a number: %w", err)
			}
			if err := app.Sounds.SetVolume(ctx, v); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Volume set to %d%%\n", v)
			return nil
		},
	}
}

func newSoundPickCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Choose the active channels from a list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("sounds pick needs an interactive terminal; use 'napstack sounds toggle <sound>'")
			}
			ctx := cmd.Context()
			prefs, err := app.Sounds.Load(ctx)
			if err != nil {
				return err
			}

			selected := slices.Clone(prefs.Active)
			if err := wizardSelectSounds(&selected).RunWithContext(ctx); err != nil {
				return err
			}
			for _, id := range soundChanges(prefs.Active, selected) {
				if _, err := app.Sounds.Toggle(ctx, id); err != nil {
					return err
				}
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSoundList(app.Sounds.Prefs()))
			return nil
		},
	}
}

// soundChanges lists the ids whose state differs between the current and
// wanted sets: removals first, then additions in catalog order.
func soundChanges(current, wanted []string) []string {
	var changes []string
	for _, id := range current {
		if !slices.Contains(wanted, id) {
			changes = append(changes, id)
		}
	}
	for _, s := range domain.Sounds {
		if slices.Contains(wanted, s.ID) && !slices.Contains(current, s.ID) {
			changes = append(changes, s.ID)
		}
	}
	return changes
}

func soundIDs() []string {
	ids := make([]string, 0, len(domain.Sounds))
	for _, s := range domain.Sounds {
		ids = append(ids, s.ID)
	}
	return ids
}
