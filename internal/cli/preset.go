package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/pomo-dev/pomo/internal/app"
	"github.com/pomo-dev/pomo/internal/domain"
	"github.com/pomo-dev/pomo/internal/usecase"
	"github.com/spf13/cobra"
)

// newPresetCommand creates the preset command group.
func newPresetCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Manage duration presets",
	}

	cmd.AddCommand(
		newPresetNewCommand(c),
		newPresetListCommand(c),
		newPresetSearchCommand(c),
	)

	return cmd
}

// newPresetNewCommand creates the preset new command.
func newPresetNewCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Focus int
		Break int
	}

	cmd := &cobra.Command{
		Use:   "new <name>",
		Short: "Create a duration preset",
		Long: `Create a named focus/break duration pair for reuse with
'pomo start --preset'.

Examples:
  pomo preset new deep-work --focus 50 --break 10
  pomo preset new classic --focus 25 --break 5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.CreatePresetUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.CreatePresetInput{
				Identity:      callerIdentity(c, cmd),
				Name:          args[0],
				FocusDuration: opts.Focus * 60,
				BreakDuration: opts.Break * 60,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created preset %s (%s)\n", out.Preset.Name, out.Preset.ID)
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.Focus, "focus", 0, "Focus duration in minutes (required)")
	cmd.Flags().IntVar(&opts.Break, "break", 0, "Break duration in minutes (required)")
	_ = cmd.MarkFlagRequired("focus")
	_ = cmd.MarkFlagRequired("break")

	return cmd
}

// newPresetListCommand creates the preset list command.
func newPresetListCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your presets, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ListPresetsUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ListPresetsInput{
				Identity: callerIdentity(c, cmd),
			})
			if err != nil {
				return err
			}

			printPresetTable(cmd, out.Presets)
			return nil
		},
	}
}

// newPresetSearchCommand creates the preset search command.
func newPresetSearchCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Fuzzy-search your presets by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.SearchPresetsUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.SearchPresetsInput{
				Identity: callerIdentity(c, cmd),
				Query:    args[0],
			})
			if err != nil {
				return err
			}

			printPresetTable(cmd, out.Presets)
			return nil
		},
	}
}

// printPresetTable writes presets as an aligned table.
func printPresetTable(cmd *cobra.Command, presets []*domain.Preset) {
	if len(presets) == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No presets found")
		return
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tNAME\tFOCUS\tBREAK")
	for _, p := range presets {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", shortID(p.ID), p.Name, formatDuration(p.FocusDuration), formatDuration(p.BreakDuration))
	}
	_ = w.Flush()
}
