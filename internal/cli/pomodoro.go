package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/pomo-dev/pomo/internal/app"
	"github.com/pomo-dev/pomo/internal/usecase"
	"github.com/spf13/cobra"
)

// newStartCommand creates the start command.
func newStartCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Focus  int
		Break  int
		Preset string
	}

	cmd := &cobra.Command{
		Use:   "start <session-id>",
		Short: "Start a pomodoro cycle in a session",
		Long: `Start a new pomodoro cycle in the given session.

Durations come from, in order of precedence: --preset, the --focus
and --break flags, and the configured defaults. The cycle begins in
focus state.

Examples:
  pomo start 4f3a2b1c
  pomo start 4f3a2b1c --focus 50 --break 10
  pomo start 4f3a2b1c --preset deep-work-id`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			focus := c.Config.Durations.Focus
			brk := c.Config.Durations.Break
			if cmd.Flags().Changed("focus") {
				focus = opts.Focus * 60
			}
			if cmd.Flags().Changed("break") {
				brk = opts.Break * 60
			}

			uc := c.StartPomodoroUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.StartPomodoroInput{
				Identity:      callerIdentity(c, cmd),
				SessionID:     args[0],
				PresetID:      opts.Preset,
				FocusDuration: focus,
				BreakDuration: brk,
			})
			if err != nil {
				return err
			}

			p := out.Pomodoro
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Started pomodoro %s (focus %s, break %s)\n",
				p.ID, formatDuration(p.FocusDuration), formatDuration(p.BreakDuration))
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.Focus, "focus", 0, "Focus duration in minutes")
	cmd.Flags().IntVar(&opts.Break, "break", 0, "Break duration in minutes")
	cmd.Flags().StringVar(&opts.Preset, "preset", "", "Preset ID to take durations from")
	cmd.MarkFlagsMutuallyExclusive("preset", "focus")
	cmd.MarkFlagsMutuallyExclusive("preset", "break")

	return cmd
}

// newBreakCommand creates the break command.
func newBreakCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "break <pomodoro-id>",
		Short: "Move a pomodoro from focus to break",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.AdvanceToBreakUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.AdvanceToBreakInput{
				Identity:   callerIdentity(c, cmd),
				PomodoroID: args[0],
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Pomodoro %s is now %s\n", shortID(out.Pomodoro.ID), renderStatus(out.Pomodoro.Status))
			return nil
		},
	}
}

// newCompleteCommand creates the complete command.
func newCompleteCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "complete <pomodoro-id>",
		Short: "Complete a pomodoro cycle",
		Long: `Complete a pomodoro cycle.

Legal from focus (skipping the break) or from break. A completed
cycle cannot change state again.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.CompletePomodoroUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.CompletePomodoroInput{
				Identity:   callerIdentity(c, cmd),
				PomodoroID: args[0],
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Pomodoro %s is now %s\n", shortID(out.Pomodoro.ID), renderStatus(out.Pomodoro.Status))
			return nil
		},
	}
}

// newPomodorosCommand creates the pomodoros command.
func newPomodorosCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "pomodoros <session-id>",
		Short: "List a session's pomodoro cycles, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.ListPomodorosUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ListPomodorosInput{SessionID: args[0]})
			if err != nil {
				return err
			}

			if len(out.Pomodoros) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No pomodoros found")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "ID\tSTATUS\tFOCUS\tBREAK\tSTARTED")
			for _, p := range out.Pomodoros {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					shortID(p.ID), renderStatus(p.Status),
					formatDuration(p.FocusDuration), formatDuration(p.BreakDuration),
					formatTime(p.StartTime))
			}
			return w.Flush()
		},
	}
}
