package cli

import (
	"fmt"
	"strings"

	"github.com/pomo-dev/pomo/internal/app"
	"github.com/pomo-dev/pomo/internal/usecase"
	"github.com/spf13/cobra"
)

// newReflectCommand creates the reflect command.
func newReflectCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Rating int
		Note   string
	}

	cmd := &cobra.Command{
		Use:   "reflect <pomodoro-id>",
		Short: "Record a reflection on a pomodoro",
		Long: `Record a reflection on a pomodoro cycle.

A cycle holds at most one reflection; reflecting again replaces it.
Reflections can be written once the cycle has left focus. With no
flags, the existing reflection is shown instead.

Examples:
  pomo reflect 4f3a2b1c --rating 4 --note "good run, one interruption"
  pomo reflect 4f3a2b1c --note "lost the thread halfway"
  pomo reflect 4f3a2b1c`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("rating") && !cmd.Flags().Changed("note") {
				return showReflection(c, cmd, args[0])
			}

			in := usecase.SetReflectionInput{
				Identity:    callerIdentity(c, cmd),
				PomodoroID:  args[0],
				Description: opts.Note,
			}
			if cmd.Flags().Changed("rating") {
				in.Rating = &opts.Rating
			}

			uc := c.SetReflectionUseCase()
			out, err := uc.Execute(cmd.Context(), in)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Recorded reflection %s\n", renderReflectionSummary(out.Reflection.Rating, out.Reflection.Description))
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.Rating, "rating", 0, "Rating from 1 (poor) to 5 (great)")
	cmd.Flags().StringVar(&opts.Note, "note", "", "Free-form reflection text")

	return cmd
}

// showReflection prints the pomodoro's existing reflection.
func showReflection(c *app.Container, cmd *cobra.Command, pomodoroID string) error {
	uc := c.GetReflectionUseCase()
	out, err := uc.Execute(cmd.Context(), usecase.GetReflectionInput{PomodoroID: pomodoroID})
	if err != nil {
		return err
	}
	if out.Reflection == nil {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No reflection recorded")
		return nil
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderReflectionSummary(out.Reflection.Rating, out.Reflection.Description))
	return nil
}

// renderReflectionSummary renders a one-line view of a reflection.
func renderReflectionSummary(rating *int, note string) string {
	var parts []string
	if rating != nil {
		parts = append(parts, fmt.Sprintf("(%d/5)", *rating))
	}
	if note != "" {
		parts = append(parts, note)
	}
	if len(parts) == 0 {
		return "(empty)"
	}
	return strings.Join(parts, " ")
}
