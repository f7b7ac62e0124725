package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/pomo-dev/pomo/internal/app"
	"github.com/pomo-dev/pomo/internal/usecase"
	"github.com/spf13/cobra"
)

// newTaskCommand creates the task command group.
func newTaskCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage a pomodoro's task checklist",
	}

	cmd.AddCommand(
		newTaskAddCommand(c),
		newTaskToggleCommand(c),
		newTaskListCommand(c),
	)

	return cmd
}

// newTaskAddCommand creates the task add command.
func newTaskAddCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "add <pomodoro-id> <description>",
		Short: "Add a task to a pomodoro",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.AddTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.AddTaskInput{
				Identity:    callerIdentity(c, cmd),
				PomodoroID:  args[0],
				Description: strings.Join(args[1:], " "),
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added task %s\n", out.Task.ID)
			return nil
		},
	}
}

// newTaskToggleCommand creates the task toggle command.
func newTaskToggleCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <task-id>",
		Short: "Flip a task between done and not done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.ToggleTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ToggleTaskInput{
				Identity: callerIdentity(c, cmd),
				TaskID:   args[0],
			})
			if err != nil {
				return err
			}

			mark := " "
			if out.Task.Completed {
				mark = "x"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s\n", mark, out.Task.Description)
			return nil
		},
	}
}

// newTaskListCommand creates the task list command.
func newTaskListCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "list <pomodoro-id>",
		Short: "List a pomodoro's tasks in the order they were added",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.ListTasksUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ListTasksInput{PomodoroID: args[0]})
			if err != nil {
				return err
			}

			if len(out.Tasks) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No tasks found")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, t := range out.Tasks {
				mark := " "
				if t.Completed {
					mark = "x"
				}
				_, _ = fmt.Fprintf(w, "[%s]\t%s\t%s\n", mark, shortID(t.ID), t.Description)
			}
			return w.Flush()
		},
	}
}
