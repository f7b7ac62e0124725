package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/pomo-dev/pomo/internal/app"
	"github.com/pomo-dev/pomo/internal/domain"
	"github.com/pomo-dev/pomo/internal/usecase"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// newSessionCommand creates the session command group.
func newSessionCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Manage work sessions",
	}

	cmd.AddCommand(
		newSessionNewCommand(c),
		newSessionListCommand(c),
		newSessionShowCommand(c),
		newSessionEndCommand(c),
		newSessionSearchCommand(c),
		newSessionExportCommand(c),
	)

	return cmd
}

// newSessionNewCommand creates the session new command.
func newSessionNewCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "new <name>",
		Short: "Create a new session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.CreateSessionUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.CreateSessionInput{
				Identity: callerIdentity(c, cmd),
				Name:     args[0],
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created session %s (%s)\n", out.Session.Name, out.Session.ID)
			return nil
		},
	}
}

// newSessionListCommand creates the session list command.
func newSessionListCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your sessions, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ListSessionsUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ListSessionsInput{
				Identity: callerIdentity(c, cmd),
			})
			if err != nil {
				return err
			}

			printSessionTable(cmd, out.Sessions)
			return nil
		},
	}
}

// newSessionShowCommand creates the session show command.
func newSessionShowCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show <session-id>",
		Short: "Show a session and its pomodoro cycles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.GetSessionUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.GetSessionInput{SessionID: args[0]})
			if err != nil {
				return err
			}
			if out.Session == nil {
				return domain.ErrSessionNotFound
			}

			s := out.Session
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "ID:      %s\n", s.ID)
			_, _ = fmt.Fprintf(w, "Name:    %s\n", s.Name)
			_, _ = fmt.Fprintf(w, "Owner:   %s\n", s.OwnerID)
			_, _ = fmt.Fprintf(w, "Started: %s\n", formatTime(s.StartTime))
			_, _ = fmt.Fprintf(w, "Ended:   %s\n", formatTime(s.EndTime))

			return printSessionCycles(c, cmd, s.ID)
		},
	}
}

// printSessionCycles writes a session's pomodoros with their tasks and
// reflections.
func printSessionCycles(c *app.Container, cmd *cobra.Command, sessionID string) error {
	pomOut, err := c.ListPomodorosUseCase().Execute(cmd.Context(), usecase.ListPomodorosInput{SessionID: sessionID})
	if err != nil {
		return err
	}
	if len(pomOut.Pomodoros) == 0 {
		return nil
	}

	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(w)
	for _, p := range pomOut.Pomodoros {
		_, _ = fmt.Fprintf(w, "%s  %s  focus %s / break %s  started %s\n",
			shortID(p.ID), renderStatus(p.Status),
			formatDuration(p.FocusDuration), formatDuration(p.BreakDuration),
			formatTime(p.StartTime))

		taskOut, err := c.ListTasksUseCase().Execute(cmd.Context(), usecase.ListTasksInput{PomodoroID: p.ID})
		if err != nil {
			return err
		}
		for _, t := range taskOut.Tasks {
			mark := " "
			if t.Completed {
				mark = "x"
			}
			_, _ = fmt.Fprintf(w, "  [%s] %s\n", mark, t.Description)
		}

		refOut, err := c.GetReflectionUseCase().Execute(cmd.Context(), usecase.GetReflectionInput{PomodoroID: p.ID})
		if err != nil {
			return err
		}
		if refOut.Reflection != nil {
			_, _ = fmt.Fprintf(w, "  reflection: %s\n", renderReflectionSummary(refOut.Reflection.Rating, refOut.Reflection.Description))
		}
	}
	return nil
}

// newSessionEndCommand creates the session end command.
func newSessionEndCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "end <session-id>",
		Short: "Mark a session as ended",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.EndSessionUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.EndSessionInput{
				Identity:  callerIdentity(c, cmd),
				SessionID: args[0],
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Ended session %s at %s\n", out.Session.Name, formatTime(out.Session.EndTime))
			return nil
		},
	}
}

// newSessionSearchCommand creates the session search command.
func newSessionSearchCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Fuzzy-search your sessions by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.SearchSessionsUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.SearchSessionsInput{
				Identity: callerIdentity(c, cmd),
				Query:    args[0],
			})
			if err != nil {
				return err
			}

			printSessionTable(cmd, out.Sessions)
			return nil
		},
	}
}

// newSessionExportCommand creates the session export command.
func newSessionExportCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "export <session-id>",
		Short: "Export a session tree as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.ExportSessionUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ExportSessionInput{
				Identity:  callerIdentity(c, cmd),
				SessionID: args[0],
			})
			if err != nil {
				return err
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(out.Export); err != nil {
				return fmt.Errorf("encode export: %w", err)
			}
			return enc.Close()
		},
	}
}

// printSessionTable writes sessions as an aligned table.
func printSessionTable(cmd *cobra.Command, sessions []*domain.Session) {
	if len(sessions) == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No sessions found")
		return
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tNAME\tSTARTED\tENDED")
	for _, s := range sessions {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", shortID(s.ID), s.Name, formatTime(s.StartTime), formatTime(s.EndTime))
	}
	_ = w.Flush()
}
