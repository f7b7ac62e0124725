// Package cli provides the command-line interface for pomo.
package cli

import (
	"github.com/pomo-dev/pomo/internal/app"
	"github.com/pomo-dev/pomo/internal/domain"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupSetup    = "setup"
	groupSession  = "session"
	groupPomodoro = "pomodoro"
)

// NewRootCommand creates the root command for pomo.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "pomo",
		Short: "Focused work session tracking CLI",
		Long: `pomo tracks focused work as sessions of pomodoro cycles.
A session groups cycles; each cycle moves from focus to break to
completed, carries a task checklist and an optional end-of-cycle
reflection. Duration presets make recurring focus/break pairs
reusable.

Records are scoped to the current user (config "user" or POMO_USER).`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
	}

	root.AddGroup(
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
		&cobra.Group{ID: groupSession, Title: "Session Management:"},
		&cobra.Group{ID: groupPomodoro, Title: "Pomodoro Cycles:"},
	)

	initCmd := newInitCommand(c)
	initCmd.GroupID = groupSetup

	sessionCmd := newSessionCommand(c)
	sessionCmd.GroupID = groupSession

	startCmd := newStartCommand(c)
	startCmd.GroupID = groupPomodoro

	breakCmd := newBreakCommand(c)
	breakCmd.GroupID = groupPomodoro

	completeCmd := newCompleteCommand(c)
	completeCmd.GroupID = groupPomodoro

	pomodorosCmd := newPomodorosCommand(c)
	pomodorosCmd.GroupID = groupPomodoro

	taskCmd := newTaskCommand(c)
	taskCmd.GroupID = groupPomodoro

	reflectCmd := newReflectCommand(c)
	reflectCmd.GroupID = groupPomodoro

	presetCmd := newPresetCommand(c)
	presetCmd.GroupID = groupSetup

	timerCmd := newTimerCommand(c)
	timerCmd.GroupID = groupPomodoro

	root.AddCommand(
		initCmd,
		sessionCmd,
		startCmd,
		breakCmd,
		completeCmd,
		pomodorosCmd,
		taskCmd,
		reflectCmd,
		presetCmd,
		timerCmd,
	)

	return root
}

// callerIdentity resolves the current identity for the command context.
// A missing identity is passed through as None; use cases decide whether
// that degrades to an empty read or an ErrUnauthenticated.
func callerIdentity(c *app.Container, cmd *cobra.Command) domain.Identity {
	id, ok := c.Identity.Resolve(cmd.Context())
	if !ok {
		return domain.None
	}
	return id
}
