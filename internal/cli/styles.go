package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/pomo-dev/pomo/internal/domain"
)

var (
	focusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // red
	breakStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // green
	completedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))  // gray
)

// renderStatus returns the colored display label for a pomodoro status.
func renderStatus(s domain.Status) string {
	switch s {
	case domain.StatusInFocus:
		return focusStyle.Render(s.Display())
	case domain.StatusInBreak:
		return breakStyle.Render(s.Display())
	case domain.StatusCompleted:
		return completedStyle.Render(s.Display())
	default:
		return string(s)
	}
}

// formatDuration renders a duration in seconds as "25m" or "1m30s".
func formatDuration(seconds int) string {
	if seconds%60 == 0 {
		return fmt.Sprintf("%dm", seconds/60)
	}
	return fmt.Sprintf("%dm%02ds", seconds/60, seconds%60)
}

// formatTime renders a timestamp for table output.
func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}

// shortID returns a truncated id for table output.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
