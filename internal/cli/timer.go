package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pomo-dev/pomo/internal/app"
	"github.com/pomo-dev/pomo/internal/domain"
	"github.com/spf13/cobra"
)

// newTimerCommand creates the timer command.
func newTimerCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "timer <pomodoro-id>",
		Short: "Run a countdown for a pomodoro's declared durations",
		Long: `Run an interactive countdown over a pomodoro's declared focus
and break durations. The timer is display only; advance the cycle
with 'pomo break' and 'pomo complete'.

Press q to quit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := c.Store.GetPomodoro(args[0])
			if err != nil {
				return err
			}
			if p == nil {
				return domain.ErrPomodoroNotFound
			}
			if p.Status.IsTerminal() {
				return domain.ErrPomodoroCompleted
			}

			model := newTimerModel(p)
			prog := tea.NewProgram(model, tea.WithOutput(cmd.OutOrStdout()))
			_, err = prog.Run()
			return err
		},
	}
}

// timerModel counts down the focus phase, then the break phase.
type timerModel struct {
	timer     timer.Model
	phase     domain.Status
	breakLeft time.Duration
	done      bool
}

func newTimerModel(p *domain.Pomodoro) timerModel {
	focusLeft := time.Duration(p.FocusDuration) * time.Second
	breakLeft := time.Duration(p.BreakDuration) * time.Second
	phase := domain.StatusInFocus
	if p.Status == domain.StatusInBreak {
		// Already on break; count down the break only.
		focusLeft = breakLeft
		breakLeft = 0
		phase = domain.StatusInBreak
	}
	return timerModel{
		timer:     timer.NewWithInterval(focusLeft, time.Second),
		phase:     phase,
		breakLeft: breakLeft,
	}
}

func (m timerModel) Init() tea.Cmd {
	return m.timer.Init()
}

func (m timerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
		return m, nil

	case timer.TimeoutMsg:
		if m.phase == domain.StatusInFocus && m.breakLeft > 0 {
			m.phase = domain.StatusInBreak
			m.timer = timer.NewWithInterval(m.breakLeft, time.Second)
			m.breakLeft = 0
			return m, m.timer.Init()
		}
		m.done = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.timer, cmd = m.timer.Update(msg)
	return m, cmd
}

func (m timerModel) View() string {
	if m.done {
		return "Time is up\n"
	}
	return fmt.Sprintf("%s  %s  (q to quit)\n", renderStatus(m.phase), m.timer.View())
}
