package usecase

import (
	"context"
	"fmt"

	"github.com/pomo-dev/pomo/internal/domain"
)

// ListPomodorosInput contains the parameters for listing a session's pomodoros.
type ListPomodorosInput struct {
	SessionID string
}

// ListPomodorosOutput contains the session's pomodoros, newest first.
type ListPomodorosOutput struct {
	Pomodoros []*domain.Pomodoro
}

// ListPomodoros is the use case for listing a session's cycle history.
// Like GetSession, the read is not ownership-scoped.
type ListPomodoros struct {
	pomodoros domain.PomodoroRepository
}

// NewListPomodoros creates a new ListPomodoros use case.
func NewListPomodoros(pomodoros domain.PomodoroRepository) *ListPomodoros {
	return &ListPomodoros{pomodoros: pomodoros}
}

// Execute lists the session's pomodoros, newest first by start time.
func (uc *ListPomodoros) Execute(_ context.Context, in ListPomodorosInput) (*ListPomodorosOutput, error) {
	pomodoros, err := uc.pomodoros.ListPomodorosBySession(in.SessionID)
	if err != nil {
		return nil, fmt.Errorf("list pomodoros: %w", err)
	}
	return &ListPomodorosOutput{Pomodoros: pomodoros}, nil
}
