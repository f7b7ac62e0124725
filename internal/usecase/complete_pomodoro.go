package usecase

import (
	"context"
	"fmt"

	"github.com/pomo-dev/pomo/internal/domain"
)

// CompletePomodoroInput contains the parameters for completing a pomodoro.
type CompletePomodoroInput struct {
	Identity   domain.Identity
	PomodoroID string
}

// CompletePomodoroOutput contains the completed pomodoro.
type CompletePomodoroOutput struct {
	Pomodoro *domain.Pomodoro
}

// CompletePomodoro is the use case for finishing a cycle. It is legal from
// in_focus (break skipped) or in_break; completed is terminal.
type CompletePomodoro struct {
	pomodoros domain.PomodoroRepository
	clock     domain.Clock
	logger    domain.Logger
}

// NewCompletePomodoro creates a new CompletePomodoro use case.
func NewCompletePomodoro(pomodoros domain.PomodoroRepository, clock domain.Clock, logger domain.Logger) *CompletePomodoro {
	return &CompletePomodoro{pomodoros: pomodoros, clock: clock, logger: logger}
}

// Execute completes the caller's pomodoro and stamps its end time.
func (uc *CompletePomodoro) Execute(_ context.Context, in CompletePomodoroInput) (*CompletePomodoroOutput, error) {
	if in.Identity.IsNone() {
		return nil, domain.ErrUnauthenticated
	}

	pomodoro, err := uc.pomodoros.GetPomodoro(in.PomodoroID)
	if err != nil {
		return nil, fmt.Errorf("get pomodoro: %w", err)
	}
	if pomodoro == nil {
		return nil, domain.ErrPomodoroNotFound
	}
	if pomodoro.OwnerID != in.Identity {
		return nil, domain.ErrPermissionDenied
	}
	if !pomodoro.Status.CanTransitionTo(domain.StatusCompleted) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, pomodoro.Status, domain.StatusCompleted)
	}

	pomodoro.Status = domain.StatusCompleted
	pomodoro.EndTime = uc.clock.Now()

	if err := uc.pomodoros.SavePomodoro(pomodoro); err != nil {
		return nil, fmt.Errorf("save pomodoro: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("pomodoro completed", "id", pomodoro.ID)
	}

	return &CompletePomodoroOutput{Pomodoro: pomodoro}, nil
}
