package usecase

import (
	"context"
	"fmt"

	"github.com/pomo-dev/pomo/internal/domain"
)

// AdvanceToBreakInput contains the parameters for entering the break phase.
type AdvanceToBreakInput struct {
	Identity   domain.Identity
	PomodoroID string
}

// AdvanceToBreakOutput contains the updated pomodoro.
type AdvanceToBreakOutput struct {
	Pomodoro *domain.Pomodoro
}

// AdvanceToBreak is the use case for the in_focus → in_break transition.
type AdvanceToBreak struct {
	pomodoros domain.PomodoroRepository
	clock     domain.Clock
	logger    domain.Logger
}

// NewAdvanceToBreak creates a new AdvanceToBreak use case.
func NewAdvanceToBreak(pomodoros domain.PomodoroRepository, clock domain.Clock, logger domain.Logger) *AdvanceToBreak {
	return &AdvanceToBreak{pomodoros: pomodoros, clock: clock, logger: logger}
}

// Execute moves the caller's pomodoro from focus to break. StartTime is
// untouched; the transition instant is recorded as BreakStart so the actual
// focus length stays recoverable against the declared one.
func (uc *AdvanceToBreak) Execute(_ context.Context, in AdvanceToBreakInput) (*AdvanceToBreakOutput, error) {
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
	if !pomodoro.Status.CanTransitionTo(domain.StatusInBreak) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, pomodoro.Status, domain.StatusInBreak)
	}

	pomodoro.Status = domain.StatusInBreak
	pomodoro.BreakStart = uc.clock.Now()

	if err := uc.pomodoros.SavePomodoro(pomodoro); err != nil {
		return nil, fmt.Errorf("save pomodoro: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("pomodoro on break", "id", pomodoro.ID)
	}

	return &AdvanceToBreakOutput{Pomodoro: pomodoro}, nil
}
