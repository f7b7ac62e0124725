package usecase

import (
	"context"
	"fmt"

	"github.com/pomo-dev/pomo/internal/domain"
)

// SetReflectionInput contains the parameters for writing a reflection.
type SetReflectionInput struct {
	Rating      *int // optional, 1-5 when present
	Identity    domain.Identity
	PomodoroID  string
	Description string // optional
}

// SetReflectionOutput contains the written reflection.
type SetReflectionOutput struct {
	Reflection *domain.Reflection
}

// SetReflection is the use case for the post-cycle note. It is an upsert
// keyed by pomodoro id: the second write replaces the first, so a pomodoro
// never carries more than one reflection. Reflecting mid-focus is
// disallowed; the cycle must be on break or completed.
type SetReflection struct {
	pomodoros   domain.PomodoroRepository
	reflections domain.ReflectionRepository
	ids         domain.IDGenerator
	logger      domain.Logger
}

// NewSetReflection creates a new SetReflection use case.
func NewSetReflection(pomodoros domain.PomodoroRepository, reflections domain.ReflectionRepository, ids domain.IDGenerator, logger domain.Logger) *SetReflection {
	return &SetReflection{
		pomodoros:   pomodoros,
		reflections: reflections,
		ids:         ids,
		logger:      logger,
	}
}

// Execute creates or replaces the reflection for the caller's pomodoro.
func (uc *SetReflection) Execute(_ context.Context, in SetReflectionInput) (*SetReflectionOutput, error) {
	if in.Identity.IsNone() {
		return nil, domain.ErrUnauthenticated
	}
	if err := domain.ValidateRating(in.Rating); err != nil {
		return nil, err
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
	if pomodoro.Status == domain.StatusInFocus {
		return nil, domain.ErrStillInFocus
	}

	// Keep the existing record's id on replace.
	reflection, err := uc.reflections.GetReflectionByPomodoro(pomodoro.ID)
	if err != nil {
		return nil, fmt.Errorf("get reflection: %w", err)
	}
	if reflection == nil {
		reflection = &domain.Reflection{
			ID:         uc.ids.NewID(),
			PomodoroID: pomodoro.ID,
		}
	}
	reflection.Rating = in.Rating
	reflection.Description = in.Description

	if err := uc.reflections.UpsertReflection(reflection); err != nil {
		return nil, fmt.Errorf("upsert reflection: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("reflection saved", "pomodoro", pomodoro.ID)
	}

	return &SetReflectionOutput{Reflection: reflection}, nil
}
