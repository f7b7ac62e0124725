package usecase

import (
	"context"
	"fmt"

	"github.com/pomo-dev/pomo/internal/domain"
)

// GetReflectionInput contains the parameters for reading a reflection.
type GetReflectionInput struct {
	PomodoroID string
}

// GetReflectionOutput contains the reflection; nil when none exists.
type GetReflectionOutput struct {
	Reflection *domain.Reflection
}

// GetReflection is the use case for reading a pomodoro's reflection.
type GetReflection struct {
	reflections domain.ReflectionRepository
}

// NewGetReflection creates a new GetReflection use case.
func NewGetReflection(reflections domain.ReflectionRepository) *GetReflection {
	return &GetReflection{reflections: reflections}
}

// Execute reads the pomodoro's reflection, or nil if none has been written.
func (uc *GetReflection) Execute(_ context.Context, in GetReflectionInput) (*GetReflectionOutput, error) {
	reflection, err := uc.reflections.GetReflectionByPomodoro(in.PomodoroID)
	if err != nil {
		return nil, fmt.Errorf("get reflection: %w", err)
	}
	return &GetReflectionOutput{Reflection: reflection}, nil
}
