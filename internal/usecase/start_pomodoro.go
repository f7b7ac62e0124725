package usecase

import (
	"context"
	"fmt"

	"github.com/pomo-dev/pomo/internal/domain"
)

// StartPomodoroInput contains the parameters for starting a pomodoro.
//
// Either explicit durations or a PresetID is given. When PresetID is set the
// preset's durations are used and the explicit fields are ignored; the
// caller's preset must exist and be owned by the caller.
type StartPomodoroInput struct {
	Identity      domain.Identity
	SessionID     string
	PresetID      string
	FocusDuration int // seconds
	BreakDuration int // seconds
}

// StartPomodoroOutput contains the created pomodoro.
type StartPomodoroOutput struct {
	Pomodoro *domain.Pomodoro
}

// StartPomodoro is the use case for starting a new focus cycle.
//
// Each call creates a new record; a retried start is a new cycle, not an
// idempotent replay. The session linkage and the denormalized owner are
// validated here once and are immutable afterwards.
type StartPomodoro struct {
	sessions  domain.SessionRepository
	pomodoros domain.PomodoroRepository
	presets   domain.PresetRepository
	ids       domain.IDGenerator
	clock     domain.Clock
	logger    domain.Logger
}

// NewStartPomodoro creates a new StartPomodoro use case.
func NewStartPomodoro(sessions domain.SessionRepository, pomodoros domain.PomodoroRepository, presets domain.PresetRepository, ids domain.IDGenerator, clock domain.Clock, logger domain.Logger) *StartPomodoro {
	return &StartPomodoro{
		sessions:  sessions,
		pomodoros: pomodoros,
		presets:   presets,
		ids:       ids,
		clock:     clock,
		logger:    logger,
	}
}

// Execute starts a pomodoro in the in_focus state under the caller's session.
func (uc *StartPomodoro) Execute(_ context.Context, in StartPomodoroInput) (*StartPomodoroOutput, error) {
	if in.Identity.IsNone() {
		return nil, domain.ErrUnauthenticated
	}

	focus, brk := in.FocusDuration, in.BreakDuration
	if in.PresetID != "" {
		preset, err := uc.presets.GetPreset(in.PresetID)
		if err != nil {
			return nil, fmt.Errorf("get preset: %w", err)
		}
		if preset == nil {
			return nil, domain.ErrPresetNotFound
		}
		if preset.OwnerID != in.Identity {
			return nil, domain.ErrPermissionDenied
		}
		focus, brk = preset.FocusDuration, preset.BreakDuration
	}

	if err := domain.ValidateDurations(focus, brk); err != nil {
		return nil, err
	}

	session, err := uc.sessions.GetSession(in.SessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if session == nil {
		return nil, domain.ErrSessionNotFound
	}
	if session.OwnerID != in.Identity {
		return nil, domain.ErrPermissionDenied
	}

	pomodoro := &domain.Pomodoro{
		ID:            uc.ids.NewID(),
		OwnerID:       in.Identity,
		SessionID:     session.ID,
		FocusDuration: focus,
		BreakDuration: brk,
		Status:        domain.StatusInFocus,
		StartTime:     uc.clock.Now(),
	}

	if err := uc.pomodoros.SavePomodoro(pomodoro); err != nil {
		return nil, fmt.Errorf("save pomodoro: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("pomodoro started", "id", pomodoro.ID, "session", session.ID, "focus", focus, "break", brk)
	}

	return &StartPomodoroOutput{Pomodoro: pomodoro}, nil
}
