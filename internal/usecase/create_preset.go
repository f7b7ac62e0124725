package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/pomo-dev/pomo/internal/domain"
)

// CreatePresetInput contains the parameters for creating a preset.
type CreatePresetInput struct {
	Identity      domain.Identity
	Name          string
	FocusDuration int // seconds
	BreakDuration int // seconds
}

// CreatePresetOutput contains the created preset.
type CreatePresetOutput struct {
	Preset *domain.Preset
}

// CreatePreset is the use case for saving a duration template. Names need
// not be unique; duplicates are distinguished by id.
type CreatePreset struct {
	presets domain.PresetRepository
	ids     domain.IDGenerator
	clock   domain.Clock
	logger  domain.Logger
}

// NewCreatePreset creates a new CreatePreset use case.
func NewCreatePreset(presets domain.PresetRepository, ids domain.IDGenerator, clock domain.Clock, logger domain.Logger) *CreatePreset {
	return &CreatePreset{presets: presets, ids: ids, clock: clock, logger: logger}
}

// Execute creates a preset owned by the caller.
func (uc *CreatePreset) Execute(_ context.Context, in CreatePresetInput) (*CreatePresetOutput, error) {
	if in.Identity.IsNone() {
		return nil, domain.ErrUnauthenticated
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrEmptyName
	}
	if err := domain.ValidateDurations(in.FocusDuration, in.BreakDuration); err != nil {
		return nil, err
	}

	preset := &domain.Preset{
		ID:            uc.ids.NewID(),
		OwnerID:       in.Identity,
		Name:          in.Name,
		FocusDuration: in.FocusDuration,
		BreakDuration: in.BreakDuration,
		Created:       uc.clock.Now(),
	}

	if err := uc.presets.SavePreset(preset); err != nil {
		return nil, fmt.Errorf("save preset: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("preset created", "id", preset.ID, "name", preset.Name)
	}

	return &CreatePresetOutput{Preset: preset}, nil
}
