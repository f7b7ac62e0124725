package usecase

import (
	"context"
	"fmt"

	"github.com/pomo-dev/pomo/internal/domain"
)

// ListPresetsInput contains the parameters for listing presets.
type ListPresetsInput struct {
	Identity domain.Identity
}

// ListPresetsOutput contains the caller's presets.
type ListPresetsOutput struct {
	Presets []*domain.Preset
}

// ListPresets is the use case for listing the caller's duration templates.
type ListPresets struct {
	presets domain.PresetRepository
}

// NewListPresets creates a new ListPresets use case.
func NewListPresets(presets domain.PresetRepository) *ListPresets {
	return &ListPresets{presets: presets}
}

// Execute lists the caller's presets. An absent identity yields an empty
// list, never an error.
func (uc *ListPresets) Execute(_ context.Context, in ListPresetsInput) (*ListPresetsOutput, error) {
	if in.Identity.IsNone() {
		return &ListPresetsOutput{}, nil
	}

	presets, err := uc.presets.ListPresetsByOwner(in.Identity)
	if err != nil {
		return nil, fmt.Errorf("list presets: %w", err)
	}

	return &ListPresetsOutput{Presets: presets}, nil
}
