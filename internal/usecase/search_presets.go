package usecase

import (
	"context"
	"fmt"

	"github.com/pomo-dev/pomo/internal/domain"
)

// SearchPresetsInput contains the parameters for searching presets by name.
type SearchPresetsInput struct {
	Identity domain.Identity
	Query    string
}

// SearchPresetsOutput contains matching presets ordered by relevance.
type SearchPresetsOutput struct {
	Presets []*domain.Preset
}

// SearchPresets is the use case for the owner-scoped preset name search.
type SearchPresets struct {
	presets domain.PresetRepository
}

// NewSearchPresets creates a new SearchPresets use case.
func NewSearchPresets(presets domain.PresetRepository) *SearchPresets {
	return &SearchPresets{presets: presets}
}

// Execute searches the caller's presets by name. An absent identity yields
// an empty result, never an error.
func (uc *SearchPresets) Execute(_ context.Context, in SearchPresetsInput) (*SearchPresetsOutput, error) {
	if in.Identity.IsNone() {
		return &SearchPresetsOutput{}, nil
	}

	presets, err := uc.presets.SearchPresetsByName(in.Identity, in.Query)
	if err != nil {
		return nil, fmt.Errorf("search presets: %w", err)
	}

	return &SearchPresetsOutput{Presets: presets}, nil
}
