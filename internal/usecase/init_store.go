package usecase

import (
	"context"
	"fmt"

	"github.com/pomo-dev/pomo/internal/domain"
)

// InitStore is the use case for creating the data store.
type InitStore struct {
	store domain.StoreInitializer
}

// NewInitStore creates a new InitStore use case.
func NewInitStore(store domain.StoreInitializer) *InitStore {
	return &InitStore{store: store}
}

// Execute initializes the store. Initializing an existing store is a no-op.
func (uc *InitStore) Execute(_ context.Context) error {
	if err := uc.store.Initialize(); err != nil {
		return fmt.Errorf("initialize store: %w", err)
	}
	return nil
}
