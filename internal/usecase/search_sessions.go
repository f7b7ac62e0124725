package usecase

import (
	"context"
	"fmt"

	"github.com/pomo-dev/pomo/internal/domain"
)

// SearchSessionsInput contains the parameters for searching sessions by name.
type SearchSessionsInput struct {
	Identity domain.Identity
	Query    string
}

// SearchSessionsOutput contains matching sessions ordered by relevance.
type SearchSessionsOutput struct {
	Sessions []*domain.Session
}

// SearchSessions is the use case for the owner-scoped session name search.
type SearchSessions struct {
	sessions domain.SessionRepository
}

// NewSearchSessions creates a new SearchSessions use case.
func NewSearchSessions(sessions domain.SessionRepository) *SearchSessions {
	return &SearchSessions{sessions: sessions}
}

// Execute searches the caller's sessions by name. An absent identity yields
// an empty result, never an error.
func (uc *SearchSessions) Execute(_ context.Context, in SearchSessionsInput) (*SearchSessionsOutput, error) {
	if in.Identity.IsNone() {
		return &SearchSessionsOutput{}, nil
	}

	sessions, err := uc.sessions.SearchSessionsByName(in.Identity, in.Query)
	if err != nil {
		return nil, fmt.Errorf("search sessions: %w", err)
	}

	return &SearchSessionsOutput{Sessions: sessions}, nil
}
