package usecase

import (
	"context"
	"fmt"

	"github.com/pomo-dev/pomo/internal/domain"
)

// ListSessionsInput contains the parameters for listing sessions.
type ListSessionsInput struct {
	Identity domain.Identity
}

// ListSessionsOutput contains the caller's sessions, newest first.
type ListSessionsOutput struct {
	Sessions []*domain.Session
}

// ListSessions is the use case for listing the caller's sessions.
type ListSessions struct {
	sessions domain.SessionRepository
}

// NewListSessions creates a new ListSessions use case.
func NewListSessions(sessions domain.SessionRepository) *ListSessions {
	return &ListSessions{sessions: sessions}
}

// Execute lists the caller's sessions, newest first by start time.
// An absent identity yields an empty list, never an error.
func (uc *ListSessions) Execute(_ context.Context, in ListSessionsInput) (*ListSessionsOutput, error) {
	if in.Identity.IsNone() {
		return &ListSessionsOutput{}, nil
	}

	sessions, err := uc.sessions.ListSessionsByOwner(in.Identity)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	return &ListSessionsOutput{Sessions: sessions}, nil
}
