package usecase

import (
	"context"
	"fmt"

	"github.com/pomo-dev/pomo/internal/domain"
)

// GetSessionInput contains the parameters for fetching a session.
type GetSessionInput struct {
	SessionID string
}

// GetSessionOutput contains the fetched session; Session is nil when the id
// does not resolve.
type GetSessionOutput struct {
	Session *domain.Session
}

// GetSession is the use case for fetching a single session.
//
// The read is not ownership-scoped: it returns the record for any caller
// holding the id.
type GetSession struct {
	sessions domain.SessionRepository
}

// NewGetSession creates a new GetSession use case.
func NewGetSession(sessions domain.SessionRepository) *GetSession {
	return &GetSession{sessions: sessions}
}

// Execute fetches the session by id, or a nil Session if it does not exist.
func (uc *GetSession) Execute(_ context.Context, in GetSessionInput) (*GetSessionOutput, error) {
	session, err := uc.sessions.GetSession(in.SessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	return &GetSessionOutput{Session: session}, nil
}
