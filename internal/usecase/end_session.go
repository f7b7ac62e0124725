package usecase

import (
	"context"
	"fmt"

	"github.com/pomo-dev/pomo/internal/domain"
)

// EndSessionInput contains the parameters for ending a session.
type EndSessionInput struct {
	Identity  domain.Identity
	SessionID string
}

// EndSessionOutput contains the ended session.
type EndSessionOutput struct {
	Session *domain.Session
}

// EndSession is the use case for stamping a session's end time.
type EndSession struct {
	sessions domain.SessionRepository
	clock    domain.Clock
	logger   domain.Logger
}

// NewEndSession creates a new EndSession use case.
func NewEndSession(sessions domain.SessionRepository, clock domain.Clock, logger domain.Logger) *EndSession {
	return &EndSession{sessions: sessions, clock: clock, logger: logger}
}

// Execute ends the caller's session. Ending is one-shot: a session that
// already carries an end time cannot be ended again.
func (uc *EndSession) Execute(_ context.Context, in EndSessionInput) (*EndSessionOutput, error) {
	if in.Identity.IsNone() {
		return nil, domain.ErrUnauthenticated
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
	if session.Ended() {
		return nil, domain.ErrSessionEnded
	}

	session.EndTime = uc.clock.Now()
	if err := uc.sessions.SaveSession(session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("session ended", "id", session.ID)
	}

	return &EndSessionOutput{Session: session}, nil
}
