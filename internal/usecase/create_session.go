// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/pomo-dev/pomo/internal/domain"
)

// CreateSessionInput contains the parameters for creating a session.
type CreateSessionInput struct {
	Identity domain.Identity // Caller identity (required)
	Name     string          // Session name (required)
}

// CreateSessionOutput contains the result of creating a session.
type CreateSessionOutput struct {
	Session *domain.Session
}

// CreateSession is the use case for creating a new session.
type CreateSession struct {
	sessions domain.SessionRepository
	ids      domain.IDGenerator
	clock    domain.Clock
	logger   domain.Logger
}

// NewCreateSession creates a new CreateSession use case.
func NewCreateSession(sessions domain.SessionRepository, ids domain.IDGenerator, clock domain.Clock, logger domain.Logger) *CreateSession {
	return &CreateSession{
		sessions: sessions,
		ids:      ids,
		clock:    clock,
		logger:   logger,
	}
}

// Execute creates a new session owned by the caller.
func (uc *CreateSession) Execute(_ context.Context, in CreateSessionInput) (*CreateSessionOutput, error) {
	if in.Identity.IsNone() {
		return nil, domain.ErrUnauthenticated
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrEmptyName
	}

	session := &domain.Session{
		ID:        uc.ids.NewID(),
		OwnerID:   in.Identity,
		Name:      in.Name,
		StartTime: uc.clock.Now(),
	}

	if err := uc.sessions.SaveSession(session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("session created", "id", session.ID, "name", session.Name)
	}

	return &CreateSessionOutput{Session: session}, nil
}
