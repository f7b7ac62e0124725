package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// StoreInitializer initializes the data store.
type StoreInitializer interface {
	// Initialize creates the store if it doesn't exist.
	Initialize() error

	// IsInitialized checks if the store exists.
	IsInitialized() bool
}

// SessionRepository manages session persistence.
type SessionRepository interface {
	// GetSession retrieves a session by ID. Returns nil if not found.
	GetSession(id string) (*Session, error)

	// ListSessionsByOwner retrieves the owner's sessions, newest first by start time.
	ListSessionsByOwner(owner Identity) ([]*Session, error)

	// SearchSessionsByName retrieves the owner's sessions whose name matches
	// query, ordered by relevance, ties newest first.
	SearchSessionsByName(owner Identity, query string) ([]*Session, error)

	// SaveSession creates or updates a session.
	SaveSession(s *Session) error
}

// PomodoroRepository manages pomodoro persistence.
type PomodoroRepository interface {
	// GetPomodoro retrieves a pomodoro by ID. Returns nil if not found.
	GetPomodoro(id string) (*Pomodoro, error)

	// ListPomodorosBySession retrieves a session's pomodoros, newest first by start time.
	ListPomodorosBySession(sessionID string) ([]*Pomodoro, error)

	// SavePomodoro creates or updates a pomodoro.
	SavePomodoro(p *Pomodoro) error
}

// TaskRepository manages task persistence.
type TaskRepository interface {
	// GetTask retrieves a task by ID. Returns nil if not found.
	GetTask(id string) (*Task, error)

	// ListTasksByPomodoro retrieves a pomodoro's tasks in insertion order.
	ListTasksByPomodoro(pomodoroID string) ([]*Task, error)

	// SaveTask creates or updates a task. On create the store assigns Seq.
	SaveTask(t *Task) error
}

// ReflectionRepository manages reflection persistence.
type ReflectionRepository interface {
	// GetReflectionByPomodoro retrieves the pomodoro's reflection. Returns nil if none.
	GetReflectionByPomodoro(pomodoroID string) (*Reflection, error)

	// UpsertReflection creates or replaces the reflection keyed by PomodoroID.
	UpsertReflection(r *Reflection) error
}

// PresetRepository manages preset persistence.
type PresetRepository interface {
	// GetPreset retrieves a preset by ID. Returns nil if not found.
	GetPreset(id string) (*Preset, error)

	// ListPresetsByOwner retrieves the owner's presets, newest first.
	ListPresetsByOwner(owner Identity) ([]*Preset, error)

	// SearchPresetsByName retrieves the owner's presets whose name matches
	// query, ordered by relevance, ties newest first.
	SearchPresetsByName(owner Identity, query string) ([]*Preset, error)

	// SavePreset creates or updates a preset.
	SavePreset(p *Preset) error
}

// Store combines all repositories backed by a single data store. Every
// mutation updates the store's secondary orderings in the same atomic unit
// as the primary write.
type Store interface {
	StoreInitializer
	SessionRepository
	PomodoroRepository
	TaskRepository
	ReflectionRepository
	PresetRepository
}

// IdentityResolver resolves the caller's identity for a request.
type IdentityResolver interface {
	// Resolve returns the current identity, or (None, false) when absent.
	// It never fails; an unsatisfiable resolution is simply "no identity".
	Resolve(ctx context.Context) (Identity, bool)
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// IDGenerator mints opaque record identifiers.
type IDGenerator interface {
	// NewID returns a new unique identifier.
	NewID() string
}

// UUIDGenerator implements IDGenerator using random UUIDs.
type UUIDGenerator struct{}

// NewID returns a new random UUID string.
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// Logger is the structured logging port.
type Logger interface {
	Debug(msg string, keyvals ...any)
	Info(msg string, keyvals ...any)
	Warn(msg string, keyvals ...any)
	Error(msg string, keyvals ...any)
}
