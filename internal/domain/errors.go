package domain

import "errors"

// Domain errors.
var (
	ErrUnauthenticated    = errors.New("not authenticated")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrSessionNotFound    = errors.New("session not found")
	ErrPomodoroNotFound   = errors.New("pomodoro not found")
	ErrTaskNotFound       = errors.New("task not found")
	ErrPresetNotFound     = errors.New("preset not found")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrPomodoroCompleted  = errors.New("pomodoro already completed")
	ErrSessionEnded       = errors.New("session already ended")
	ErrStillInFocus       = errors.New("pomodoro still in focus")
	ErrEmptyName          = errors.New("name cannot be empty")
	ErrEmptyDescription   = errors.New("description cannot be empty")
	ErrInvalidFocus       = errors.New("focus duration must be positive")
	ErrInvalidBreak       = errors.New("break duration cannot be negative")
	ErrInvalidRating      = errors.New("rating out of range")
	ErrNotInitialized     = errors.New("pomo not initialized (run 'pomo init' first)")
	ErrAlreadyInitialized = errors.New("pomo already initialized")
)
