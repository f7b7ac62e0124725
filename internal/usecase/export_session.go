package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/pomo-dev/pomo/internal/domain"
)

// SessionExport is the serializable view of a session and everything under
// it, in the shape written by `pomo session export`.
type SessionExport struct {
	Name      string           `yaml:"name"`
	StartTime time.Time        `yaml:"startTime"`
	EndTime   *time.Time       `yaml:"endTime,omitempty"`
	ID        string           `yaml:"id"`
	Pomodoros []PomodoroExport `yaml:"pomodoros,omitempty"`
}

// PomodoroExport is the serializable view of one cycle.
type PomodoroExport struct {
	ID            string            `yaml:"id"`
	Status        string            `yaml:"status"`
	FocusDuration int               `yaml:"focusDuration"`
	BreakDuration int               `yaml:"breakDuration"`
	StartTime     time.Time         `yaml:"startTime"`
	BreakStart    *time.Time        `yaml:"breakStart,omitempty"`
	EndTime       *time.Time        `yaml:"endTime,omitempty"`
	Tasks         []TaskExport      `yaml:"tasks,omitempty"`
	Reflection    *ReflectionExport `yaml:"reflection,omitempty"`
}

// TaskExport is the serializable view of a task.
type TaskExport struct {
	Description string `yaml:"description"`
	Completed   bool   `yaml:"completed"`
}

// ReflectionExport is the serializable view of a reflection.
type ReflectionExport struct {
	Rating      *int   `yaml:"rating,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// ExportSessionInput contains the parameters for exporting a session.
type ExportSessionInput struct {
	Identity  domain.Identity
	SessionID string
}

// ExportSessionOutput contains the assembled export tree.
type ExportSessionOutput struct {
	Export *SessionExport
}

// ExportSession is the use case for dumping a session with its pomodoros,
// tasks and reflections. Exporting is owner-only: it walks the whole tree,
// not just the unscoped single-record reads.
type ExportSession struct {
	sessions    domain.SessionRepository
	pomodoros   domain.PomodoroRepository
	tasks       domain.TaskRepository
	reflections domain.ReflectionRepository
}

// NewExportSession creates a new ExportSession use case.
func NewExportSession(sessions domain.SessionRepository, pomodoros domain.PomodoroRepository, tasks domain.TaskRepository, reflections domain.ReflectionRepository) *ExportSession {
	return &ExportSession{
		sessions:    sessions,
		pomodoros:   pomodoros,
		tasks:       tasks,
		reflections: reflections,
	}
}

// Execute assembles the export tree for the caller's session.
func (uc *ExportSession) Execute(_ context.Context, in ExportSessionInput) (*ExportSessionOutput, error) {
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

	export := &SessionExport{
		ID:        session.ID,
		Name:      session.Name,
		StartTime: session.StartTime,
		EndTime:   optionalTime(session.EndTime),
	}

	pomodoros, err := uc.pomodoros.ListPomodorosBySession(session.ID)
	if err != nil {
		return nil, fmt.Errorf("list pomodoros: %w", err)
	}
	for _, p := range pomodoros {
		pe := PomodoroExport{
			ID:            p.ID,
			Status:        string(p.Status),
			FocusDuration: p.FocusDuration,
			BreakDuration: p.BreakDuration,
			StartTime:     p.StartTime,
			BreakStart:    optionalTime(p.BreakStart),
			EndTime:       optionalTime(p.EndTime),
		}

		tasks, err := uc.tasks.ListTasksByPomodoro(p.ID)
		if err != nil {
			return nil, fmt.Errorf("list tasks: %w", err)
		}
		for _, t := range tasks {
			pe.Tasks = append(pe.Tasks, TaskExport{
				Description: t.Description,
				Completed:   t.Completed,
			})
		}

		reflection, err := uc.reflections.GetReflectionByPomodoro(p.ID)
		if err != nil {
			return nil, fmt.Errorf("get reflection: %w", err)
		}
		if reflection != nil {
			pe.Reflection = &ReflectionExport{
				Rating:      reflection.Rating,
				Description: reflection.Description,
			}
		}

		export.Pomodoros = append(export.Pomodoros, pe)
	}

	return &ExportSessionOutput{Export: export}, nil
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
