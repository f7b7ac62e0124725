package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/pomo-dev/pomo/internal/domain"
)

// AddTaskInput contains the parameters for logging a task under a pomodoro.
type AddTaskInput struct {
	Identity    domain.Identity
	PomodoroID  string
	Description string
}

// AddTaskOutput contains the created task.
type AddTaskOutput struct {
	Task *domain.Task
}

// AddTask is the use case for attaching a sub-item of work to a pomodoro.
// Tasks can only be logged while the parent cycle is not yet completed.
type AddTask struct {
	pomodoros domain.PomodoroRepository
	tasks     domain.TaskRepository
	ids       domain.IDGenerator
	clock     domain.Clock
	logger    domain.Logger
}

// NewAddTask creates a new AddTask use case.
func NewAddTask(pomodoros domain.PomodoroRepository, tasks domain.TaskRepository, ids domain.IDGenerator, clock domain.Clock, logger domain.Logger) *AddTask {
	return &AddTask{
		pomodoros: pomodoros,
		tasks:     tasks,
		ids:       ids,
		clock:     clock,
		logger:    logger,
	}
}

// Execute logs a task against the caller's pomodoro.
func (uc *AddTask) Execute(_ context.Context, in AddTaskInput) (*AddTaskOutput, error) {
	if in.Identity.IsNone() {
		return nil, domain.ErrUnauthenticated
	}
	if strings.TrimSpace(in.Description) == "" {
		return nil, domain.ErrEmptyDescription
	}

	pomodoro, err := uc.pomodoros.GetPomodoro(in.PomodoroID)
	if err != nil {
		return nil, fmt.Errorf("get pomodoro: %w", err)
	}
	if pomodoro == nil {
		return nil, domain.ErrPomodoroNotFound
	}
	if pomodoro.OwnerID != in.Identity {
		return nil, domain.ErrPermissionDenied
	}
	if pomodoro.Status.IsTerminal() {
		return nil, domain.ErrPomodoroCompleted
	}

	task := &domain.Task{
		ID:          uc.ids.NewID(),
		PomodoroID:  pomodoro.ID,
		Description: in.Description,
		Created:     uc.clock.Now(),
	}

	if err := uc.tasks.SaveTask(task); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("task added", "id", task.ID, "pomodoro", pomodoro.ID)
	}

	return &AddTaskOutput{Task: task}, nil
}
