package usecase

import (
	"context"
	"fmt"

	"github.com/pomo-dev/pomo/internal/domain"
)

// ToggleTaskInput contains the parameters for toggling a task's done flag.
type ToggleTaskInput struct {
	Identity domain.Identity
	TaskID   string
}

// ToggleTaskOutput contains the updated task.
type ToggleTaskOutput struct {
	Task *domain.Task
}

// ToggleTask is the use case for flipping a task's completed flag. The same
// completed-parent restriction as AddTask applies: tasks of a completed
// pomodoro are immutable.
type ToggleTask struct {
	pomodoros domain.PomodoroRepository
	tasks     domain.TaskRepository
	logger    domain.Logger
}

// NewToggleTask creates a new ToggleTask use case.
func NewToggleTask(pomodoros domain.PomodoroRepository, tasks domain.TaskRepository, logger domain.Logger) *ToggleTask {
	return &ToggleTask{pomodoros: pomodoros, tasks: tasks, logger: logger}
}

// Execute flips the completed flag of the caller's task.
func (uc *ToggleTask) Execute(_ context.Context, in ToggleTaskInput) (*ToggleTaskOutput, error) {
	if in.Identity.IsNone() {
		return nil, domain.ErrUnauthenticated
	}

	task, err := uc.tasks.GetTask(in.TaskID)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	if task == nil {
		return nil, domain.ErrTaskNotFound
	}

	// Ownership lives on the parent pomodoro.
	pomodoro, err := uc.pomodoros.GetPomodoro(task.PomodoroID)
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

	task.Completed = !task.Completed
	if err := uc.tasks.SaveTask(task); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("task toggled", "id", task.ID, "completed", task.Completed)
	}

	return &ToggleTaskOutput{Task: task}, nil
}
