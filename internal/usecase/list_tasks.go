package usecase

import (
	"context"
	"fmt"

	"github.com/pomo-dev/pomo/internal/domain"
)

// ListTasksInput contains the parameters for listing a pomodoro's tasks.
type ListTasksInput struct {
	PomodoroID string
}

// ListTasksOutput contains the pomodoro's tasks in insertion order.
type ListTasksOutput struct {
	Tasks []*domain.Task
}

// ListTasks is the use case for reading a pomodoro's task list.
type ListTasks struct {
	tasks domain.TaskRepository
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(tasks domain.TaskRepository) *ListTasks {
	return &ListTasks{tasks: tasks}
}

// Execute lists the pomodoro's tasks in insertion order.
func (uc *ListTasks) Execute(_ context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	tasks, err := uc.tasks.ListTasksByPomodoro(in.PomodoroID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return &ListTasksOutput{Tasks: tasks}, nil
}
