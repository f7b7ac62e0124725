package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/pomo-dev/pomo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAddTask(store *mockStore) *AddTask {
	return NewAddTask(store, store, &mockIDs{}, &mockClock{now: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)}, nil)
}

func TestAddTask_Execute_Success(t *testing.T) {
	store := newMockStore()
	pomodoroFixture(store, "p1", "alice", domain.StatusInFocus)

	out, err := newAddTask(store).Execute(context.Background(), AddTaskInput{
		Identity:    "alice",
		PomodoroID:  "p1",
		Description: "draft intro",
	})

	require.NoError(t, err)
	assert.Equal(t, "p1", out.Task.PomodoroID)
	assert.Equal(t, "draft intro", out.Task.Description)
	assert.False(t, out.Task.Completed)
}

func TestAddTask_Execute_InsertionOrderPreserved(t *testing.T) {
	store := newMockStore()
	pomodoroFixture(store, "p1", "alice", domain.StatusInFocus)
	uc := newAddTask(store)

	for _, desc := range []string{"first", "second", "third"} {
		_, err := uc.Execute(context.Background(), AddTaskInput{
			Identity:    "alice",
			PomodoroID:  "p1",
			Description: desc,
		})
		require.NoError(t, err)
	}

	out, err := NewListTasks(store).Execute(context.Background(), ListTasksInput{PomodoroID: "p1"})
	require.NoError(t, err)
	require.Len(t, out.Tasks, 3)
	assert.Equal(t, "first", out.Tasks[0].Description)
	assert.Equal(t, "second", out.Tasks[1].Description)
	assert.Equal(t, "third", out.Tasks[2].Description)
}

func TestAddTask_Execute_CompletedParentRejected(t *testing.T) {
	store := newMockStore()
	pomodoroFixture(store, "p1", "alice", domain.StatusCompleted)

	_, err := newAddTask(store).Execute(context.Background(), AddTaskInput{
		Identity:    "alice",
		PomodoroID:  "p1",
		Description: "too late",
	})

	assert.ErrorIs(t, err, domain.ErrPomodoroCompleted)
}

func TestAddTask_Execute_AllowedDuringBreak(t *testing.T) {
	store := newMockStore()
	pomodoroFixture(store, "p1", "alice", domain.StatusInBreak)

	_, err := newAddTask(store).Execute(context.Background(), AddTaskInput{
		Identity:    "alice",
		PomodoroID:  "p1",
		Description: "note for next cycle",
	})

	assert.NoError(t, err)
}

func TestAddTask_Execute_Gates(t *testing.T) {
	store := newMockStore()
	pomodoroFixture(store, "p1", "alice", domain.StatusInFocus)
	uc := newAddTask(store)

	_, err := uc.Execute(context.Background(), AddTaskInput{PomodoroID: "p1", Description: "x"})
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	_, err = uc.Execute(context.Background(), AddTaskInput{Identity: "alice", PomodoroID: "p1", Description: "  "})
	assert.ErrorIs(t, err, domain.ErrEmptyDescription)

	_, err = uc.Execute(context.Background(), AddTaskInput{Identity: "alice", PomodoroID: "missing", Description: "x"})
	assert.ErrorIs(t, err, domain.ErrPomodoroNotFound)

	_, err = uc.Execute(context.Background(), AddTaskInput{Identity: "bob", PomodoroID: "p1", Description: "x"})
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
}

func TestToggleTask_Execute_Flips(t *testing.T) {
	store := newMockStore()
	pomodoroFixture(store, "p1", "alice", domain.StatusInFocus)
	store.tasks["t1"] = &domain.Task{ID: "t1", PomodoroID: "p1", Description: "draft intro"}
	uc := NewToggleTask(store, store, nil)

	out, err := uc.Execute(context.Background(), ToggleTaskInput{Identity: "alice", TaskID: "t1"})
	require.NoError(t, err)
	assert.True(t, out.Task.Completed)

	out, err = uc.Execute(context.Background(), ToggleTaskInput{Identity: "alice", TaskID: "t1"})
	require.NoError(t, err)
	assert.False(t, out.Task.Completed)
}

func TestToggleTask_Execute_CompletedParentRejected(t *testing.T) {
	store := newMockStore()
	pomodoroFixture(store, "p1", "alice", domain.StatusCompleted)
	store.tasks["t1"] = &domain.Task{ID: "t1", PomodoroID: "p1", Description: "frozen"}

	_, err := NewToggleTask(store, store, nil).Execute(context.Background(), ToggleTaskInput{
		Identity: "alice",
		TaskID:   "t1",
	})

	assert.ErrorIs(t, err, domain.ErrPomodoroCompleted)
}

func TestToggleTask_Execute_Gates(t *testing.T) {
	store := newMockStore()
	pomodoroFixture(store, "p1", "alice", domain.StatusInFocus)
	store.tasks["t1"] = &domain.Task{ID: "t1", PomodoroID: "p1"}
	uc := NewToggleTask(store, store, nil)

	_, err := uc.Execute(context.Background(), ToggleTaskInput{TaskID: "t1"})
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	_, err = uc.Execute(context.Background(), ToggleTaskInput{Identity: "alice", TaskID: "missing"})
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)

	_, err = uc.Execute(context.Background(), ToggleTaskInput{Identity: "bob", TaskID: "t1"})
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
}
