package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/pomo-dev/pomo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportSession_Execute_FullTree(t *testing.T) {
	store := newMockStore()
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	store.sessions["s1"] = &domain.Session{ID: "s1", OwnerID: "alice", Name: "Writing", StartTime: start}
	store.pomodoros["p1"] = &domain.Pomodoro{
		ID:            "p1",
		OwnerID:       "alice",
		SessionID:     "s1",
		FocusDuration: 1500,
		BreakDuration: 300,
		Status:        domain.StatusCompleted,
		StartTime:     start,
		EndTime:       start.Add(30 * time.Minute),
	}
	store.tasks["t1"] = &domain.Task{ID: "t1", PomodoroID: "p1", Description: "draft intro", Completed: true, Seq: 1}
	store.reflections["p1"] = &domain.Reflection{ID: "r1", PomodoroID: "p1", Rating: ratingOf(4), Description: "good"}

	out, err := NewExportSession(store, store, store, store).Execute(context.Background(), ExportSessionInput{
		Identity:  "alice",
		SessionID: "s1",
	})

	require.NoError(t, err)
	export := out.Export
	assert.Equal(t, "Writing", export.Name)
	assert.Nil(t, export.EndTime)
	require.Len(t, export.Pomodoros, 1)

	pe := export.Pomodoros[0]
	assert.Equal(t, "completed", pe.Status)
	require.NotNil(t, pe.EndTime)
	require.Len(t, pe.Tasks, 1)
	assert.Equal(t, "draft intro", pe.Tasks[0].Description)
	require.NotNil(t, pe.Reflection)
	assert.Equal(t, 4, *pe.Reflection.Rating)
}

func TestExportSession_Execute_Gates(t *testing.T) {
	store := newMockStore()
	store.sessions["s1"] = &domain.Session{ID: "s1", OwnerID: "alice", Name: "Writing"}
	uc := NewExportSession(store, store, store, store)

	_, err := uc.Execute(context.Background(), ExportSessionInput{SessionID: "s1"})
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	_, err = uc.Execute(context.Background(), ExportSessionInput{Identity: "alice", SessionID: "missing"})
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	_, err = uc.Execute(context.Background(), ExportSessionInput{Identity: "bob", SessionID: "s1"})
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
}
