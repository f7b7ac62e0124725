package usecase

import (
	"context"
	"testing"

	"github.com/pomo-dev/pomo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ratingOf(v int) *int { return &v }

func TestSetReflection_Execute_CreateThenReplace(t *testing.T) {
	store := newMockStore()
	pomodoroFixture(store, "p1", "alice", domain.StatusCompleted)
	uc := NewSetReflection(store, store, &mockIDs{}, nil)

	first, err := uc.Execute(context.Background(), SetReflectionInput{
		Identity:    "alice",
		PomodoroID:  "p1",
		Rating:      ratingOf(3),
		Description: "distracted",
	})
	require.NoError(t, err)

	second, err := uc.Execute(context.Background(), SetReflectionInput{
		Identity:    "alice",
		PomodoroID:  "p1",
		Rating:      ratingOf(5),
		Description: "great run",
	})
	require.NoError(t, err)

	// Upsert, not insert: one record, same id, new content.
	assert.Len(t, store.reflections, 1)
	assert.Equal(t, first.Reflection.ID, second.Reflection.ID)
	got := store.reflections["p1"]
	require.NotNil(t, got)
	assert.Equal(t, 5, *got.Rating)
	assert.Equal(t, "great run", got.Description)
}

func TestSetReflection_Execute_AllowedOnBreak(t *testing.T) {
	store := newMockStore()
	pomodoroFixture(store, "p1", "alice", domain.StatusInBreak)

	_, err := NewSetReflection(store, store, &mockIDs{}, nil).Execute(context.Background(), SetReflectionInput{
		Identity:   "alice",
		PomodoroID: "p1",
	})

	assert.NoError(t, err)
}

func TestSetReflection_Execute_MidFocusRejected(t *testing.T) {
	store := newMockStore()
	pomodoroFixture(store, "p1", "alice", domain.StatusInFocus)

	_, err := NewSetReflection(store, store, &mockIDs{}, nil).Execute(context.Background(), SetReflectionInput{
		Identity:   "alice",
		PomodoroID: "p1",
	})

	assert.ErrorIs(t, err, domain.ErrStillInFocus)
}

func TestSetReflection_Execute_RatingBounds(t *testing.T) {
	store := newMockStore()
	pomodoroFixture(store, "p1", "alice", domain.StatusCompleted)
	uc := NewSetReflection(store, store, &mockIDs{}, nil)

	for _, r := range []int{0, 6, -1} {
		_, err := uc.Execute(context.Background(), SetReflectionInput{
			Identity:   "alice",
			PomodoroID: "p1",
			Rating:     ratingOf(r),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidRating, "rating %d", r)
	}

	// Rating is optional.
	_, err := uc.Execute(context.Background(), SetReflectionInput{
		Identity:    "alice",
		PomodoroID:  "p1",
		Description: "no rating",
	})
	assert.NoError(t, err)
}

func TestSetReflection_Execute_Gates(t *testing.T) {
	store := newMockStore()
	pomodoroFixture(store, "p1", "alice", domain.StatusCompleted)
	uc := NewSetReflection(store, store, &mockIDs{}, nil)

	_, err := uc.Execute(context.Background(), SetReflectionInput{PomodoroID: "p1"})
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	_, err = uc.Execute(context.Background(), SetReflectionInput{Identity: "alice", PomodoroID: "missing"})
	assert.ErrorIs(t, err, domain.ErrPomodoroNotFound)

	_, err = uc.Execute(context.Background(), SetReflectionInput{Identity: "bob", PomodoroID: "p1"})
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
}

func TestGetReflection_Execute(t *testing.T) {
	store := newMockStore()
	store.reflections["p1"] = &domain.Reflection{ID: "r1", PomodoroID: "p1", Description: "solid"}
	uc := NewGetReflection(store)

	out, err := uc.Execute(context.Background(), GetReflectionInput{PomodoroID: "p1"})
	require.NoError(t, err)
	assert.Equal(t, "r1", out.Reflection.ID)

	out, err = uc.Execute(context.Background(), GetReflectionInput{PomodoroID: "none"})
	require.NoError(t, err)
	assert.Nil(t, out.Reflection)
}
