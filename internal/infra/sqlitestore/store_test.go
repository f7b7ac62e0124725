package sqlitestore

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/pomo-dev/pomo/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store := New(filepath.Join(t.TempDir(), "pomo.db"))
	if err := store.Initialize(); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStore_Initialize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pomo.db")
	store := New(path)

	if store.IsInitialized() {
		t.Error("IsInitialized() = true before Initialize")
	}
	if err := store.Initialize(); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if !store.IsInitialized() {
		t.Error("IsInitialized() = false after Initialize")
	}

	// Re-running migrations is a no-op.
	if err := store.Initialize(); err != nil {
		t.Fatalf("Initialize() second call error = %v", err)
	}
	_ = store.Close()
}

func TestStore_NotInitialized(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "pomo.db"))

	_, err := store.GetSession("s1")
	if !errors.Is(err, domain.ErrNotInitialized) {
		t.Errorf("GetSession() error = %v, want ErrNotInitialized", err)
	}
}

func TestStore_SessionRoundTrip(t *testing.T) {
	store := newTestStore(t)

	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	session := &domain.Session{ID: "s1", OwnerID: "alice", Name: "Writing", StartTime: start}
	if err := store.SaveSession(session); err != nil {
		t.Fatalf("SaveSession() error = %v", err)
	}

	got, err := store.GetSession("s1")
	if err != nil {
		t.Fatalf("GetSession() error = %v", err)
	}
	if got == nil || got.Name != "Writing" || got.OwnerID != "alice" {
		t.Fatalf("GetSession() = %+v", got)
	}
	if !got.StartTime.Equal(start) {
		t.Errorf("StartTime = %v, want %v", got.StartTime, start)
	}
	if got.Ended() {
		t.Error("Ended() = true for fresh session")
	}

	// End the session and verify the stamp survives.
	got.EndTime = start.Add(2 * time.Hour)
	if err := store.SaveSession(got); err != nil {
		t.Fatalf("SaveSession(end) error = %v", err)
	}
	again, err := store.GetSession("s1")
	if err != nil {
		t.Fatalf("GetSession() error = %v", err)
	}
	if !again.Ended() || again.EndTime.Before(again.StartTime) {
		t.Errorf("ended session = %+v", again)
	}

	missing, err := store.GetSession("nope")
	if err != nil {
		t.Fatalf("GetSession(missing) error = %v", err)
	}
	if missing != nil {
		t.Errorf("GetSession(missing) = %+v, want nil", missing)
	}
}

func TestStore_ListSessionsByOwner_NewestFirst(t *testing.T) {
	store := newTestStore(t)

	base := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	for _, s := range []*domain.Session{
		{ID: "s1", OwnerID: "alice", Name: "first", StartTime: base},
		{ID: "s2", OwnerID: "alice", Name: "second", StartTime: base.Add(time.Hour)},
		{ID: "s3", OwnerID: "bob", Name: "other", StartTime: base.Add(2 * time.Hour)},
	} {
		if err := store.SaveSession(s); err != nil {
			t.Fatalf("SaveSession(%s) error = %v", s.ID, err)
		}
	}

	got, err := store.ListSessionsByOwner("alice")
	if err != nil {
		t.Fatalf("ListSessionsByOwner() error = %v", err)
	}
	if len(got) != 2 || got[0].ID != "s2" || got[1].ID != "s1" {
		t.Errorf("sessions = %+v, want [s2 s1]", got)
	}
}

func TestStore_PomodoroLifecyclePersistence(t *testing.T) {
	store := newTestStore(t)

	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	p := &domain.Pomodoro{
		ID:            "p1",
		OwnerID:       "alice",
		SessionID:     "s1",
		FocusDuration: 1500,
		BreakDuration: 300,
		Status:        domain.StatusInFocus,
		StartTime:     start,
	}
	if err := store.SavePomodoro(p); err != nil {
		t.Fatalf("SavePomodoro() error = %v", err)
	}

	p.Status = domain.StatusInBreak
	p.BreakStart = start.Add(25 * time.Minute)
	if err := store.SavePomodoro(p); err != nil {
		t.Fatalf("SavePomodoro(break) error = %v", err)
	}
	p.Status = domain.StatusCompleted
	p.EndTime = start.Add(30 * time.Minute)
	if err := store.SavePomodoro(p); err != nil {
		t.Fatalf("SavePomodoro(complete) error = %v", err)
	}

	got, err := store.GetPomodoro("p1")
	if err != nil {
		t.Fatalf("GetPomodoro() error = %v", err)
	}
	if got.Status != domain.StatusCompleted {
		t.Errorf("Status = %s, want completed", got.Status)
	}
	if got.BreakStart.IsZero() || got.EndTime.Before(got.StartTime) {
		t.Errorf("timestamps = %+v", got)
	}
	if got.SessionID != "s1" || got.OwnerID != "alice" || got.FocusDuration != 1500 {
		t.Errorf("immutable fields changed: %+v", got)
	}
}

func TestStore_ListPomodorosBySession_NewestFirst(t *testing.T) {
	store := newTestStore(t)

	base := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	for i, id := range []string{"p1", "p2"} {
		p := &domain.Pomodoro{
			ID:        id,
			SessionID: "s1",
			Status:    domain.StatusInFocus,
			StartTime: base.Add(time.Duration(i) * time.Hour),
		}
		if err := store.SavePomodoro(p); err != nil {
			t.Fatalf("SavePomodoro(%s) error = %v", id, err)
		}
	}

	got, err := store.ListPomodorosBySession("s1")
	if err != nil {
		t.Fatalf("ListPomodorosBySession() error = %v", err)
	}
	if len(got) != 2 || got[0].ID != "p2" || got[1].ID != "p1" {
		t.Errorf("pomodoros = %+v, want [p2 p1]", got)
	}
}

func TestStore_TaskInsertionOrder(t *testing.T) {
	store := newTestStore(t)

	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	for _, id := range []string{"t1", "t2", "t3"} {
		task := &domain.Task{ID: id, PomodoroID: "p1", Description: id, Created: now}
		if err := store.SaveTask(task); err != nil {
			t.Fatalf("SaveTask(%s) error = %v", id, err)
		}
		if task.Seq == 0 {
			t.Errorf("SaveTask(%s) did not assign Seq", id)
		}
	}

	got, err := store.ListTasksByPomodoro("p1")
	if err != nil {
		t.Fatalf("ListTasksByPomodoro() error = %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for i, want := range []string{"t1", "t2", "t3"} {
		if got[i].ID != want {
			t.Errorf("got[%d] = %s, want %s", i, got[i].ID, want)
		}
	}

	// Toggling keeps the position.
	got[1].Completed = true
	if err := store.SaveTask(got[1]); err != nil {
		t.Fatalf("SaveTask(toggle) error = %v", err)
	}
	again, err := store.ListTasksByPomodoro("p1")
	if err != nil {
		t.Fatalf("ListTasksByPomodoro() error = %v", err)
	}
	if again[1].ID != "t2" || !again[1].Completed {
		t.Errorf("toggled task = %+v", again[1])
	}
}

func TestStore_ReflectionUpsert(t *testing.T) {
	store := newTestStore(t)

	rating := 2
	if err := store.UpsertReflection(&domain.Reflection{ID: "r1", PomodoroID: "p1", Rating: &rating}); err != nil {
		t.Fatalf("UpsertReflection() error = %v", err)
	}
	rating2 := 4
	if err := store.UpsertReflection(&domain.Reflection{ID: "r1", PomodoroID: "p1", Rating: &rating2, Description: "better"}); err != nil {
		t.Fatalf("UpsertReflection(second) error = %v", err)
	}

	got, err := store.GetReflectionByPomodoro("p1")
	if err != nil {
		t.Fatalf("GetReflectionByPomodoro() error = %v", err)
	}
	if got == nil || got.Rating == nil || *got.Rating != 4 || got.Description != "better" {
		t.Errorf("reflection = %+v, want replaced record", got)
	}

	// Rating stays optional through the round trip.
	if err := store.UpsertReflection(&domain.Reflection{ID: "r2", PomodoroID: "p2", Description: "unrated"}); err != nil {
		t.Fatalf("UpsertReflection(unrated) error = %v", err)
	}
	unrated, err := store.GetReflectionByPomodoro("p2")
	if err != nil {
		t.Fatalf("GetReflectionByPomodoro(p2) error = %v", err)
	}
	if unrated.Rating != nil {
		t.Errorf("Rating = %v, want nil", *unrated.Rating)
	}
}

func TestStore_SearchPresetsByName(t *testing.T) {
	store := newTestStore(t)

	base := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	for _, p := range []*domain.Preset{
		{ID: "p1", OwnerID: "alice", Name: "Deep Work", FocusDuration: 2700, BreakDuration: 600, Created: base},
		{ID: "p2", OwnerID: "bob", Name: "Deep Work", FocusDuration: 2700, Created: base},
	} {
		if err := store.SavePreset(p); err != nil {
			t.Fatalf("SavePreset(%s) error = %v", p.ID, err)
		}
	}

	got, err := store.SearchPresetsByName("alice", "deep")
	if err != nil {
		t.Fatalf("SearchPresetsByName() error = %v", err)
	}
	if len(got) != 1 || got[0].ID != "p1" {
		t.Errorf("search = %+v, want [p1]", got)
	}

	other, err := store.SearchPresetsByName("carol", "deep")
	if err != nil {
		t.Fatalf("SearchPresetsByName(carol) error = %v", err)
	}
	if len(other) != 0 {
		t.Errorf("search for non-owner = %+v, want empty", other)
	}
}
