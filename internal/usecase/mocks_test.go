package usecase

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/pomo-dev/pomo/internal/domain"
)

// mockClock is a test double for domain.Clock.
type mockClock struct {
	now time.Time
}

func (m *mockClock) Now() time.Time {
	return m.now
}

// mockIDs is a test double for domain.IDGenerator issuing sequential ids.
type mockIDs struct {
	next int
}

func (m *mockIDs) NewID() string {
	m.next++
	return fmt.Sprintf("id-%d", m.next)
}

// mockStore is an in-memory test double for domain.Store. It reproduces the
// ordering guarantees of the real backends so list assertions are meaningful.
type mockStore struct {
	sessions    map[string]*domain.Session
	pomodoros   map[string]*domain.Pomodoro
	tasks       map[string]*domain.Task
	reflections map[string]*domain.Reflection // keyed by pomodoro id
	presets     map[string]*domain.Preset
	saveErr     error
	nextSeq     int64
	initialized bool
}

func newMockStore() *mockStore {
	return &mockStore{
		sessions:    make(map[string]*domain.Session),
		pomodoros:   make(map[string]*domain.Pomodoro),
		tasks:       make(map[string]*domain.Task),
		reflections: make(map[string]*domain.Reflection),
		presets:     make(map[string]*domain.Preset),
		initialized: true,
	}
}

func (m *mockStore) Initialize() error {
	m.initialized = true
	return nil
}

func (m *mockStore) IsInitialized() bool {
	return m.initialized
}

func (m *mockStore) GetSession(id string) (*domain.Session, error) {
	return m.sessions[id], nil
}

func (m *mockStore) ListSessionsByOwner(owner domain.Identity) ([]*domain.Session, error) {
	var sessions []*domain.Session
	for _, s := range m.sessions {
		if s.OwnerID == owner {
			sessions = append(sessions, s)
		}
	}
	slices.SortFunc(sessions, func(a, b *domain.Session) int {
		return b.StartTime.Compare(a.StartTime)
	})
	return sessions, nil
}

func (m *mockStore) SearchSessionsByName(owner domain.Identity, query string) ([]*domain.Session, error) {
	owned, _ := m.ListSessionsByOwner(owner)
	var matches []*domain.Session
	for _, s := range owned {
		if strings.Contains(strings.ToLower(s.Name), strings.ToLower(query)) {
			matches = append(matches, s)
		}
	}
	return matches, nil
}

func (m *mockStore) SaveSession(s *domain.Session) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.sessions[s.ID] = s
	return nil
}

func (m *mockStore) GetPomodoro(id string) (*domain.Pomodoro, error) {
	return m.pomodoros[id], nil
}

func (m *mockStore) ListPomodorosBySession(sessionID string) ([]*domain.Pomodoro, error) {
	var pomodoros []*domain.Pomodoro
	for _, p := range m.pomodoros {
		if p.SessionID == sessionID {
			pomodoros = append(pomodoros, p)
		}
	}
	slices.SortFunc(pomodoros, func(a, b *domain.Pomodoro) int {
		return b.StartTime.Compare(a.StartTime)
	})
	return pomodoros, nil
}

func (m *mockStore) SavePomodoro(p *domain.Pomodoro) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.pomodoros[p.ID] = p
	return nil
}

func (m *mockStore) GetTask(id string) (*domain.Task, error) {
	return m.tasks[id], nil
}

func (m *mockStore) ListTasksByPomodoro(pomodoroID string) ([]*domain.Task, error) {
	var tasks []*domain.Task
	for _, t := range m.tasks {
		if t.PomodoroID == pomodoroID {
			tasks = append(tasks, t)
		}
	}
	slices.SortFunc(tasks, func(a, b *domain.Task) int {
		return int(a.Seq - b.Seq)
	})
	return tasks, nil
}

func (m *mockStore) SaveTask(t *domain.Task) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	if t.Seq == 0 {
		m.nextSeq++
		t.Seq = m.nextSeq
	}
	m.tasks[t.ID] = t
	return nil
}

func (m *mockStore) GetReflectionByPomodoro(pomodoroID string) (*domain.Reflection, error) {
	return m.reflections[pomodoroID], nil
}

func (m *mockStore) UpsertReflection(r *domain.Reflection) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.reflections[r.PomodoroID] = r
	return nil
}

func (m *mockStore) GetPreset(id string) (*domain.Preset, error) {
	return m.presets[id], nil
}

func (m *mockStore) ListPresetsByOwner(owner domain.Identity) ([]*domain.Preset, error) {
	var presets []*domain.Preset
	for _, p := range m.presets {
		if p.OwnerID == owner {
			presets = append(presets, p)
		}
	}
	slices.SortFunc(presets, func(a, b *domain.Preset) int {
		return b.Created.Compare(a.Created)
	})
	return presets, nil
}

func (m *mockStore) SearchPresetsByName(owner domain.Identity, query string) ([]*domain.Preset, error) {
	owned, _ := m.ListPresetsByOwner(owner)
	var matches []*domain.Preset
	for _, p := range owned {
		if strings.Contains(strings.ToLower(p.Name), strings.ToLower(query)) {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

func (m *mockStore) SavePreset(p *domain.Preset) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.presets[p.ID] = p
	return nil
}

var _ domain.Store = (*mockStore)(nil)
