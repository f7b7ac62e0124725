// Package jsonstore provides a JSON file-based implementation of domain.Store.
package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"syscall"

	"github.com/pomo-dev/pomo/internal/domain"
	"github.com/pomo-dev/pomo/internal/search"
)

// storeData represents the JSON file structure. Every entity map is keyed by
// record id except reflections, which are keyed by pomodoro id so the
// one-reflection-per-pomodoro rule is structural.
type storeData struct {
	Sessions    map[string]*domain.Session    `json:"sessions"`
	Pomodoros   map[string]*domain.Pomodoro   `json:"pomodoros"`
	Tasks       map[string]*domain.Task       `json:"tasks"`
	Reflections map[string]*domain.Reflection `json:"reflections"`
	Presets     map[string]*domain.Preset     `json:"presets"`
	Meta        meta                          `json:"meta"`
}

// meta contains store metadata.
type meta struct {
	NextTaskSeq int64 `json:"nextTaskSeq"`
}

// Store implements domain.Store using a single JSON file. Reads take a
// shared flock, mutations an exclusive one; writes go through a temp file
// and rename so a mutation is all-or-nothing.
type Store struct {
	path     string
	lockPath string
}

// New creates a new Store for the given file path.
// The file does not need to exist; it is created by Initialize.
func New(path string) *Store {
	return &Store{
		path:     path,
		lockPath: path + ".lock",
	}
}

// IsInitialized checks if the store file exists.
func (s *Store) IsInitialized() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Initialize creates an empty store file if it doesn't exist.
func (s *Store) Initialize() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return nil // Already exists
	}

	return s.write(newStoreData())
}

func newStoreData() *storeData {
	return &storeData{
		Sessions:    make(map[string]*domain.Session),
		Pomodoros:   make(map[string]*domain.Pomodoro),
		Tasks:       make(map[string]*domain.Task),
		Reflections: make(map[string]*domain.Reflection),
		Presets:     make(map[string]*domain.Preset),
	}
}

// === Sessions ===

// GetSession retrieves a session by ID. Returns nil if not found.
func (s *Store) GetSession(id string) (*domain.Session, error) {
	var session *domain.Session
	err := s.withLock(func(data *storeData) error {
		session = data.Sessions[id]
		return nil
	})
	return session, err
}

// ListSessionsByOwner retrieves the owner's sessions, newest first by start time.
func (s *Store) ListSessionsByOwner(owner domain.Identity) ([]*domain.Session, error) {
	var sessions []*domain.Session
	err := s.withLock(func(data *storeData) error {
		for _, sess := range data.Sessions {
			if sess.OwnerID == owner {
				sessions = append(sessions, sess)
			}
		}
		return nil
	})
	sortSessions(sessions)
	return sessions, err
}

// SearchSessionsByName retrieves the owner's sessions matching query,
// ordered by relevance, ties newest first.
func (s *Store) SearchSessionsByName(owner domain.Identity, query string) ([]*domain.Session, error) {
	owned, err := s.ListSessionsByOwner(owner)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(owned))
	for i, sess := range owned {
		names[i] = sess.Name
	}

	var matches []*domain.Session
	for _, idx := range search.Rank(query, names) {
		matches = append(matches, owned[idx])
	}
	return matches, nil
}

// SaveSession creates or updates a session.
func (s *Store) SaveSession(session *domain.Session) error {
	return s.withLockWrite(func(data *storeData) error {
		data.Sessions[session.ID] = session
		return nil
	})
}

// === Pomodoros ===

// GetPomodoro retrieves a pomodoro by ID. Returns nil if not found.
func (s *Store) GetPomodoro(id string) (*domain.Pomodoro, error) {
	var pomodoro *domain.Pomodoro
	err := s.withLock(func(data *storeData) error {
		pomodoro = data.Pomodoros[id]
		return nil
	})
	return pomodoro, err
}

// ListPomodorosBySession retrieves a session's pomodoros, newest first by start time.
func (s *Store) ListPomodorosBySession(sessionID string) ([]*domain.Pomodoro, error) {
	var pomodoros []*domain.Pomodoro
	err := s.withLock(func(data *storeData) error {
		for _, p := range data.Pomodoros {
			if p.SessionID == sessionID {
				pomodoros = append(pomodoros, p)
			}
		}
		return nil
	})
	slices.SortFunc(pomodoros, func(a, b *domain.Pomodoro) int {
		if c := b.StartTime.Compare(a.StartTime); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return pomodoros, err
}

// SavePomodoro creates or updates a pomodoro.
func (s *Store) SavePomodoro(p *domain.Pomodoro) error {
	return s.withLockWrite(func(data *storeData) error {
		data.Pomodoros[p.ID] = p
		return nil
	})
}

// === Tasks ===

// GetTask retrieves a task by ID. Returns nil if not found.
func (s *Store) GetTask(id string) (*domain.Task, error) {
	var task *domain.Task
	err := s.withLock(func(data *storeData) error {
		task = data.Tasks[id]
		return nil
	})
	return task, err
}

// ListTasksByPomodoro retrieves a pomodoro's tasks in insertion order.
func (s *Store) ListTasksByPomodoro(pomodoroID string) ([]*domain.Task, error) {
	var tasks []*domain.Task
	err := s.withLock(func(data *storeData) error {
		for _, t := range data.Tasks {
			if t.PomodoroID == pomodoroID {
				tasks = append(tasks, t)
			}
		}
		return nil
	})
	slices.SortFunc(tasks, func(a, b *domain.Task) int {
		return int(a.Seq - b.Seq)
	})
	return tasks, err
}

// SaveTask creates or updates a task, assigning the insertion sequence on
// first save.
func (s *Store) SaveTask(t *domain.Task) error {
	return s.withLockWrite(func(data *storeData) error {
		if t.Seq == 0 {
			data.Meta.NextTaskSeq++
			t.Seq = data.Meta.NextTaskSeq
		}
		data.Tasks[t.ID] = t
		return nil
	})
}

// === Reflections ===

// GetReflectionByPomodoro retrieves the pomodoro's reflection. Returns nil if none.
func (s *Store) GetReflectionByPomodoro(pomodoroID string) (*domain.Reflection, error) {
	var reflection *domain.Reflection
	err := s.withLock(func(data *storeData) error {
		reflection = data.Reflections[pomodoroID]
		return nil
	})
	return reflection, err
}

// UpsertReflection creates or replaces the reflection keyed by PomodoroID.
func (s *Store) UpsertReflection(r *domain.Reflection) error {
	return s.withLockWrite(func(data *storeData) error {
		data.Reflections[r.PomodoroID] = r
		return nil
	})
}

// === Presets ===

// GetPreset retrieves a preset by ID. Returns nil if not found.
func (s *Store) GetPreset(id string) (*domain.Preset, error) {
	var preset *domain.Preset
	err := s.withLock(func(data *storeData) error {
		preset = data.Presets[id]
		return nil
	})
	return preset, err
}

// ListPresetsByOwner retrieves the owner's presets, newest first.
func (s *Store) ListPresetsByOwner(owner domain.Identity) ([]*domain.Preset, error) {
	var presets []*domain.Preset
	err := s.withLock(func(data *storeData) error {
		for _, p := range data.Presets {
			if p.OwnerID == owner {
				presets = append(presets, p)
			}
		}
		return nil
	})
	slices.SortFunc(presets, func(a, b *domain.Preset) int {
		if c := b.Created.Compare(a.Created); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return presets, err
}

// SearchPresetsByName retrieves the owner's presets matching query,
// ordered by relevance, ties newest first.
func (s *Store) SearchPresetsByName(owner domain.Identity, query string) ([]*domain.Preset, error) {
	owned, err := s.ListPresetsByOwner(owner)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(owned))
	for i, p := range owned {
		names[i] = p.Name
	}

	var matches []*domain.Preset
	for _, idx := range search.Rank(query, names) {
		matches = append(matches, owned[idx])
	}
	return matches, nil
}

// SavePreset creates or updates a preset.
func (s *Store) SavePreset(p *domain.Preset) error {
	return s.withLockWrite(func(data *storeData) error {
		data.Presets[p.ID] = p
		return nil
	})
}

// === Locking and IO ===

func sortSessions(sessions []*domain.Session) {
	slices.SortFunc(sessions, func(a, b *domain.Session) int {
		if c := b.StartTime.Compare(a.StartTime); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
}

// withLock executes fn with a shared (read) lock.
func (s *Store) withLock(fn func(*storeData) error) error {
	lock, err := s.acquireLock(syscall.LOCK_SH)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	data, err := s.read()
	if err != nil {
		return err
	}

	return fn(data)
}

// withLockWrite executes fn with an exclusive (write) lock and writes the result.
func (s *Store) withLockWrite(fn func(*storeData) error) error {
	lock, err := s.acquireLock(syscall.LOCK_EX)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	data, err := s.read()
	if err != nil {
		return err
	}

	if err := fn(data); err != nil {
		return err
	}

	return s.write(data)
}

func (s *Store) acquireLock(lockType int) (*os.File, error) {
	dir := filepath.Dir(s.lockPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	lock, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}

	return lock, nil
}

func (s *Store) releaseLock(lock *os.File) {
	_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
	_ = lock.Close()
}

func (s *Store) read() (*storeData, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrNotInitialized
		}
		return nil, fmt.Errorf("read store file: %w", err)
	}

	var data storeData
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("parse store file: %w", err)
	}

	// Ensure maps are initialized
	if data.Sessions == nil {
		data.Sessions = make(map[string]*domain.Session)
	}
	if data.Pomodoros == nil {
		data.Pomodoros = make(map[string]*domain.Pomodoro)
	}
	if data.Tasks == nil {
		data.Tasks = make(map[string]*domain.Task)
	}
	if data.Reflections == nil {
		data.Reflections = make(map[string]*domain.Reflection)
	}
	if data.Presets == nil {
		data.Presets = make(map[string]*domain.Preset)
	}

	return &data, nil
}

func (s *Store) write(data *storeData) error {
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store data: %w", err)
	}

	// Write to temp file first, then rename for atomicity
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath) // Clean up
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

// Ensure Store implements domain.Store.
var _ domain.Store = (*Store)(nil)
