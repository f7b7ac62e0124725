// Package sqlitestore provides a SQLite-backed implementation of domain.Store.
// The secondary indexes the engine relies on are real database indexes kept
// consistent by the same statements that touch the primary rows.
package sqlitestore

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite"

	"github.com/pomo-dev/pomo/internal/domain"
	"github.com/pomo-dev/pomo/internal/search"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Store implements domain.Store using a SQLite database file.
type Store struct {
	conn *sql.DB
	path string
	mu   sync.Mutex
}

// New creates a new Store for the given database path. The database is
// opened lazily; use Initialize to create it.
func New(path string) *Store {
	return &Store{path: path}
}

// IsInitialized checks if the database file exists.
func (s *Store) IsInitialized() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Initialize creates the database file and migrates it to the latest schema.
// Initializing an up-to-date store is a no-op.
func (s *Store) Initialize() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	_, err := s.db(true)
	return err
}

// Close releases the database handle.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn == nil {
		return nil
	}
	err := s.conn.Close()
	s.conn = nil
	return err
}

// db returns the open connection, opening and migrating on first use.
// Unless create is set, a missing database file reports ErrNotInitialized.
func (s *Store) db(create bool) (*sql.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn != nil {
		return s.conn, nil
	}
	if !create {
		if _, err := os.Stat(s.path); err != nil {
			return nil, domain.ErrNotInitialized
		}
	}

	conn, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := migrateUp(conn); err != nil {
		_ = conn.Close()
		return nil, err
	}

	s.conn = conn
	return conn, nil
}

func migrateUp(conn *sql.DB) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}
	drv, err := migratesqlite.WithInstance(conn, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", drv)
	if err != nil {
		return fmt.Errorf("migrator: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// === Sessions ===

// GetSession retrieves a session by ID. Returns nil if not found.
func (s *Store) GetSession(id string) (*domain.Session, error) {
	conn, err := s.db(false)
	if err != nil {
		return nil, err
	}

	row := conn.QueryRow(`SELECT id, owner_id, name, start_time, end_time FROM sessions WHERE id = ?`, id)
	session, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return session, err
}

// ListSessionsByOwner retrieves the owner's sessions, newest first by start time.
func (s *Store) ListSessionsByOwner(owner domain.Identity) ([]*domain.Session, error) {
	conn, err := s.db(false)
	if err != nil {
		return nil, err
	}

	rows, err := conn.Query(
		`SELECT id, owner_id, name, start_time, end_time FROM sessions
		 WHERE owner_id = ? ORDER BY start_time DESC, id`, string(owner))
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*domain.Session
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	return sessions, rows.Err()
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
	conn, err := s.db(false)
	if err != nil {
		return err
	}

	_, err = conn.Exec(
		`INSERT INTO sessions (id, owner_id, name, start_time, end_time) VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET name = excluded.name, end_time = excluded.end_time`,
		session.ID, string(session.OwnerID), session.Name,
		session.StartTime.UnixMilli(), nullableMilli(session.EndTime))
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// === Pomodoros ===

// GetPomodoro retrieves a pomodoro by ID. Returns nil if not found.
func (s *Store) GetPomodoro(id string) (*domain.Pomodoro, error) {
	conn, err := s.db(false)
	if err != nil {
		return nil, err
	}

	row := conn.QueryRow(
		`SELECT id, owner_id, session_id, focus_duration, break_duration, status, start_time, break_start, end_time
		 FROM pomodoros WHERE id = ?`, id)
	pomodoro, err := scanPomodoro(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return pomodoro, err
}

// ListPomodorosBySession retrieves a session's pomodoros, newest first by start time.
func (s *Store) ListPomodorosBySession(sessionID string) ([]*domain.Pomodoro, error) {
	conn, err := s.db(false)
	if err != nil {
		return nil, err
	}

	rows, err := conn.Query(
		`SELECT id, owner_id, session_id, focus_duration, break_duration, status, start_time, break_start, end_time
		 FROM pomodoros WHERE session_id = ? ORDER BY start_time DESC, id`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("query pomodoros: %w", err)
	}
	defer rows.Close()

	var pomodoros []*domain.Pomodoro
	for rows.Next() {
		pomodoro, err := scanPomodoro(rows)
		if err != nil {
			return nil, err
		}
		pomodoros = append(pomodoros, pomodoro)
	}
	return pomodoros, rows.Err()
}

// SavePomodoro creates or updates a pomodoro. The session linkage and owner
// never change after creation; updates only touch the transition fields.
func (s *Store) SavePomodoro(p *domain.Pomodoro) error {
	conn, err := s.db(false)
	if err != nil {
		return err
	}

	_, err = conn.Exec(
		`INSERT INTO pomodoros (id, owner_id, session_id, focus_duration, break_duration, status, start_time, break_start, end_time)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET
		   status = excluded.status, break_start = excluded.break_start, end_time = excluded.end_time`,
		p.ID, string(p.OwnerID), p.SessionID, p.FocusDuration, p.BreakDuration, string(p.Status),
		p.StartTime.UnixMilli(), nullableMilli(p.BreakStart), nullableMilli(p.EndTime))
	if err != nil {
		return fmt.Errorf("save pomodoro: %w", err)
	}
	return nil
}

// === Tasks ===

// GetTask retrieves a task by ID. Returns nil if not found.
func (s *Store) GetTask(id string) (*domain.Task, error) {
	conn, err := s.db(false)
	if err != nil {
		return nil, err
	}

	row := conn.QueryRow(`SELECT id, pomodoro_id, description, completed, seq, created FROM tasks WHERE id = ?`, id)
	task, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return task, err
}

// ListTasksByPomodoro retrieves a pomodoro's tasks in insertion order.
func (s *Store) ListTasksByPomodoro(pomodoroID string) ([]*domain.Task, error) {
	conn, err := s.db(false)
	if err != nil {
		return nil, err
	}

	rows, err := conn.Query(
		`SELECT id, pomodoro_id, description, completed, seq, created FROM tasks
		 WHERE pomodoro_id = ? ORDER BY seq`, pomodoroID)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

// SaveTask creates or updates a task, assigning the insertion sequence on
// first save.
func (s *Store) SaveTask(t *domain.Task) error {
	conn, err := s.db(false)
	if err != nil {
		return err
	}

	if t.Seq == 0 {
		// Sequence assignment and insert share one transaction so two
		// concurrent inserts cannot claim the same slot.
		tx, err := conn.Begin()
		if err != nil {
			return fmt.Errorf("begin: %w", err)
		}
		defer func() { _ = tx.Rollback() }()

		if err := tx.QueryRow(`SELECT COALESCE(MAX(seq), 0) + 1 FROM tasks`).Scan(&t.Seq); err != nil {
			return fmt.Errorf("next task seq: %w", err)
		}
		if _, err := tx.Exec(
			`INSERT INTO tasks (id, pomodoro_id, description, completed, seq, created) VALUES (?, ?, ?, ?, ?, ?)`,
			t.ID, t.PomodoroID, t.Description, boolToInt(t.Completed), t.Seq, t.Created.UnixMilli()); err != nil {
			return fmt.Errorf("insert task: %w", err)
		}
		return tx.Commit()
	}

	_, err = conn.Exec(
		`UPDATE tasks SET description = ?, completed = ? WHERE id = ?`,
		t.Description, boolToInt(t.Completed), t.ID)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	return nil
}

// === Reflections ===

// GetReflectionByPomodoro retrieves the pomodoro's reflection. Returns nil if none.
func (s *Store) GetReflectionByPomodoro(pomodoroID string) (*domain.Reflection, error) {
	conn, err := s.db(false)
	if err != nil {
		return nil, err
	}

	row := conn.QueryRow(`SELECT id, pomodoro_id, rating, description FROM reflections WHERE pomodoro_id = ?`, pomodoroID)

	var (
		r      domain.Reflection
		rating sql.NullInt64
		desc   sql.NullString
	)
	if err := row.Scan(&r.ID, &r.PomodoroID, &rating, &desc); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan reflection: %w", err)
	}
	if rating.Valid {
		v := int(rating.Int64)
		r.Rating = &v
	}
	r.Description = desc.String
	return &r, nil
}

// UpsertReflection creates or replaces the reflection keyed by PomodoroID.
// The unique index on pomodoro_id makes the one-per-cycle rule structural.
func (s *Store) UpsertReflection(r *domain.Reflection) error {
	conn, err := s.db(false)
	if err != nil {
		return err
	}

	var rating any
	if r.Rating != nil {
		rating = *r.Rating
	}
	_, err = conn.Exec(
		`INSERT INTO reflections (id, pomodoro_id, rating, description) VALUES (?, ?, ?, ?)
		 ON CONFLICT (pomodoro_id) DO UPDATE SET rating = excluded.rating, description = excluded.description`,
		r.ID, r.PomodoroID, rating, r.Description)
	if err != nil {
		return fmt.Errorf("upsert reflection: %w", err)
	}
	return nil
}

// === Presets ===

// GetPreset retrieves a preset by ID. Returns nil if not found.
func (s *Store) GetPreset(id string) (*domain.Preset, error) {
	conn, err := s.db(false)
	if err != nil {
		return nil, err
	}

	row := conn.QueryRow(`SELECT id, owner_id, name, focus_duration, break_duration, created FROM presets WHERE id = ?`, id)
	preset, err := scanPreset(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return preset, err
}

// ListPresetsByOwner retrieves the owner's presets, newest first.
func (s *Store) ListPresetsByOwner(owner domain.Identity) ([]*domain.Preset, error) {
	conn, err := s.db(false)
	if err != nil {
		return nil, err
	}

	rows, err := conn.Query(
		`SELECT id, owner_id, name, focus_duration, break_duration, created FROM presets
		 WHERE owner_id = ? ORDER BY created DESC, id`, string(owner))
	if err != nil {
		return nil, fmt.Errorf("query presets: %w", err)
	}
	defer rows.Close()

	var presets []*domain.Preset
	for rows.Next() {
		preset, err := scanPreset(rows)
		if err != nil {
			return nil, err
		}
		presets = append(presets, preset)
	}
	return presets, rows.Err()
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
	conn, err := s.db(false)
	if err != nil {
		return err
	}

	_, err = conn.Exec(
		`INSERT INTO presets (id, owner_id, name, focus_duration, break_duration, created) VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET
		   name = excluded.name, focus_duration = excluded.focus_duration, break_duration = excluded.break_duration`,
		p.ID, string(p.OwnerID), p.Name, p.FocusDuration, p.BreakDuration, p.Created.UnixMilli())
	if err != nil {
		return fmt.Errorf("save preset: %w", err)
	}
	return nil
}

// === Scanning helpers ===

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*domain.Session, error) {
	var (
		s       domain.Session
		owner   string
		startMs int64
		endMs   sql.NullInt64
	)
	if err := row.Scan(&s.ID, &owner, &s.Name, &startMs, &endMs); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan session: %w", err)
	}
	s.OwnerID = domain.Identity(owner)
	s.StartTime = time.UnixMilli(startMs).UTC()
	if endMs.Valid {
		s.EndTime = time.UnixMilli(endMs.Int64).UTC()
	}
	return &s, nil
}

func scanPomodoro(row rowScanner) (*domain.Pomodoro, error) {
	var (
		p       domain.Pomodoro
		owner   string
		status  string
		startMs int64
		breakMs sql.NullInt64
		endMs   sql.NullInt64
	)
	if err := row.Scan(&p.ID, &owner, &p.SessionID, &p.FocusDuration, &p.BreakDuration, &status, &startMs, &breakMs, &endMs); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan pomodoro: %w", err)
	}
	p.OwnerID = domain.Identity(owner)
	p.Status = domain.Status(status)
	p.StartTime = time.UnixMilli(startMs).UTC()
	if breakMs.Valid {
		p.BreakStart = time.UnixMilli(breakMs.Int64).UTC()
	}
	if endMs.Valid {
		p.EndTime = time.UnixMilli(endMs.Int64).UTC()
	}
	return &p, nil
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var (
		t         domain.Task
		completed int
		createdMs int64
	)
	if err := row.Scan(&t.ID, &t.PomodoroID, &t.Description, &completed, &t.Seq, &createdMs); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan task: %w", err)
	}
	t.Completed = completed != 0
	t.Created = time.UnixMilli(createdMs).UTC()
	return &t, nil
}

func scanPreset(row rowScanner) (*domain.Preset, error) {
	var (
		p         domain.Preset
		owner     string
		createdMs int64
	)
	if err := row.Scan(&p.ID, &owner, &p.Name, &p.FocusDuration, &p.BreakDuration, &createdMs); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan preset: %w", err)
	}
	p.OwnerID = domain.Identity(owner)
	p.Created = time.UnixMilli(createdMs).UTC()
	return &p, nil
}

func nullableMilli(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.UnixMilli()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Ensure Store implements domain.Store.
var _ domain.Store = (*Store)(nil)
