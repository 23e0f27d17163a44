// Package store persists the application state as a single named record in a
// local SQLite database. All reads and mutations funnel through View/Update;
// Update writes the full blob back synchronously so every mutation is one
// atomic read-modify-write-persist step.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"

	"chorequest/internal/model"
)

// stateRecord is the name of the single persisted row.
const stateRecord = "app_state"

const schema = `
CREATE TABLE IF NOT EXISTS app_state (
	name       TEXT PRIMARY KEY,
	data       TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
`

// Store is the state container. It owns the in-memory AppState and its
// durable copy; services receive a *Store handle instead of reaching into a
// process-wide singleton.
type Store struct {
	db    *sql.DB
	mu    sync.Mutex
	state *model.AppState
}

// Open opens (or creates) the state database at path and loads the state
// record. A missing record is initialized to the default state and persisted.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open state database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create state schema: %w", err)
	}

	s := &Store{db: db}
	if err := s.load(); err != nil {
		db.Close()
		return nil, err
	}

	log.Info().Str("path", path).Msg("state store opened")
	return s, nil
}

// load reads the state record, initializing defaults when absent.
func (s *Store) load() error {
	var data string
	err := s.db.QueryRow(
		`SELECT data FROM app_state WHERE name = ?`, stateRecord,
	).Scan(&data)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		s.state = model.NewState()
		log.Info().Msg("no state record found, initializing defaults")
		return s.persist()
	case err != nil:
		return fmt.Errorf("failed to load state record: %w", err)
	}

	state := model.NewState()
	if err := json.Unmarshal([]byte(data), state); err != nil {
		return fmt.Errorf("failed to decode state record: %w", err)
	}
	if state.DailyQuestState == nil {
		state.DailyQuestState = map[string]model.DailyQuestState{}
	}
	s.state = state
	return nil
}

// persist writes the current state back as the single record. Caller holds mu.
func (s *Store) persist() error {
	data, err := json.Marshal(s.state)
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO app_state (name, data, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at
	`, stateRecord, string(data), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to persist state: %w", err)
	}
	return nil
}

// View runs fn with read access to the current state. fn must not retain
// references to state memory past the call.
func (s *Store) View(fn func(state *model.AppState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.state)
}

// Update runs fn against the current state and persists the result. If fn
// returns an error the write is skipped; fn must leave the state untouched on
// its own error paths.
func (s *Store) Update(fn func(state *model.AppState) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fn(s.state); err != nil {
		return err
	}
	return s.persist()
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() *model.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	if err != nil {
		return fmt.Errorf("failed to close state database: %w", err)
	}
	log.Info().Msg("state store closed")
	return nil
}
