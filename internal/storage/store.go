// Package storage persists the aggregate state as a versioned JSON document
// in a local SQLite database.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/avelinek/dayflow/internal/domain"
)

// stateKey is the single document slot the aggregate lives under.
const stateKey = "app_state"

// SaveReceipt reports a completed durable write.
type SaveReceipt struct {
	SavedAt time.Time
	Bytes   int
}

// Store is a document store over SQLite: one row per document key, the
// aggregate serialized as JSON in the doc column.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the store at the given path. ":memory:"
// opens an in-memory store for tests. WAL mode is enabled for file-backed
// databases.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating store directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}

	// An in-memory database exists per connection; cap the pool so every
	// caller sees the same one.
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	const schema = `CREATE TABLE IF NOT EXISTS documents (
		key      TEXT PRIMARY KEY,
		version  INTEGER NOT NULL,
		doc      TEXT NOT NULL,
		saved_at TEXT NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load reads the aggregate. The second return value is false on first run
// (no document yet); callers seed sample data in that case.
func (s *Store) Load() (*domain.State, bool, error) {
	var doc string
	err := s.db.QueryRow(`SELECT doc FROM documents WHERE key = ?`, stateKey).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("loading state: %w", err)
	}

	state, err := DecodeState([]byte(doc))
	if err != nil {
		return nil, false, err
	}
	return state, true, nil
}

// Save serializes and durably writes the aggregate.
func (s *Store) Save(state *domain.State) (SaveReceipt, error) {
	doc, err := EncodeState(state)
	if err != nil {
		return SaveReceipt{}, err
	}
	return s.SaveDoc(doc, time.Now().UTC())
}

// SaveDoc writes an already-encoded aggregate document.
func (s *Store) SaveDoc(doc []byte, savedAt time.Time) (SaveReceipt, error) {
	_, err := s.db.Exec(`INSERT INTO documents (key, version, doc, saved_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET version = excluded.version,
			doc = excluded.doc, saved_at = excluded.saved_at`,
		stateKey, domain.CurrentSchemaVersion, string(doc), savedAt.Format(time.RFC3339))
	if err != nil {
		return SaveReceipt{}, fmt.Errorf("writing state document: %w", err)
	}
	return SaveReceipt{SavedAt: savedAt, Bytes: len(doc)}, nil
}

// EncodeState serializes the aggregate to its document form.
func EncodeState(state *domain.State) ([]byte, error) {
	state.SchemaVersion = domain.CurrentSchemaVersion
	doc, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("encoding state: %w", err)
	}
	return doc, nil
}

// DecodeState deserializes an aggregate document. Missing fields default,
// so documents written by older versions still load.
func DecodeState(doc []byte) (*domain.State, error) {
	var state domain.State
	if err := json.Unmarshal(doc, &state); err != nil {
		return nil, fmt.Errorf("decoding state: %w", err)
	}
	if state.GoalFeedback == nil {
		state.GoalFeedback = make(map[string]*domain.FeedbackStats)
	}
	if state.PillarFeedback == nil {
		state.PillarFeedback = make(map[string]*domain.FeedbackStats)
	}
	return &state, nil
}
