// Package localstate persists the handful of values that survive restarts
// (profile, favorites cache, notification opt-in) in a local SQLite file.
package localstate

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"

	"companion/config"
	"companion/internal/domain/service"
	"companion/internal/errors"

	// Registers the sqlite3 database/sql driver.
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the SQLite-backed local state store and manages its lifecycle.
func New(params Params) (service.LocalStateStore, error) {
	store, err := newStore(params.Config.LocalState.Path, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return store.close()
		},
	})

	return store, nil
}

type sqliteStore struct {
	db     *sql.DB
	logger *slog.Logger
}

func newStore(path string, logger *slog.Logger) (*sqliteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open local state database")
	}

	// A single writer avoids SQLITE_BUSY on concurrent fire-and-forget writes.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS local_state (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		db.Close()

		return nil, errors.Wrap(err, "failed to create local_state table")
	}

	return &sqliteStore{db: db, logger: logger}, nil
}

// Load unmarshals the stored value for key into dest. A missing row or
// unparsable content leaves dest untouched and returns false, so callers
// keep their defaults.
func (s *sqliteStore) Load(key string, dest any) bool {
	var raw string
	err := s.db.QueryRow("SELECT value FROM local_state WHERE key = ?", key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return false
	}
	if err != nil {
		s.logger.Warn("Failed to read local state", slog.Any("error", err), slog.String("key", key))

		return false
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		s.logger.Warn("Discarding unparsable local state", slog.Any("error", err), slog.String("key", key))

		return false
	}

	return true
}

// Store marshals value under key. Failures are logged and swallowed; a lost
// write means stale local state on next start, never a crash.
func (s *sqliteStore) Store(key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		s.logger.Warn("Failed to marshal local state", slog.Any("error", err), slog.String("key", key))

		return
	}

	if _, err := s.db.Exec(
		"INSERT INTO local_state (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, string(raw),
	); err != nil {
		s.logger.Warn("Failed to write local state", slog.Any("error", err), slog.String("key", key))
	}
}

func (s *sqliteStore) close() error {
	return s.db.Close()
}
