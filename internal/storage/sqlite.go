package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/yourname/fittracker/internal"

	_ "modernc.org/sqlite"
)

type SQLiteStorage struct {
	db     *sql.DB
	key    string
	logger internal.Logger
}

func NewSQLiteStorage(ctx context.Context, path, key string, logger internal.Logger) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		logger.Errorf("failed to open sqlite: %v", err)
		return nil, err
	}
	// One writer at a time; sqlite serialises writes anyway.
	db.SetMaxOpenConns(1)
	s := &SQLiteStorage{db: db, key: key, logger: logger}
	if err := s.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStorage) migrate(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS app_state (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at DATETIME NOT NULL
	);`
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("storage: migrate sqlite: %w", err)
	}
	return nil
}

func (s *SQLiteStorage) LoadState(ctx context.Context) (*internal.State, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM app_state WHERE key = ?`, s.key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStateNotFound
	}
	if err != nil {
		return nil, err
	}
	return decodeState([]byte(value))
}

func (s *SQLiteStorage) SaveState(ctx context.Context, state *internal.State) error {
	data, err := encodeState(state)
	if err != nil {
		return err
	}
	query := `INSERT INTO app_state (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	_, err = s.db.ExecContext(ctx, query, s.key, string(data), time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to upsert state: %w", err)
	}
	return nil
}

func (s *SQLiteStorage) ClearState(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM app_state WHERE key = ?`, s.key)
	return err
}

func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

var _ StateRepository = (*SQLiteStorage)(nil)
