package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yourname/fittracker/internal"
)

type PostgresStorage struct {
	pool   *pgxpool.Pool
	key    string
	logger internal.Logger
}

func NewPostgresStorage(ctx context.Context, dsn, key string, logger internal.Logger) (*PostgresStorage, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		logger.Errorf("failed to connect to postgres: %v", err)
		return nil, err
	}
	p := &PostgresStorage{pool: pool, key: key, logger: logger}
	if err := p.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return p, nil
}

func (p *PostgresStorage) migrate(ctx context.Context) error {
	_, err := p.pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS app_state (
		key TEXT PRIMARY KEY,
		value JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`)
	if err != nil {
		p.logger.Errorf("failed to migrate app_state: %v", err)
		return fmt.Errorf("storage: migrate postgres: %w", err)
	}
	return nil
}

func (p *PostgresStorage) LoadState(ctx context.Context) (*internal.State, error) {
	var data []byte
	err := p.pool.QueryRow(ctx, `SELECT value FROM app_state WHERE key = $1`, p.key).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrStateNotFound
	}
	if err != nil {
		p.logger.Errorf("failed to query state: %v", err)
		return nil, err
	}
	return decodeState(data)
}

func (p *PostgresStorage) SaveState(ctx context.Context, state *internal.State) error {
	data, err := encodeState(state)
	if err != nil {
		return err
	}
	_, err = p.pool.Exec(ctx, `INSERT INTO app_state (key, value, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`, p.key, data)
	if err != nil {
		p.logger.Errorf("failed to upsert state: %v", err)
		return err
	}
	return nil
}

func (p *PostgresStorage) ClearState(ctx context.Context) error {
	if _, err := p.pool.Exec(ctx, `DELETE FROM app_state WHERE key = $1`, p.key); err != nil {
		p.logger.Errorf("failed to delete state: %v", err)
		return err
	}
	return nil
}

func (p *PostgresStorage) Close() error {
	p.pool.Close()
	return nil
}

var _ StateRepository = (*PostgresStorage)(nil)
