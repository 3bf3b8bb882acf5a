package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/yourname/fittracker/internal"
)

type RedisStorage struct {
	client *redis.Client
	key    string
	logger internal.Logger
}

func NewRedisStorage(ctx context.Context, opts *redis.Options, key string, logger internal.Logger) (*RedisStorage, error) {
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Errorf("failed to connect to redis at %s: %v", opts.Addr, err)
		_ = client.Close()
		return nil, fmt.Errorf("storage: redis ping: %w", err)
	}
	return &RedisStorage{client: client, key: key, logger: logger}, nil
}

func (r *RedisStorage) LoadState(ctx context.Context) (*internal.State, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrStateNotFound
	}
	if err != nil {
		return nil, err
	}
	return decodeState(data)
}

func (r *RedisStorage) SaveState(ctx context.Context, state *internal.State) error {
	data, err := encodeState(state)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.key, data, 0).Err()
}

func (r *RedisStorage) ClearState(ctx context.Context) error {
	return r.client.Del(ctx, r.key).Err()
}

func (r *RedisStorage) Close() error {
	return r.client.Close()
}

var _ StateRepository = (*RedisStorage)(nil)
