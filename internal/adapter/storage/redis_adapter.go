package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rl1809/inventory-tracker/internal/core/domain"
)

// RedisAdapter stores the snapshot as a single string value under the store name.
type RedisAdapter struct {
	client *redis.Client
	key    string
}

func NewRedisAdapter(client *redis.Client, storeName string) *RedisAdapter {
	if storeName == "" {
		storeName = DefaultStoreName
	}
	return &RedisAdapter{client: client, key: storeName}
}

func (r *RedisAdapter) Load(ctx context.Context) (*domain.State, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get snapshot: %w", err)
	}
	return DecodeSnapshot(data)
}

func (r *RedisAdapter) Save(ctx context.Context, state domain.State) error {
	data, err := EncodeSnapshot(state)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("set snapshot: %w", err)
	}
	return nil
}
