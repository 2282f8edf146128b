// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-dream-journal/internal/config"
	"github.com/MKhiriev/go-dream-journal/internal/logger"
)

type redisKeyValueStore struct {
	client *redis.Client
	prefix string
	logger *logger.Logger
}

// NewRedisKeyValueStore connects to the Redis server named by cfg.URL and
// returns a [KeyValueStore] that namespaces every key with cfg.Prefix.
// Values never expire.
func NewRedisKeyValueStore(ctx context.Context, cfg config.ClientRedis, log *logger.Logger) (KeyValueStore, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("error parsing redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err = client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisKeyValueStore").Msg("error connecting redis (ping)")
		_ = client.Close()
		return nil, fmt.Errorf("error connecting redis: %w", err)
	}
	log.Debug().Str("func", "NewRedisKeyValueStore").Msg("connected to redis successfully")

	return newRedisKeyValueStore(client, cfg.Prefix, log), nil
}

func newRedisKeyValueStore(client *redis.Client, prefix string, log *logger.Logger) *redisKeyValueStore {
	return &redisKeyValueStore{client: client, prefix: prefix, logger: log}
}

func (r *redisKeyValueStore) key(key string) string {
	return r.prefix + key
}

func (r *redisKeyValueStore) Get(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, r.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		r.logger.Err(err).Str("func", "redisKeyValueStore.Get").Str("key", key).Msg("failed to read value")
		return "", fmt.Errorf("redis get %q: %w", key, err)
	}
	return value, nil
}

func (r *redisKeyValueStore) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, r.key(key), value, 0).Err(); err != nil {
		r.logger.Err(err).Str("func", "redisKeyValueStore.Set").Str("key", key).Msg("failed to write value")
		return fmt.Errorf("redis set %q: %w", key, err)
	}
	return nil
}

func (r *redisKeyValueStore) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		r.logger.Err(err).Str("func", "redisKeyValueStore.Delete").Str("key", key).Msg("failed to delete value")
		return fmt.Errorf("redis del %q: %w", key, err)
	}
	return nil
}

func (r *redisKeyValueStore) Close() error {
	return r.client.Close()
}
