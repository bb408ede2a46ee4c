// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bookmark

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/pdiddy/research-catalog/pkg/types"
)

// RedisStore persists bookmarks as members of a Redis set.
type RedisStore struct {
	rdb *redis.Client
	key string
}

// NewRedisStore returns a RedisStore for the server and key in cfg. The
// connection is established lazily on first use.
func NewRedisStore(cfg types.BookmarkConfig) *RedisStore {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	return NewRedisStoreFromClient(rdb, cfg.RedisKey)
}

// NewRedisStoreFromClient wraps an existing client.
func NewRedisStoreFromClient(rdb *redis.Client, key string) *RedisStore {
	return &RedisStore{rdb: rdb, key: key}
}

// Load returns the members of the bookmark set. Members that are not
// integers are skipped.
func (s *RedisStore) Load(ctx context.Context) ([]int, error) {
	members, err := s.rdb.SMembers(ctx, s.key).Result()
	if err != nil {
		return nil, fmt.Errorf("redis smembers %s: %w", s.key, err)
	}
	ids := make([]int, 0, len(members))
	for _, m := range members {
		id, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Save atomically replaces the bookmark set with ids.
func (s *RedisStore) Save(ctx context.Context, ids []int) error {
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, s.key)
		if len(ids) > 0 {
			members := make([]any, len(ids))
			for i, id := range ids {
				members[i] = strconv.Itoa(id)
			}
			pipe.SAdd(ctx, s.key, members...)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis save %s: %w", s.key, err)
	}
	return nil
}

// Close closes the Redis client.
func (s *RedisStore) Close() error {
	return s.rdb.Close()
}
