package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/redis/go-redis/v9"
)

const (
	redisKeyPrefix = "graft:snapshot:"
	redisIndexKey  = "graft:snapshots"
)

// RedisStore keeps snapshots in Redis, one JSON value per snapshot plus a
// set indexing the stored names. Suitable when several processes share one
// snapshot namespace.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to the Redis instance at addr and verifies the
// connection with a ping before returning.
func NewRedisStore(ctx context.Context, addr string) (Store, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect redis %s: %w", addr, err)
	}
	return instrument("redis", &RedisStore{client: client}), nil
}

func (s *RedisStore) Save(ctx context.Context, name string, data []byte) (Snapshot, error) {
	if name == "" {
		return Snapshot{}, ErrEmptyName
	}
	snap := newSnapshot(name, data)
	blob, err := json.Marshal(snap)
	if err != nil {
		return Snapshot{}, err
	}
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, redisKeyPrefix+name, blob, 0)
	pipe.SAdd(ctx, redisIndexKey, name)
	if _, err := pipe.Exec(ctx); err != nil {
		return Snapshot{}, fmt.Errorf("save %s: %w", name, err)
	}
	return snap, nil
}

func (s *RedisStore) Load(ctx context.Context, name string) (Snapshot, error) {
	if name == "" {
		return Snapshot{}, ErrEmptyName
	}
	blob, err := s.client.Get(ctx, redisKeyPrefix+name).Bytes()
	if errors.Is(err, redis.Nil) {
		return Snapshot{}, ErrSnapshotNotFound
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("load %s: %w", name, err)
	}
	var snap Snapshot
	if err := json.Unmarshal(blob, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("corrupt snapshot %s: %w", name, err)
	}
	return snap, nil
}

func (s *RedisStore) List(ctx context.Context) ([]Snapshot, error) {
	names, err := s.client.SMembers(ctx, redisIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	snaps := make([]Snapshot, 0, len(names))
	for _, name := range names {
		snap, err := s.Load(ctx, name)
		if errors.Is(err, ErrSnapshotNotFound) {
			continue // index entry outlived its value
		}
		if err != nil {
			return nil, err
		}
		snaps = append(snaps, snap)
	}
	slices.SortFunc(snaps, func(a, b Snapshot) int { return strings.Compare(a.Name, b.Name) })
	return snaps, nil
}

func (s *RedisStore) Delete(ctx context.Context, name string) error {
	if name == "" {
		return ErrEmptyName
	}
	removed, err := s.client.Del(ctx, redisKeyPrefix+name).Result()
	if err != nil {
		return fmt.Errorf("delete %s: %w", name, err)
	}
	if removed == 0 {
		return ErrSnapshotNotFound
	}
	return s.client.SRem(ctx, redisIndexKey, name).Err()
}

// Close closes the underlying Redis client.
func (s *RedisStore) Close() error { return s.client.Close() }
