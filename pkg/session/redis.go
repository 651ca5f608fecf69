package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore is a Redis-backed game store for games shared across
// machines. Keys are namespaced under "sudoku:game:".
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// keyPrefix namespaces all game keys in the Redis instance.
const keyPrefix = "sudoku:game:"

// DefaultGameTTL is how long an untouched game is kept.
const DefaultGameTTL = 30 * 24 * time.Hour

// NewRedisStore connects to Redis and verifies the connection.
// ttl <= 0 uses DefaultGameTTL.
func NewRedisStore(ctx context.Context, addr string, ttl time.Duration) (*RedisStore, error) {
	if ttl <= 0 {
		ttl = DefaultGameTTL
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis at %s: %w", addr, err)
	}
	return &RedisStore{client: client, ttl: ttl}, nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (*Game, error) {
	data, err := s.client.Get(ctx, keyPrefix+id).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}
	var g Game
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("parse game: %w", err)
	}
	return &g, nil
}

func (s *RedisStore) Set(ctx context.Context, game *Game) error {
	data, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("marshal game: %w", err)
	}
	if err := s.client.Set(ctx, keyPrefix+game.ID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, keyPrefix+id).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

func (s *RedisStore) List(ctx context.Context) ([]*Game, error) {
	var games []*Game
	iter := s.client.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		data, err := s.client.Get(ctx, iter.Val()).Bytes()
		if err != nil {
			continue
		}
		var g Game
		if err := json.Unmarshal(data, &g); err != nil {
			continue
		}
		games = append(games, &g)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("redis scan: %w", err)
	}

	sort.Slice(games, func(i, j int) bool {
		return games[i].UpdatedAt.After(games[j].UpdatedAt)
	})
	return games, nil
}

// Cleanup removes games untouched for longer than maxAge. Redis already
// expires keys via TTL; this forces the same policy immediately.
func (s *RedisStore) Cleanup(ctx context.Context, maxAge time.Duration) (int, error) {
	games, err := s.List(ctx)
	if err != nil {
		return 0, err
	}
	cutoff := time.Now().UTC().Add(-maxAge)

	removed := 0
	for _, g := range games {
		if g.UpdatedAt.After(cutoff) {
			continue
		}
		if err := s.Delete(ctx, g.ID); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}

// Close releases the Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

var _ Store = (*RedisStore)(nil)
