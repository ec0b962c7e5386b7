package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisConfig configures a Redis-backed store.
type RedisConfig struct {
	// Addr is the Redis server address (host:port).
	Addr string
	// Password is optional.
	Password string
	// DB selects the Redis database number.
	DB int
	// TTL, when non-zero, expires documents after the given duration.
	TTL time.Duration
	// KeyPrefix namespaces all keys. Defaults to "treestruct:doc:".
	KeyPrefix string
}

// RedisStore keeps documents as JSON values in Redis.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

// NewRedisStore connects to Redis and verifies the connection with a ping.
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect redis %s: %w", cfg.Addr, err)
	}
	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = "treestruct:doc:"
	}
	return &RedisStore{client: client, ttl: cfg.TTL, prefix: prefix}, nil
}

func (s *RedisStore) key(id string) string { return s.prefix + id }

// Get retrieves a document by ID.
func (s *RedisStore) Get(ctx context.Context, id string) (*Document, error) {
	if id == "" {
		return nil, ErrInvalidID
	}
	data, err := s.client.Get(ctx, s.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", id, err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode document %s: %w", id, err)
	}
	return &doc, nil
}

// Put stores a document.
func (s *RedisStore) Put(ctx context.Context, doc *Document) error {
	if doc.ID == "" {
		return ErrInvalidID
	}
	doc.UpdatedAt = time.Now().UTC()
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document %s: %w", doc.ID, err)
	}
	if err := s.client.Set(ctx, s.key(doc.ID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", doc.ID, err)
	}
	return nil
}

// Delete removes a document.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidID
	}
	n, err := s.client.Del(ctx, s.key(id)).Result()
	if err != nil {
		return fmt.Errorf("redis del %s: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns all stored documents, scanning keys under the store's prefix.
func (s *RedisStore) List(ctx context.Context) ([]*Document, error) {
	var out []*Document
	iter := s.client.Scan(ctx, 0, s.prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		data, err := s.client.Get(ctx, iter.Val()).Bytes()
		if errors.Is(err, redis.Nil) {
			continue // expired between scan and get
		}
		if err != nil {
			return nil, fmt.Errorf("redis get %s: %w", iter.Val(), err)
		}
		var doc Document
		if err := json.Unmarshal(data, &doc); err != nil {
			continue
		}
		out = append(out, &doc)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("redis scan: %w", err)
	}
	return out, nil
}

// Close closes the underlying client.
func (s *RedisStore) Close() error { return s.client.Close() }

// Ensure RedisStore implements Store.
var _ Store = (*RedisStore)(nil)
