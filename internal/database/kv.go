package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Key-value backends for per-user state blobs. Load returns (nil, nil) when
// a namespace has never been saved.

// MemoryKV keeps blobs in process memory. Contents are lost on restart.
type MemoryKV struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemoryKV creates an empty in-memory store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{blobs: make(map[string][]byte)}
}

func (m *MemoryKV) Load(_ context.Context, namespace string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	blob, ok := m.blobs[namespace]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), blob...), nil
}

func (m *MemoryKV) Save(_ context.Context, namespace string, blob []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[namespace] = append([]byte(nil), blob...)
	return nil
}

const redisKeyPrefix = "moviestate:"

// RedisKV stores each namespace as a Redis string without expiry.
type RedisKV struct {
	rdb *redis.Client
}

// NewRedisKV wraps a connected Redis client.
func NewRedisKV(rdb *redis.Client) *RedisKV {
	return &RedisKV{rdb: rdb}
}

func (r *RedisKV) Load(ctx context.Context, namespace string) ([]byte, error) {
	blob, err := r.rdb.Get(ctx, redisKeyPrefix+namespace).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", namespace, err)
	}
	return blob, nil
}

func (r *RedisKV) Save(ctx context.Context, namespace string, blob []byte) error {
	if err := r.rdb.Set(ctx, redisKeyPrefix+namespace, blob, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", namespace, err)
	}
	return nil
}

// PostgresKV stores blobs in the user_state table.
type PostgresKV struct {
	db *sql.DB
}

// NewPostgresKV wraps a migrated PostgreSQL connection.
func NewPostgresKV(db *sql.DB) *PostgresKV {
	return &PostgresKV{db: db}
}

func (p *PostgresKV) Load(ctx context.Context, namespace string) ([]byte, error) {
	var blob string
	err := p.db.QueryRowContext(ctx,
		`SELECT blob FROM user_state WHERE namespace = $1`, namespace,
	).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", namespace, err)
	}
	return []byte(blob), nil
}

func (p *PostgresKV) Save(ctx context.Context, namespace string, blob []byte) error {
	_, err := p.db.ExecContext(ctx, `
		INSERT INTO user_state (namespace, blob, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (namespace) DO UPDATE SET
			blob = EXCLUDED.blob,
			updated_at = EXCLUDED.updated_at
	`, namespace, string(blob))
	if err != nil {
		return fmt.Errorf("save %s: %w", namespace, err)
	}
	return nil
}
