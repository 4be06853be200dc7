package database

import (
	"context"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movie-discovery/internal/config"
)

type kvStore interface {
	Load(ctx context.Context, namespace string) ([]byte, error)
	Save(ctx context.Context, namespace string, blob []byte) error
}

func exerciseKV(t *testing.T, kv kvStore, namespace string) {
	t.Helper()
	ctx := context.Background()

	blob, err := kv.Load(ctx, namespace)
	require.NoError(t, err)
	assert.Nil(t, blob, "unsaved namespace should load as absent")

	require.NoError(t, kv.Save(ctx, namespace, []byte(`{"1":{"liked":true}}`)))
	blob, err = kv.Load(ctx, namespace)
	require.NoError(t, err)
	assert.JSONEq(t, `{"1":{"liked":true}}`, string(blob))

	require.NoError(t, kv.Save(ctx, namespace, []byte(`{}`)))
	blob, err = kv.Load(ctx, namespace)
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(blob))
}

func TestMemoryKV(t *testing.T) {
	exerciseKV(t, NewMemoryKV(), "interactions:test")
}

func TestMemoryKVCopiesBlobs(t *testing.T) {
	kv := NewMemoryKV()
	ctx := context.Background()

	in := []byte("abc")
	require.NoError(t, kv.Save(ctx, "ns", in))
	in[0] = 'x'

	out, err := kv.Load(ctx, "ns")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(out))
}

func TestRedisKVIntegration(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}
	rdb, err := NewRedis(config.RedisConfig{Addr: addr})
	require.NoError(t, err)
	defer rdb.Close()

	namespace := "interactions:integration-test"
	defer rdb.Del(context.Background(), redisKeyPrefix+namespace)

	exerciseKV(t, NewRedisKV(rdb), namespace)
}

func TestRedisKVUnavailable(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	defer rdb.Close()

	kv := NewRedisKV(rdb)
	_, err := kv.Load(context.Background(), "ns")
	assert.Error(t, err)
	assert.Error(t, kv.Save(context.Background(), "ns", []byte("{}")))
}

func TestPostgresKVIntegration(t *testing.T) {
	if os.Getenv("TEST_POSTGRES_HOST") == "" {
		t.Skip("TEST_POSTGRES_HOST not set")
	}
	db, err := NewPostgres(config.DBConfig{
		Host:     os.Getenv("TEST_POSTGRES_HOST"),
		Port:     5432,
		User:     "postgres",
		Password: os.Getenv("TEST_POSTGRES_PASSWORD"),
		DBName:   "postgres",
		SSLMode:  "disable",
	})
	require.NoError(t, err)
	defer db.Close()

	namespace := "interactions:integration-test"
	defer db.Exec(`DELETE FROM user_state WHERE namespace = $1`, namespace)

	exerciseKV(t, NewPostgresKV(db), namespace)
}
