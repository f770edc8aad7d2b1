package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedisStore(t *testing.T) *RedisStore {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		rdb.Close()
		mr.Close()
	})
	return &RedisStore{Rdb: rdb}
}

func TestRedisStore_ReadAbsent(t *testing.T) {
	store := setupRedisStore(t)
	raw, found, err := store.Read(context.Background(), "nothing")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, raw)
}

func TestRedisStore_WriteReadClear(t *testing.T) {
	store := setupRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Write(ctx, "listings", []byte(`[]`)))
	raw, found, err := store.Read(ctx, "listings")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, `[]`, string(raw))

	require.NoError(t, store.Write(ctx, "listings", []byte(`[{"id":"l1"}]`)))
	raw, found, err = store.Read(ctx, "listings")
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, `[{"id":"l1"}]`, string(raw))

	require.NoError(t, store.Clear(ctx, "listings"))
	_, found, err = store.Read(ctx, "listings")
	require.NoError(t, err)
	assert.False(t, found)
}
