package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) (*miniredis.Miniredis, *redisRepository) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, &redisRepository{client: client}
}

func TestRedisRepository_SetGetDelete(t *testing.T) {
	mr, repo := newTestRepository(t)
	ctx := context.Background()

	err := repo.Set(ctx, "token_manager:id", map[string]string{"token": "abc"}, time.Minute)
	require.NoError(t, err)

	raw, err := repo.Get(ctx, "token_manager:id")
	require.NoError(t, err)
	assert.JSONEq(t, `{"token":"abc"}`, raw)
	assert.Equal(t, time.Minute, mr.TTL("token_manager:id"))

	require.NoError(t, repo.Delete(ctx, "token_manager:id"))
	assert.False(t, mr.Exists("token_manager:id"))
}

func TestRedisRepository_GetMissingKey(t *testing.T) {
	_, repo := newTestRepository(t)

	raw, err := repo.Get(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Empty(t, raw)
}

func TestRedisRepository_GetServerError(t *testing.T) {
	mr, repo := newTestRepository(t)
	mr.SetError("LOADING")

	_, err := repo.Get(context.Background(), "any")
	assert.Error(t, err)
}
