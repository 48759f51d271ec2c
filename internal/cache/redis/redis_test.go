package redis

import (
	"context"
	"testing"
	"time"

	"github.com/JMURv/zedasignal/internal/cache"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedPlan struct {
	Name     string `json:"name"`
	Ordering int    `json:"ordering"`
}

func newTestRedis(t *testing.T) (*Redis, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	return &Redis{cli: redis.NewClient(&redis.Options{Addr: srv.Addr()})}, srv
}

func TestRedis_SetAndGetToStruct(t *testing.T) {
	r, _ := newTestRedis(t)
	ctx := context.Background()

	bytes, err := json.Marshal(&cachedPlan{Name: "Gold", Ordering: 2})
	require.NoError(t, err)
	r.Set(ctx, time.Minute, "plan:gold", bytes)

	res := &cachedPlan{}
	require.NoError(t, r.GetToStruct(ctx, "plan:gold", res))
	assert.Equal(t, "Gold", res.Name)
	assert.Equal(t, 2, res.Ordering)
}

func TestRedis_GetToStruct_Miss(t *testing.T) {
	r, _ := newTestRedis(t)

	err := r.GetToStruct(context.Background(), "missing", &cachedPlan{})
	assert.ErrorIs(t, err, cache.ErrNotFoundInCache)
}

func TestRedis_SetExpires(t *testing.T) {
	r, srv := newTestRedis(t)
	ctx := context.Background()

	r.Set(ctx, time.Second, "blacklist:jti", []byte("true"))
	srv.FastForward(2 * time.Second)

	var revoked bool
	assert.ErrorIs(t, r.GetToStruct(ctx, "blacklist:jti", &revoked), cache.ErrNotFoundInCache)
}

func TestRedis_Delete(t *testing.T) {
	r, srv := newTestRedis(t)
	ctx := context.Background()

	r.Set(ctx, time.Minute, "plan:1", []byte("{}"))
	r.Delete(ctx, "plan:1")
	assert.False(t, srv.Exists("plan:1"))
}

func TestRedis_InvalidateKeysByPattern(t *testing.T) {
	r, srv := newTestRedis(t)
	ctx := context.Background()

	for _, key := range []string{"plans-list", "plans-1", "plans-2", "bots-list"} {
		r.Set(ctx, time.Minute, key, []byte("{}"))
	}

	r.InvalidateKeysByPattern(ctx, "plans-*")

	assert.False(t, srv.Exists("plans-list"))
	assert.False(t, srv.Exists("plans-1"))
	assert.False(t, srv.Exists("plans-2"))
	assert.True(t, srv.Exists("bots-list"))
}
