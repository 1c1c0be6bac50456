package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withMiniredis swaps the package client for a miniredis-backed one and
// restores the previous client afterwards. Tests using it must not run in
// parallel because the client is package state.
func withMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	prev := GetClient()
	SetClient(rdb)
	t.Cleanup(func() {
		SetClient(prev)
		_ = rdb.Close()
		mr.Close()
	})
	return mr
}

type cachedValue struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestGetSetJSON(t *testing.T) {
	withMiniredis(t)
	ctx := context.Background()

	found, err := GetJSON(ctx, "k", &cachedValue{})
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, SetJSON(ctx, "k", cachedValue{Name: "a", Count: 2}, time.Minute))

	var got cachedValue
	found, err = GetJSON(ctx, "k", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, cachedValue{Name: "a", Count: 2}, got)
}

func TestGetSetJSON_NilClientIsNoop(t *testing.T) {
	prev := GetClient()
	SetClient(nil)
	t.Cleanup(func() { SetClient(prev) })

	ctx := context.Background()
	found, err := GetJSON(ctx, "k", &cachedValue{})
	assert.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, SetJSON(ctx, "k", cachedValue{}, time.Minute))
}

func TestAside(t *testing.T) {
	withMiniredis(t)
	ctx := context.Background()

	fills := 0
	fetch := func(dest *cachedValue) func() error {
		return func() error {
			fills++
			*dest = cachedValue{Name: "fresh", Count: fills}
			return nil
		}
	}

	var first cachedValue
	require.NoError(t, Aside(ctx, "posts", &first, time.Minute, fetch(&first)))
	assert.Equal(t, 1, fills)
	assert.Equal(t, "fresh", first.Name)

	// Second read is served from the cache; fetch is not called again.
	var second cachedValue
	require.NoError(t, Aside(ctx, "posts", &second, time.Minute, fetch(&second)))
	assert.Equal(t, 1, fills)
	assert.Equal(t, 1, second.Count)
}

func TestInvalidate(t *testing.T) {
	withMiniredis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, PostsListKey(), cachedValue{Name: "stale"}, time.Minute))
	InvalidatePostsList(ctx)

	found, err := GetJSON(ctx, PostsListKey(), &cachedValue{})
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, SetJSON(ctx, WorkspaceKey(7), cachedValue{Name: "ws"}, time.Minute))
	InvalidateWorkspace(ctx, 7)
	found, err = GetJSON(ctx, WorkspaceKey(7), &cachedValue{})
	require.NoError(t, err)
	assert.False(t, found)
}
