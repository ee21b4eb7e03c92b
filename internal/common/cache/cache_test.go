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

type item struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func newCache(t *testing.T, prefix string) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return New(client, prefix), mr
}

func TestCache_SetGetInvalidate(t *testing.T) {
	c, mr := newCache(t, "test")
	ctx := context.Background()

	var got item
	assert.ErrorIs(t, c.Get(ctx, "a", &got), ErrMiss)

	ok, err := c.SetIfVersion(ctx, "a", 0, item{Name: "x", Count: 2}, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, mr.Exists("test:a"))
	assert.Equal(t, time.Minute, mr.TTL("test:a"))

	require.NoError(t, c.Get(ctx, "a", &got))
	assert.Equal(t, item{Name: "x", Count: 2}, got)

	require.NoError(t, c.Invalidate(ctx, "a", "b"))
	assert.ErrorIs(t, c.Get(ctx, "a", &got), ErrMiss)

	v, err := c.Version(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)
	assert.Equal(t, versionTTL, mr.TTL("test:a#ver"))
}

func TestCache_SetIfVersion_DropsFillAfterInvalidate(t *testing.T) {
	c, mr := newCache(t, "test")
	ctx := context.Background()

	v, err := c.Version(ctx, "a")
	require.NoError(t, err)
	assert.Zero(t, v)

	// an invalidation lands between the version read and the fill
	require.NoError(t, c.Invalidate(ctx, "a"))

	ok, err := c.SetIfVersion(ctx, "a", v, item{Name: "stale"}, time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, mr.Exists("test:a"))

	v, err = c.Version(ctx, "a")
	require.NoError(t, err)
	ok, err = c.SetIfVersion(ctx, "a", v, item{Name: "fresh"}, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	var got item
	require.NoError(t, c.Get(ctx, "a", &got))
	assert.Equal(t, "fresh", got.Name)
}

func TestCache_CorruptValue(t *testing.T) {
	c, mr := newCache(t, "test")
	require.NoError(t, mr.Set("test:bad", "{"))

	var got item
	err := c.Get(context.Background(), "bad", &got)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMiss)
}

func TestCache_NoPrefix(t *testing.T) {
	c, mr := newCache(t, "")

	ok, err := c.SetIfVersion(context.Background(), "plain", 0, 1, 0)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, mr.Exists("plain"))
	assert.Zero(t, mr.TTL("plain"))
}
