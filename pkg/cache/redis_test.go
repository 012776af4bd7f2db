package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*Redis, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	backend, err := NewRedis("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = backend.Close() })
	return backend, mr
}

func TestRedisRoundTrip(t *testing.T) {
	backend, _ := newTestRedis(t)
	ctx := context.Background()

	_, ok := backend.Get(ctx, "missing")
	assert.False(t, ok)

	backend.Set(ctx, "k", `{"components":[]}`, 0)
	val, ok := backend.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, `{"components":[]}`, val)
}

func TestRedisTTL(t *testing.T) {
	backend, mr := newTestRedis(t)
	ctx := context.Background()

	backend.Set(ctx, "k", "v", time.Minute)
	_, ok := backend.Get(ctx, "k")
	require.True(t, ok)

	mr.FastForward(2 * time.Minute)
	_, ok = backend.Get(ctx, "k")
	assert.False(t, ok)
}

func TestRedisFailuresDegradeToMisses(t *testing.T) {
	backend, mr := newTestRedis(t)
	ctx := context.Background()

	mr.Close()

	// Neither call may panic or surface an error.
	backend.Set(ctx, "k", "v", 0)
	_, ok := backend.Get(ctx, "k")
	assert.False(t, ok)
}

func TestNoOp(t *testing.T) {
	var backend Backend = NoOp{}
	ctx := context.Background()

	backend.Set(ctx, "k", "v", 0)
	_, ok := backend.Get(ctx, "k")
	assert.False(t, ok)
}
