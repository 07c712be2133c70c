package datasources

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jbeshir/newsdesk/internal/domain"
)

type failingCache struct {
	err error
}

func (c failingCache) Get(_ context.Context, _ string) ([]byte, bool, error) {
	return []byte("stale"), true, c.err
}

func (c failingCache) Set(_ context.Context, _ string, _ []byte, _ time.Duration) error {
	return c.err
}

func (c failingCache) Delete(_ context.Context, _ ...string) error {
	return c.err
}

func (c failingCache) DeletePrefix(_ context.Context, _ string) error {
	return c.err
}

func TestFailSafeCache_DegradesBackendErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{name: "cache_unavailable", err: domain.ErrCacheUnavailable},
		{name: "unclassified", err: errors.New("connection reset by peer")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := FailSafeCache{Backend: failingCache{err: tc.err}}
			ctx := context.Background()

			value, found, err := c.Get(ctx, "article:id:a1")
			require.NoError(t, err)
			assert.False(t, found)
			assert.Nil(t, value)

			assert.NoError(t, c.Set(ctx, "article:id:a1", []byte("x"), time.Minute))
			assert.NoError(t, c.Delete(ctx, "article:id:a1"))
			assert.NoError(t, c.DeletePrefix(ctx, "article:"))
		})
	}
}

func TestFailSafeCache_PassesThroughHealthyBackend(t *testing.T) {
	c := FailSafeCache{Backend: failingCache{}}

	value, found, err := c.Get(context.Background(), "article:id:a1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("stale"), value)
}

func TestNullCache(t *testing.T) {
	c := NullCache{}
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	_, found, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)
}
