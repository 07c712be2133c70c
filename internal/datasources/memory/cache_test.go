package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_GetSetExpiry(t *testing.T) {
	now := time.Date(2024, 4, 27, 12, 0, 0, 0, time.UTC)
	c := New(10, time.Hour)
	c.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "article:id:a1", []byte("payload"), 5*time.Minute))

	value, found, err := c.Get(ctx, "article:id:a1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("payload"), value)

	now = now.Add(5 * time.Minute)

	_, found, err = c.Get(ctx, "article:id:a1")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCache_SetCopiesValue(t *testing.T) {
	c := New(10, time.Hour)
	ctx := context.Background()

	value := []byte("abc")
	require.NoError(t, c.Set(ctx, "k", value, time.Minute))
	value[0] = 'x'

	got, found, err := c.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []byte("abc"), got)
}

func TestCache_DeleteAndDeletePrefix(t *testing.T) {
	c := New(10, time.Hour)
	ctx := context.Background()

	for _, key := range []string{"article:id:a1", "article:slug:first", "article:id:a2", "other:key"} {
		require.NoError(t, c.Set(ctx, key, []byte("x"), time.Minute))
	}

	require.NoError(t, c.Delete(ctx, "article:id:a1", "missing"))
	_, found, _ := c.Get(ctx, "article:id:a1")
	assert.False(t, found)

	require.NoError(t, c.DeletePrefix(ctx, "article:"))
	for _, key := range []string{"article:slug:first", "article:id:a2"} {
		_, found, _ := c.Get(ctx, key)
		assert.False(t, found, key)
	}
	_, found, _ = c.Get(ctx, "other:key")
	assert.True(t, found)
}

func TestCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c := New(2, time.Hour)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "a", []byte("1"), time.Minute))
	require.NoError(t, c.Set(ctx, "b", []byte("2"), time.Minute))
	_, _, _ = c.Get(ctx, "a")
	require.NoError(t, c.Set(ctx, "c", []byte("3"), time.Minute))

	_, found, _ := c.Get(ctx, "b")
	assert.False(t, found)
	_, found, _ = c.Get(ctx, "a")
	assert.True(t, found)
}
