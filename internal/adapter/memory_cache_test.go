package adapter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumina/internal/domain"
)

func TestMemoryCache_GetSet(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	_, err := c.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)

	require.NoError(t, c.Set(ctx, "k", "v", 0))
	val, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", val)

	require.NoError(t, c.Delete(ctx, "k", "other"))
	_, err = c.Get(ctx, "k")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
	assert.NoError(t, c.Ping(ctx))
}

func TestMemoryCache_Expiration(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set(ctx, "k", "v", time.Minute))
	val, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", val)

	now = now.Add(time.Minute)
	_, err = c.Get(ctx, "k")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
	assert.Empty(t, c.items)
}

func TestMemoryCache_Hash(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	fields, err := c.HGetAll(ctx, "h")
	require.NoError(t, err)
	assert.Empty(t, fields)

	require.NoError(t, c.HSet(ctx, "h", map[string]string{"xp": "100", "streak": "1"}))
	require.NoError(t, c.HSet(ctx, "h", map[string]string{"xp": "250"}))

	fields, err = c.HGetAll(ctx, "h")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"xp": "250", "streak": "1"}, fields)

	fields["xp"] = "mutated"
	again, _ := c.HGetAll(ctx, "h")
	assert.Equal(t, "250", again["xp"])

	require.NoError(t, c.Delete(ctx, "h"))
	fields, _ = c.HGetAll(ctx, "h")
	assert.Empty(t, fields)
}
