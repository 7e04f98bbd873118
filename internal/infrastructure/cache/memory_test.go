package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgcache "bookstore-storefront/pkg/cache"
)

type badge struct {
	Count int       `json:"count"`
	SetAt time.Time `json:"set_at"`
}

func TestMemoryCache_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	var got badge
	found, err := c.Get(ctx, "cart_badge", &got)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.Set(ctx, "cart_badge", badge{Count: 3}, 0))

	found, err = c.Get(ctx, "cart_badge", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 3, got.Count)

	require.NoError(t, c.Delete(ctx, "cart_badge", "missing"))
	exists, err := c.Exists(ctx, "cart_badge")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMemoryCache_Expiry(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryCache().(*MemoryCache)
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	require.NoError(t, m.Set(ctx, "auth_token", "abc", time.Minute))

	var token string
	found, _ := m.Get(ctx, "auth_token", &token)
	assert.True(t, found)

	now = now.Add(2 * time.Minute)
	found, _ = m.Get(ctx, "auth_token", &token)
	assert.False(t, found)
}

func TestScoped_IsolatesSessions(t *testing.T) {
	ctx := context.Background()
	backing := NewMemoryCache()
	a := pkgcache.NewScoped(backing, pkgcache.SessionScope("a"), time.Hour)
	b := pkgcache.NewScoped(backing, pkgcache.SessionScope("b"), time.Hour)

	require.NoError(t, a.Set(ctx, "auth_token", "token-a", 0))

	var token string
	found, err := b.Get(ctx, "auth_token", &token)
	require.NoError(t, err)
	assert.False(t, found)

	found, err = backing.Get(ctx, "session:a:auth_token", &token)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "token-a", token)
}
