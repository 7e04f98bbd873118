package cache

import (
	"context"
	"fmt"
	"time"
)

// Scoped prefixes every key with "<scope>:" so that one backing store can
// hold the local state of many browser sessions without collisions.
type Scoped struct {
	inner Cache
	scope string
	ttl   time.Duration
}

// NewScoped wraps inner. defaultTTL is applied when Set is called with ttl <= 0.
func NewScoped(inner Cache, scope string, defaultTTL time.Duration) *Scoped {
	return &Scoped{inner: inner, scope: scope, ttl: defaultTTL}
}

// SessionScope is the scope name used for a browser session
func SessionScope(sessionID string) string {
	return fmt.Sprintf("session:%s", sessionID)
}

func (s *Scoped) Scope() string {
	return s.scope
}

func (s *Scoped) key(k string) string {
	return s.scope + ":" + k
}

func (s *Scoped) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	return s.inner.Get(ctx, s.key(key), dest)
}

func (s *Scoped) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = s.ttl
	}
	return s.inner.Set(ctx, s.key(key), value, ttl)
}

func (s *Scoped) Delete(ctx context.Context, keys ...string) error {
	scopedKeys := make([]string, len(keys))
	for i, k := range keys {
		scopedKeys[i] = s.key(k)
	}
	return s.inner.Delete(ctx, scopedKeys...)
}

func (s *Scoped) Exists(ctx context.Context, key string) (bool, error) {
	return s.inner.Exists(ctx, s.key(key))
}

func (s *Scoped) Ping(ctx context.Context) error {
	return s.inner.Ping(ctx)
}
