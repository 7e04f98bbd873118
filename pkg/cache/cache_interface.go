package cache

import (
	"context"
	"time"
)

// Cache is the key/value contract used for session-local state
// (auth token, cart badge, favorites, post-login redirect, payment outcomes).
//
// Contract:
//   - Get unmarshals the stored value into dest; found=false on miss and dest is untouched
//   - Set overwrites the value; ttl <= 0 means no expiry
//   - Delete is idempotent (missing keys are not an error)
//
// Implementations: Redis (shared between storefront and worker) and in-memory.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Exists(ctx context.Context, key string) (bool, error)
	Ping(ctx context.Context) error
}
