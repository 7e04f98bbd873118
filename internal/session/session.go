// Package session binds a browser session id to the request context and
// opens the session-scoped key/value store that replaces browser storage.
package session

import (
	"context"
	"errors"
	"time"

	"bookstore-storefront/pkg/cache"
)

// Store keys (relative to the session scope)
const (
	KeyAuthToken         = "auth_token"
	KeyAuthUser          = "auth_user"
	KeyCartBadge         = "cart_badge"
	KeyPostLoginRedirect = "post_login_redirect"
	KeyFavoriteIDs       = "favorite_ids"
)

// PaymentOutcomeKey is where the settle check records a late outcome
func PaymentOutcomeKey(orderCode string) string {
	return "payment_outcome:" + orderCode
}

var ErrNoSession = errors.New("no session bound to context")

type ctxKey struct{}

func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// IDFromContext returns the session id, "" when none is bound
func IDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// Opener derives session stores from one backing store
type Opener struct {
	backing cache.Cache
	ttl     time.Duration
}

func NewOpener(backing cache.Cache, ttl time.Duration) *Opener {
	return &Opener{backing: backing, ttl: ttl}
}

// Open returns the store of session id
func (o *Opener) Open(id string) *cache.Scoped {
	return cache.NewScoped(o.backing, cache.SessionScope(id), o.ttl)
}

// FromContext opens the store of the session bound to ctx
func (o *Opener) FromContext(ctx context.Context) (*cache.Scoped, string, error) {
	id := IDFromContext(ctx)
	if id == "" {
		return nil, "", ErrNoSession
	}
	return o.Open(id), id, nil
}
