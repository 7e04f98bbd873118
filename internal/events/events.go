// Package events is the in-process publish/subscribe bus used to propagate
// cart and favorite changes to interested listeners (header badges, SSE
// streams).
package events

import (
	"github.com/google/uuid"
)

// Topic names
const (
	TopicCartChanged        = "cart:changed"
	TopicFavoriteIDsUpdated = "favorite:ids-updated"
	TopicFavoriteChanged    = "favorite:changed"
	TopicPaymentSettled     = "payment:settled"
)

// Event is a typed payload bound to a session
type Event interface {
	Topic() string
	Session() string
}

// CartChanged is published after every successful cart mutation
type CartChanged struct {
	SessionID   string `json:"-"`
	UniqueItems int    `json:"uniqueItems"`
	TotalItems  int    `json:"totalItems"`
}

func (e CartChanged) Topic() string   { return TopicCartChanged }
func (e CartChanged) Session() string { return e.SessionID }

// FavoriteIDsUpdated carries the full favorite id set of a session
type FavoriteIDsUpdated struct {
	SessionID string      `json:"-"`
	IDs       []uuid.UUID `json:"ids"`
}

func (e FavoriteIDsUpdated) Topic() string   { return TopicFavoriteIDsUpdated }
func (e FavoriteIDsUpdated) Session() string { return e.SessionID }

// FavoriteChanged is published once a toggle is confirmed (or reverted)
type FavoriteChanged struct {
	SessionID string    `json:"-"`
	BookID    uuid.UUID `json:"bookId"`
	Favorited bool      `json:"favorited"`
}

func (e FavoriteChanged) Topic() string   { return TopicFavoriteChanged }
func (e FavoriteChanged) Session() string { return e.SessionID }

// PaymentSettled is published when a reconciliation reaches a terminal state
type PaymentSettled struct {
	SessionID string `json:"-"`
	OrderCode string `json:"orderCode"`
	State     string `json:"state"`
}

func (e PaymentSettled) Topic() string   { return TopicPaymentSettled }
func (e PaymentSettled) Session() string { return e.SessionID }
