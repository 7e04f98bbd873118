package service

import (
	"context"

	"github.com/google/uuid"

	"bookstore-storefront/internal/domains/cart/model"
)

type ServiceInterface interface {
	// GetCart fetches the current summary and refreshes the badge
	GetCart(ctx context.Context) (*model.CartView, error)

	AddItem(ctx context.Context, req model.AddItemRequest) (*model.CartView, error)

	// UpdateItem changes quantity and/or selection of one line
	UpdateItem(ctx context.Context, bookID uuid.UUID, req model.UpdateItemRequest) (*model.CartView, error)

	RemoveItem(ctx context.Context, bookID uuid.UUID) (*model.CartView, error)
	Clear(ctx context.Context) (*model.CartView, error)
	SelectAll(ctx context.Context, selected bool) (*model.CartView, error)

	// BuyNow adds the book and marks it selected in one step
	BuyNow(ctx context.Context, req model.AddItemRequest) (*model.CartView, error)

	// Badge returns the header count. Within BadgeFreshWindow of a local
	// mutation the cached count wins over a fresh fetch.
	Badge(ctx context.Context) (int, error)
}
