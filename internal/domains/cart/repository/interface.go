package repository

import (
	"context"

	"github.com/google/uuid"

	"bookstore-storefront/internal/domains/cart/model"
)

// RepositoryInterface is the cart as held by the backend.
// Every method returns the whole new summary, never a diff.
type RepositoryInterface interface {
	Get(ctx context.Context) (*model.CartSummary, error)
	AddItem(ctx context.Context, req model.AddItemRequest) (*model.CartSummary, error)
	UpdateItem(ctx context.Context, bookID uuid.UUID, req model.UpdateItemRequest) (*model.CartSummary, error)
	RemoveItem(ctx context.Context, bookID uuid.UUID) (*model.CartSummary, error)
	Clear(ctx context.Context) (*model.CartSummary, error)
	SelectAll(ctx context.Context, selected bool) (*model.CartSummary, error)
}
