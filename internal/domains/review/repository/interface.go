package repository

import (
	"context"

	"github.com/google/uuid"

	"bookstore-storefront/internal/domains/review/model"
)

// RepositoryInterface is the backend review API
type RepositoryInterface interface {
	List(ctx context.Context, req model.ListReviewsRequest) (*model.ReviewPage, error)
	Summary(ctx context.Context, bookID uuid.UUID) (*model.RatingSummary, error)
	Create(ctx context.Context, req model.CreateReviewRequest) (*model.Review, error)
	Update(ctx context.Context, id uuid.UUID, req model.UpdateReviewRequest) (*model.Review, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
