package service

import (
	"context"

	"github.com/google/uuid"

	"bookstore-storefront/internal/domains/review/model"
)

// =====================================================
// REVIEW SERVICE INTERFACE
// =====================================================

type ServiceInterface interface {
	// ListByBook lists one page of a book's reviews, flagging the
	// signed-in user's own reviews as editable/deletable
	ListByBook(ctx context.Context, req model.ListReviewsRequest) (*model.ReviewPage, error)

	// Summary returns the rating breakdown of a book
	Summary(ctx context.Context, bookID uuid.UUID) (*model.RatingSummary, error)

	CreateReview(ctx context.Context, req model.CreateReviewRequest) (*model.Review, error)
	UpdateReview(ctx context.Context, reviewID uuid.UUID, req model.UpdateReviewRequest) (*model.Review, error)
	DeleteReview(ctx context.Context, reviewID uuid.UUID) error
}
