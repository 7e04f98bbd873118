package service

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	commentmodel "bookstore-storefront/internal/domains/comment/model"
	"bookstore-storefront/internal/domains/community/model"
	reviewmodel "bookstore-storefront/internal/domains/review/model"
	"bookstore-storefront/pkg/apiclient"
	"bookstore-storefront/pkg/logger"
)

type ReviewReader interface {
	ListByBook(ctx context.Context, req reviewmodel.ListReviewsRequest) (*reviewmodel.ReviewPage, error)
	Summary(ctx context.Context, bookID uuid.UUID) (*reviewmodel.RatingSummary, error)
}

type ThreadReader interface {
	Thread(ctx context.Context, bookID uuid.UUID) (*commentmodel.Thread, error)
}

type ServiceInterface interface {
	// Page loads reviews, rating summary and comments concurrently.
	// A failing section is reported in place; it never fails the page.
	Page(ctx context.Context, req model.PageRequest) *model.Page
}

type communityService struct {
	reviews  ReviewReader
	comments ThreadReader
}

func NewCommunityService(reviews ReviewReader, comments ThreadReader) ServiceInterface {
	return &communityService{reviews: reviews, comments: comments}
}

func (s *communityService) Page(ctx context.Context, req model.PageRequest) *model.Page {
	page := &model.Page{BookID: req.BookID}

	// errgroup without WithContext: one section failing must not cancel the others
	var g errgroup.Group
	g.Go(func() error {
		listReq := reviewmodel.ListReviewsRequest{BookID: req.BookID, Page: req.ReviewPage}
		listReq.Normalize()
		reviews, err := s.reviews.ListByBook(ctx, listReq)
		page.Reviews = section(reviews, err, "reviews", req.BookID)
		return nil
	})
	g.Go(func() error {
		summary, err := s.reviews.Summary(ctx, req.BookID)
		page.Rating = section(summary, err, "rating", req.BookID)
		return nil
	})
	g.Go(func() error {
		thread, err := s.comments.Thread(ctx, req.BookID)
		page.Comments = section(thread, err, "comments", req.BookID)
		return nil
	})
	_ = g.Wait()

	return page
}

func section[T any](data *T, err error, name string, bookID uuid.UUID) model.Section[T] {
	if err != nil {
		logger.Warn("Community section failed to load", map[string]interface{}{
			"section": name,
			"book_id": bookID.String(),
			"error":   err.Error(),
		})
		return model.Failed[T](apiclient.Message(err))
	}
	return model.Loaded(data)
}
