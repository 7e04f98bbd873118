package service

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"bookstore-storefront/internal/domains/review/model"
	"bookstore-storefront/internal/domains/review/repository"
	"bookstore-storefront/pkg/apiclient"
	"bookstore-storefront/pkg/jwt"
	"bookstore-storefront/pkg/logger"
)

type reviewService struct {
	repo      repository.RepositoryInterface
	inspector *jwt.Inspector
	now       func() time.Time
}

func NewReviewService(repo repository.RepositoryInterface, inspector *jwt.Inspector) ServiceInterface {
	return &reviewService{
		repo:      repo,
		inspector: inspector,
		now:       time.Now,
	}
}

// =====================================================
// READ
// =====================================================

func (s *reviewService) ListByBook(ctx context.Context, req model.ListReviewsRequest) (*model.ReviewPage, error) {
	req.Normalize()

	page, err := s.repo.List(ctx, req)
	if err != nil {
		return nil, model.TranslateError(err)
	}
	if page.Items == nil {
		page.Items = []model.Review{}
	}

	userID := s.currentUser(ctx)
	if userID == uuid.Nil {
		return page, nil
	}

	now := s.now()
	for i := range page.Items {
		r := &page.Items[i]
		if r.UserID != userID {
			continue
		}
		r.Mine = true
		r.CanEdit = r.CanBeEdited(now)
		r.CanDelete = r.CanBeDeleted(now)
	}
	return page, nil
}

func (s *reviewService) Summary(ctx context.Context, bookID uuid.UUID) (*model.RatingSummary, error) {
	summary, err := s.repo.Summary(ctx, bookID)
	if err != nil {
		return nil, model.TranslateError(err)
	}
	if summary.RatingBreakdown == nil {
		summary.RatingBreakdown = map[int]int{}
	}
	for star := model.MinRating; star <= model.MaxRating; star++ {
		if _, ok := summary.RatingBreakdown[star]; !ok {
			summary.RatingBreakdown[star] = 0
		}
	}
	return summary, nil
}

// =====================================================
// WRITE
// =====================================================

func (s *reviewService) CreateReview(ctx context.Context, req model.CreateReviewRequest) (*model.Review, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	review, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, model.TranslateError(err)
	}

	logger.Info("Review created", map[string]interface{}{
		"review_id": review.ID.String(),
		"book_id":   req.BookID.String(),
		"rating":    req.Rating,
	})
	return review, nil
}

func (s *reviewService) UpdateReview(ctx context.Context, reviewID uuid.UUID, req model.UpdateReviewRequest) (*model.Review, error) {
	if reviewID == uuid.Nil {
		return nil, model.ErrInvalidReviewRef
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	review, err := s.repo.Update(ctx, reviewID, req)
	if err != nil {
		// the backend enforces the edit window with 403
		if apiclient.StatusCode(err) == http.StatusForbidden {
			return nil, model.NewCannotEditError()
		}
		return nil, model.TranslateError(err)
	}
	return review, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, reviewID uuid.UUID) error {
	if reviewID == uuid.Nil {
		return model.ErrInvalidReviewRef
	}
	if err := s.repo.Delete(ctx, reviewID); err != nil {
		if apiclient.StatusCode(err) == http.StatusForbidden {
			return model.NewCannotDeleteError()
		}
		return model.TranslateError(err)
	}

	logger.Info("Review deleted", map[string]interface{}{
		"review_id": reviewID.String(),
	})
	return nil
}

// currentUser reads the user id from the session token, uuid.Nil when anonymous
func (s *reviewService) currentUser(ctx context.Context) uuid.UUID {
	token := apiclient.TokenFromContext(ctx)
	if token == "" || s.inspector == nil {
		return uuid.Nil
	}
	claims, err := s.inspector.Inspect(token)
	if err != nil {
		return uuid.Nil
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil
	}
	return id
}
