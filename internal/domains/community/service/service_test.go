package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	commentmodel "bookstore-storefront/internal/domains/comment/model"
	"bookstore-storefront/internal/domains/community/model"
	reviewmodel "bookstore-storefront/internal/domains/review/model"
	"bookstore-storefront/pkg/apiclient"
)

type fakeReviews struct {
	page       *reviewmodel.ReviewPage
	summaryErr error
	lastReq    reviewmodel.ListReviewsRequest
}

func (f *fakeReviews) ListByBook(ctx context.Context, req reviewmodel.ListReviewsRequest) (*reviewmodel.ReviewPage, error) {
	f.lastReq = req
	return f.page, nil
}

func (f *fakeReviews) Summary(ctx context.Context, bookID uuid.UUID) (*reviewmodel.RatingSummary, error) {
	if f.summaryErr != nil {
		return nil, f.summaryErr
	}
	return &reviewmodel.RatingSummary{BookID: bookID}, nil
}

type fakeThreads struct {
	err error
}

func (f *fakeThreads) Thread(ctx context.Context, bookID uuid.UUID) (*commentmodel.Thread, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &commentmodel.Thread{BookID: bookID, Total: 2}, nil
}

func TestPage_AllSectionsLoaded(t *testing.T) {
	bookID := uuid.New()
	reviews := &fakeReviews{page: &reviewmodel.ReviewPage{Page: 2, Total: 14}}
	svc := NewCommunityService(reviews, &fakeThreads{})

	page := svc.Page(context.Background(), model.PageRequest{BookID: bookID, ReviewPage: 2})

	assert.Equal(t, bookID, page.BookID)
	require.False(t, page.Reviews.Failed())
	assert.Equal(t, 14, page.Reviews.Data.Total)
	require.False(t, page.Rating.Failed())
	assert.Equal(t, bookID, page.Rating.Data.BookID)
	require.False(t, page.Comments.Failed())
	assert.Equal(t, 2, page.Comments.Data.Total)

	assert.Equal(t, 2, reviews.lastReq.Page)
	assert.Equal(t, reviewmodel.DefaultPageSize, reviews.lastReq.Size)
}

func TestPage_SectionFailuresStayInPlace(t *testing.T) {
	reviews := &fakeReviews{
		page:       &reviewmodel.ReviewPage{Total: 1},
		summaryErr: &apiclient.APIError{StatusCode: http.StatusServiceUnavailable, Message: "Rating service unavailable"},
	}
	threads := &fakeThreads{err: &apiclient.APIError{StatusCode: http.StatusInternalServerError, Message: "Comments are down"}}
	svc := NewCommunityService(reviews, threads)

	page := svc.Page(context.Background(), model.PageRequest{BookID: uuid.New()})

	assert.False(t, page.Reviews.Failed())
	assert.Equal(t, 1, page.Reviews.Data.Total)

	assert.True(t, page.Rating.Failed())
	assert.Nil(t, page.Rating.Data)
	assert.Equal(t, "Rating service unavailable", page.Rating.Error)

	assert.True(t, page.Comments.Failed())
	assert.Equal(t, "Comments are down", page.Comments.Error)
}
