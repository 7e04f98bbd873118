package repository

import (
	"context"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"bookstore-storefront/internal/domains/review/model"
	"bookstore-storefront/pkg/apiclient"
)

type apiRepository struct {
	client *apiclient.Client
}

func NewAPIRepository(client *apiclient.Client) RepositoryInterface {
	return &apiRepository{client: client}
}

func (r *apiRepository) List(ctx context.Context, req model.ListReviewsRequest) (*model.ReviewPage, error) {
	query := url.Values{}
	query.Set("bookId", req.BookID.String())
	query.Set("page", strconv.Itoa(req.Page))
	query.Set("size", strconv.Itoa(req.Size))
	if req.Rating != nil {
		query.Set("rating", strconv.Itoa(*req.Rating))
	}

	var out model.ReviewPage
	if err := r.client.Get(ctx, "/reviews", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *apiRepository) Summary(ctx context.Context, bookID uuid.UUID) (*model.RatingSummary, error) {
	query := url.Values{}
	query.Set("bookId", bookID.String())

	var out model.RatingSummary
	if err := r.client.Get(ctx, "/reviews/summary", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *apiRepository) Create(ctx context.Context, req model.CreateReviewRequest) (*model.Review, error) {
	var out model.Review
	if err := r.client.Post(ctx, "/reviews", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *apiRepository) Update(ctx context.Context, id uuid.UUID, req model.UpdateReviewRequest) (*model.Review, error) {
	var out model.Review
	if err := r.client.Put(ctx, "/reviews/"+id.String(), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *apiRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.client.Delete(ctx, "/reviews/"+id.String(), nil)
}
