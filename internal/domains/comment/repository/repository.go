package repository

import (
	"context"

	"github.com/google/uuid"

	"bookstore-storefront/internal/domains/comment/model"
	"bookstore-storefront/pkg/apiclient"
)

type RepositoryInterface interface {
	ListByBook(ctx context.Context, bookID uuid.UUID) ([]model.Comment, error)
	Create(ctx context.Context, req model.CreateCommentRequest) (*model.Comment, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Like(ctx context.Context, id uuid.UUID) (*model.LikeState, error)
	Unlike(ctx context.Context, id uuid.UUID) (*model.LikeState, error)
}

type apiRepository struct {
	client *apiclient.Client
}

func NewAPIRepository(client *apiclient.Client) RepositoryInterface {
	return &apiRepository{client: client}
}

func (r *apiRepository) ListByBook(ctx context.Context, bookID uuid.UUID) ([]model.Comment, error) {
	var out []model.Comment
	if err := r.client.Get(ctx, "/books/"+bookID.String()+"/comments", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *apiRepository) Create(ctx context.Context, req model.CreateCommentRequest) (*model.Comment, error) {
	var out model.Comment
	if err := r.client.Post(ctx, "/comments", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *apiRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.client.Delete(ctx, "/comments/"+id.String(), nil)
}

func (r *apiRepository) Like(ctx context.Context, id uuid.UUID) (*model.LikeState, error) {
	var out model.LikeState
	if err := r.client.Post(ctx, "/comments/"+id.String()+"/like", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *apiRepository) Unlike(ctx context.Context, id uuid.UUID) (*model.LikeState, error) {
	var out model.LikeState
	if err := r.client.Delete(ctx, "/comments/"+id.String()+"/like", &out); err != nil {
		return nil, err
	}
	return &out, nil
}
