package repository

import (
	"context"

	"github.com/google/uuid"

	"bookstore-storefront/pkg/apiclient"
)

type RepositoryInterface interface {
	IDs(ctx context.Context) ([]uuid.UUID, error)
	Add(ctx context.Context, bookID uuid.UUID) error
	Remove(ctx context.Context, bookID uuid.UUID) error
}

type apiRepository struct {
	client *apiclient.Client
}

func NewAPIRepository(client *apiclient.Client) RepositoryInterface {
	return &apiRepository{client: client}
}

func (r *apiRepository) IDs(ctx context.Context) ([]uuid.UUID, error) {
	var out []uuid.UUID
	if err := r.client.Get(ctx, "/favorites/ids", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *apiRepository) Add(ctx context.Context, bookID uuid.UUID) error {
	return r.client.Post(ctx, "/favorites/"+bookID.String(), nil, nil)
}

func (r *apiRepository) Remove(ctx context.Context, bookID uuid.UUID) error {
	return r.client.Delete(ctx, "/favorites/"+bookID.String(), nil)
}
