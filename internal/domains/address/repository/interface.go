package repository

import (
	"context"

	"bookstore-storefront/internal/domains/address/model"
	"bookstore-storefront/pkg/apiclient"
)

type RepositoryInterface interface {
	// ListMine returns the saved addresses of the authenticated user
	ListMine(ctx context.Context) ([]model.Address, error)
	Create(ctx context.Context, req model.AddressRequest) (*model.Address, error)
}

type apiRepository struct {
	client *apiclient.Client
}

func NewAPIRepository(client *apiclient.Client) RepositoryInterface {
	return &apiRepository{client: client}
}

func (r *apiRepository) ListMine(ctx context.Context) ([]model.Address, error) {
	var out []model.Address
	if err := r.client.Get(ctx, "/addresses", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *apiRepository) Create(ctx context.Context, req model.AddressRequest) (*model.Address, error) {
	var out model.Address
	if err := r.client.Post(ctx, "/addresses", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
