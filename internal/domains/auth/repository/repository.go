package repository

import (
	"context"

	"bookstore-storefront/internal/domains/auth/model"
	"bookstore-storefront/pkg/apiclient"
)

type RepositoryInterface interface {
	Login(ctx context.Context, req model.LoginRequest) (*model.LoginResult, error)
}

type apiRepository struct {
	client *apiclient.Client
}

func NewAPIRepository(client *apiclient.Client) RepositoryInterface {
	return &apiRepository{client: client}
}

func (r *apiRepository) Login(ctx context.Context, req model.LoginRequest) (*model.LoginResult, error) {
	var out model.LoginResult
	// a stale session token must not ride along on the login call
	if err := r.client.Post(apiclient.WithToken(ctx, ""), "/auth/login", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
