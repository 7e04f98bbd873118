package repository

import (
	"context"
	"net/url"
	"strconv"

	"bookstore-storefront/internal/domains/order/model"
	"bookstore-storefront/pkg/apiclient"
)

type RepositoryInterface interface {
	Create(ctx context.Context, req model.CreateOrderRequest) (*model.Order, error)
	GetByCode(ctx context.Context, code string) (*model.Order, error)
	ListMine(ctx context.Context, req model.ListOrdersRequest) (*model.OrderPage, error)
}

type apiRepository struct {
	client *apiclient.Client
}

func NewAPIRepository(client *apiclient.Client) RepositoryInterface {
	return &apiRepository{client: client}
}

func (r *apiRepository) Create(ctx context.Context, req model.CreateOrderRequest) (*model.Order, error) {
	var out model.Order
	if err := r.client.Post(ctx, "/orders", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *apiRepository) GetByCode(ctx context.Context, code string) (*model.Order, error) {
	var out model.Order
	if err := r.client.Get(ctx, "/orders/"+url.PathEscape(code), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *apiRepository) ListMine(ctx context.Context, req model.ListOrdersRequest) (*model.OrderPage, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(req.Page))
	query.Set("size", strconv.Itoa(req.Size))

	var out model.OrderPage
	if err := r.client.Get(ctx, "/orders/me", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
