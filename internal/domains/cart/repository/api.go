package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"bookstore-storefront/internal/domains/cart/model"
	"bookstore-storefront/pkg/apiclient"
)

type apiRepository struct {
	client *apiclient.Client
}

func NewAPIRepository(client *apiclient.Client) RepositoryInterface {
	return &apiRepository{client: client}
}

func (r *apiRepository) Get(ctx context.Context) (*model.CartSummary, error) {
	var out model.CartSummary
	if err := r.client.Get(ctx, "/cart", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *apiRepository) AddItem(ctx context.Context, req model.AddItemRequest) (*model.CartSummary, error) {
	var out model.CartSummary
	if err := r.client.Post(ctx, "/cart/items", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *apiRepository) UpdateItem(ctx context.Context, bookID uuid.UUID, req model.UpdateItemRequest) (*model.CartSummary, error) {
	var out model.CartSummary
	if err := r.client.Put(ctx, fmt.Sprintf("/cart/items/%s", bookID), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *apiRepository) RemoveItem(ctx context.Context, bookID uuid.UUID) (*model.CartSummary, error) {
	var out model.CartSummary
	if err := r.client.Delete(ctx, fmt.Sprintf("/cart/items/%s", bookID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *apiRepository) Clear(ctx context.Context) (*model.CartSummary, error) {
	var out model.CartSummary
	if err := r.client.Post(ctx, "/cart/clear", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *apiRepository) SelectAll(ctx context.Context, selected bool) (*model.CartSummary, error) {
	var out model.CartSummary
	if err := r.client.Put(ctx, "/cart/select-all", model.SelectAllRequest{Selected: selected}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
