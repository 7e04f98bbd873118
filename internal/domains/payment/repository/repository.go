package repository

import (
	"context"
	"net/http"
	"strings"

	"bookstore-storefront/internal/domains/payment/model"
	"bookstore-storefront/pkg/apiclient"
)

type RepositoryInterface interface {
	// ParseReturn asks the backend to interpret a gateway redirect.
	// The storefront never checks gateway signatures itself.
	ParseReturn(ctx context.Context, rawQuery string) (*model.ReturnDescriptor, error)
}

type apiRepository struct {
	client *apiclient.Client
}

func NewAPIRepository(client *apiclient.Client) RepositoryInterface {
	return &apiRepository{client: client}
}

func (r *apiRepository) ParseReturn(ctx context.Context, rawQuery string) (*model.ReturnDescriptor, error) {
	rawQuery = strings.TrimPrefix(strings.TrimSpace(rawQuery), "?")
	if rawQuery == "" {
		return nil, model.ErrEmptyReturn
	}

	var out model.ReturnDescriptor
	err := r.client.Do(ctx, apiclient.Request{
		Method:   http.MethodGet,
		Path:     "/payments/vnpay/return",
		RawQuery: rawQuery,
	}, &out)
	if err != nil {
		return nil, err
	}
	if out.OrderCode == "" {
		return nil, model.ErrMissingOrderRef
	}
	return &out, nil
}
