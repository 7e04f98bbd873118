package repository

import (
	"context"
	"net/url"
	"strconv"

	"bookstore-storefront/internal/domains/dashboard/model"
	"bookstore-storefront/pkg/apiclient"
)

type RepositoryInterface interface {
	KPIs(ctx context.Context, r model.RangeRequest) (*model.KPIs, error)
	Revenue(ctx context.Context, r model.RangeRequest) ([]model.RevenuePoint, error)
	TopBooks(ctx context.Context, r model.RangeRequest) ([]model.TopBook, error)
}

type apiRepository struct {
	client *apiclient.Client
}

func NewAPIRepository(client *apiclient.Client) RepositoryInterface {
	return &apiRepository{client: client}
}

func rangeQuery(r model.RangeRequest) url.Values {
	q := url.Values{}
	q.Set("from", r.From)
	q.Set("to", r.To)
	return q
}

func (a *apiRepository) KPIs(ctx context.Context, r model.RangeRequest) (*model.KPIs, error) {
	var out model.KPIs
	if err := a.client.Get(ctx, "/admin/dashboard/kpis", rangeQuery(r), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *apiRepository) Revenue(ctx context.Context, r model.RangeRequest) ([]model.RevenuePoint, error) {
	var out []model.RevenuePoint
	if err := a.client.Get(ctx, "/admin/dashboard/revenue", rangeQuery(r), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *apiRepository) TopBooks(ctx context.Context, r model.RangeRequest) ([]model.TopBook, error) {
	q := rangeQuery(r)
	q.Set("limit", strconv.Itoa(r.Limit))

	var out []model.TopBook
	if err := a.client.Get(ctx, "/admin/dashboard/top-books", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}
