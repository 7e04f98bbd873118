package repository

import (
	"context"
	"net/url"
	"strconv"

	"bookstore-storefront/internal/domains/warehouse/model"
	"bookstore-storefront/pkg/apiclient"
)

type apiRepository struct {
	client *apiclient.Client
}

func NewAPIRepository(client *apiclient.Client) Repository {
	return &apiRepository{client: client}
}

func (r *apiRepository) SearchStock(ctx context.Context, req model.StockSearchRequest) (*model.StockPage, error) {
	query := url.Values{}
	if req.Keyword != "" {
		query.Set("keyword", req.Keyword)
	}
	if req.Province != "" {
		query.Set("province", req.Province)
	}
	if req.WarehouseCode != "" {
		query.Set("warehouseCode", req.WarehouseCode)
	}
	if req.LowStockOnly {
		query.Set("lowStockOnly", "true")
	}
	query.Set("page", strconv.Itoa(req.Page))
	query.Set("size", strconv.Itoa(req.Size))

	var out model.StockPage
	if err := r.client.Get(ctx, "/admin/warehouses/stock", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
