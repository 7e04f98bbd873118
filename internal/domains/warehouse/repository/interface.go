package repository

import (
	"context"

	"bookstore-storefront/internal/domains/warehouse/model"
)

type Repository interface {
	SearchStock(ctx context.Context, req model.StockSearchRequest) (*model.StockPage, error)
}
