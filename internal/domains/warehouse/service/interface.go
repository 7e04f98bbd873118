package service

import (
	"context"

	"bookstore-storefront/internal/domains/warehouse/model"
)

type Service interface {
	// Tra cứu tồn kho theo sách / kho / tỉnh
	SearchStock(ctx context.Context, req model.StockSearchRequest) (*model.StockPage, error)
	// Các dòng sắp hết hàng (tối đa limit dòng)
	LowStock(ctx context.Context, limit int) ([]model.StockRow, error)
}
