package service

import (
	"context"
	"sort"
	"strings"

	"bookstore-storefront/internal/domains/warehouse/model"
	"bookstore-storefront/internal/domains/warehouse/repository"
)

type warehouseService struct {
	repo repository.Repository
}

func NewService(repo repository.Repository) Service {
	return &warehouseService{repo: repo}
}

func (s *warehouseService) SearchStock(ctx context.Context, req model.StockSearchRequest) (*model.StockPage, error) {
	req.Keyword = strings.TrimSpace(req.Keyword)
	req.Province = strings.TrimSpace(req.Province)
	req.WarehouseCode = strings.ToUpper(strings.TrimSpace(req.WarehouseCode))
	if err := req.Validate(); err != nil {
		return nil, err
	}
	req.Normalize()

	page, err := s.repo.SearchStock(ctx, req)
	if err != nil {
		return nil, err
	}
	if page.Items == nil {
		page.Items = []model.StockRow{}
	}

	// Backend cũ bỏ qua lowStockOnly: lọc lại phía storefront
	if req.LowStockOnly {
		filtered := page.Items[:0]
		for _, row := range page.Items {
			if row.IsLowStock() {
				filtered = append(filtered, row)
			}
		}
		page.Items = filtered
	}
	return page, nil
}

// Trả về các dòng sắp hết hàng, ít hàng nhất trước
func (s *warehouseService) LowStock(ctx context.Context, limit int) ([]model.StockRow, error) {
	page, err := s.SearchStock(ctx, model.StockSearchRequest{
		LowStockOnly: true,
		Size:         model.MaxPageSize,
	})
	if err != nil {
		return nil, err
	}

	rows := page.Items
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Available() < rows[j].Available()
	})
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}
