package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

const (
	DefaultLowStockThreshold = 10
	DefaultPageSize          = 20
	MaxPageSize              = 100
)

// Kho
type Warehouse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Code     string    `json:"code"`
	Province string    `json:"province"`
	IsActive bool      `json:"isActive"`
}

// StockRow là tồn kho của 1 sách tại 1 kho
type StockRow struct {
	Warehouse Warehouse `json:"warehouse"`
	BookID    uuid.UUID `json:"bookId"`
	BookTitle string    `json:"bookTitle"`
	ISBN      string    `json:"isbn,omitempty"`
	Quantity  int       `json:"quantity"`
	Reserved  int       `json:"reserved"`
	Threshold int       `json:"lowStockThreshold"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Available = Quantity - Reserved, never negative
func (r StockRow) Available() int {
	if r.Reserved >= r.Quantity {
		return 0
	}
	return r.Quantity - r.Reserved
}

// IsLowStock dùng ngưỡng của dòng, hoặc mặc định khi backend không trả
func (r StockRow) IsLowStock() bool {
	threshold := r.Threshold
	if threshold <= 0 {
		threshold = DefaultLowStockThreshold
	}
	return r.Available() <= threshold
}

// StockPage is one page of the stock search
type StockPage struct {
	Items []StockRow `json:"items"`
	Page  int        `json:"page"`
	Size  int        `json:"size"`
	Total int        `json:"total"`
}

// StockSearchRequest - GET /admin/warehouses/stock
type StockSearchRequest struct {
	Keyword       string `form:"keyword"`
	Province      string `form:"province"`
	WarehouseCode string `form:"warehouseCode"`
	LowStockOnly  bool   `form:"lowStockOnly"`
	Page          int    `form:"page"`
	Size          int    `form:"size"`
}

func (r StockSearchRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Keyword, validation.Length(0, 100)),
		validation.Field(&r.Province, validation.Length(0, 100)),
		validation.Field(&r.WarehouseCode, validation.Length(0, 20)),
	)
}

func (r *StockSearchRequest) Normalize() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Size < 1 || r.Size > MaxPageSize {
		r.Size = DefaultPageSize
	}
}
