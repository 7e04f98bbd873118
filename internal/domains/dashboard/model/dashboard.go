package model

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	warehousemodel "bookstore-storefront/internal/domains/warehouse/model"
)

const (
	DateLayout       = "2006-01-02"
	DefaultRangeDays = 30
	MaxRangeDays     = 366
	DefaultTopBooks  = 10
	MaxTopBooks      = 50
	LowStockRows     = 20
)

var ErrInvalidRange = errors.New("from must not be after to")

// KPIs for the selected range
type KPIs struct {
	Revenue        decimal.Decimal `json:"revenue"`
	Orders         int             `json:"orders"`
	PaidOrders     int             `json:"paidOrders"`
	NewCustomers   int             `json:"newCustomers"`
	PendingOrders  int             `json:"pendingOrders"`
	AverageOrder   decimal.Decimal `json:"averageOrderValue"`
	CancelledRatio float64         `json:"cancelledRatio"`
}

// RevenuePoint is one day of the revenue series
type RevenuePoint struct {
	Date    string          `json:"date"` // YYYY-MM-DD
	Revenue decimal.Decimal `json:"revenue"`
	Orders  int             `json:"orders"`
}

type TopBook struct {
	BookID  uuid.UUID       `json:"bookId"`
	Title   string          `json:"title"`
	Sold    int             `json:"sold"`
	Revenue decimal.Decimal `json:"revenue"`
}

// Overview is the admin dashboard
type Overview struct {
	From     string                    `json:"from"`
	To       string                    `json:"to"`
	KPIs     KPIs                      `json:"kpis"`
	Revenue  []RevenuePoint            `json:"revenue"`
	TopBooks []TopBook                 `json:"topBooks"`
	LowStock []warehousemodel.StockRow `json:"lowStock"`
}

// RangeRequest - query of GET /admin/dashboard
type RangeRequest struct {
	From  string `form:"from"` // YYYY-MM-DD
	To    string `form:"to"`
	Limit int    `form:"limit"`
}

func (r RangeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.From, validation.Date(DateLayout)),
		validation.Field(&r.To, validation.Date(DateLayout)),
		validation.Field(&r.Limit, validation.Min(0), validation.Max(MaxTopBooks)),
	)
}

// Resolve fills defaults relative to now: the last DefaultRangeDays days.
// Ranges longer than MaxRangeDays are cut from the start.
func (r RangeRequest) Resolve(now time.Time) (RangeRequest, error) {
	if err := r.Validate(); err != nil {
		return r, err
	}

	to := now
	if r.To != "" {
		to, _ = time.Parse(DateLayout, r.To)
	}
	from := to.AddDate(0, 0, -(DefaultRangeDays - 1))
	if r.From != "" {
		from, _ = time.Parse(DateLayout, r.From)
	}
	if from.After(to) {
		return r, ErrInvalidRange
	}
	if earliest := to.AddDate(0, 0, -(MaxRangeDays - 1)); from.Before(earliest) {
		from = earliest
	}

	out := RangeRequest{
		From:  from.Format(DateLayout),
		To:    to.Format(DateLayout),
		Limit: r.Limit,
	}
	if out.Limit == 0 {
		out.Limit = DefaultTopBooks
	}
	return out, nil
}
