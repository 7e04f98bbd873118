package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"

	"bookstore-storefront/internal/domains/dashboard/model"
	"bookstore-storefront/internal/domains/dashboard/repository"
	warehousemodel "bookstore-storefront/internal/domains/warehouse/model"
	"bookstore-storefront/pkg/logger"
)

// StockReader is the part of the warehouse service the dashboard shows
type StockReader interface {
	LowStock(ctx context.Context, limit int) ([]warehousemodel.StockRow, error)
}

type ServiceInterface interface {
	// Overview loads all dashboard sections concurrently; any failure fails the call
	Overview(ctx context.Context, req model.RangeRequest) (*model.Overview, error)

	// ExportToExcel renders the overview as an xlsx workbook
	ExportToExcel(ctx context.Context, req model.RangeRequest) (*excelize.File, *model.Overview, error)
}

type dashboardService struct {
	repo  repository.RepositoryInterface
	stock StockReader
	now   func() time.Time
}

func NewDashboardService(repo repository.RepositoryInterface, stock StockReader) ServiceInterface {
	return &dashboardService{
		repo:  repo,
		stock: stock,
		now:   time.Now,
	}
}

func (s *dashboardService) Overview(ctx context.Context, req model.RangeRequest) (*model.Overview, error) {
	r, err := req.Resolve(s.now())
	if err != nil {
		return nil, err
	}

	var (
		kpis     *model.KPIs
		revenue  []model.RevenuePoint
		topBooks []model.TopBook
		lowStock []warehousemodel.StockRow
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		kpis, err = s.repo.KPIs(gctx, r)
		if err != nil {
			return fmt.Errorf("kpis: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		revenue, err = s.repo.Revenue(gctx, r)
		if err != nil {
			return fmt.Errorf("revenue: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		topBooks, err = s.repo.TopBooks(gctx, r)
		if err != nil {
			return fmt.Errorf("top books: %w", err)
		}
		return nil
	})
	if s.stock != nil {
		g.Go(func() error {
			var err error
			lowStock, err = s.stock.LowStock(gctx, model.LowStockRows)
			if err != nil {
				return fmt.Errorf("low stock: %w", err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error("Failed to load dashboard", err)
		return nil, err
	}

	overview := &model.Overview{
		From:     r.From,
		To:       r.To,
		KPIs:     *kpis,
		Revenue:  fillDays(r, revenue),
		TopBooks: topBooks,
		LowStock: lowStock,
	}
	if overview.TopBooks == nil {
		overview.TopBooks = []model.TopBook{}
	}
	if overview.LowStock == nil {
		overview.LowStock = []warehousemodel.StockRow{}
	}
	if overview.KPIs.AverageOrder.IsZero() && overview.KPIs.PaidOrders > 0 {
		overview.KPIs.AverageOrder = overview.KPIs.Revenue.Div(decimal.NewFromInt(int64(overview.KPIs.PaidOrders))).Round(0)
	}
	return overview, nil
}

// fillDays returns one point per day of the range; days the backend
// skipped have zero revenue
func fillDays(r model.RangeRequest, points []model.RevenuePoint) []model.RevenuePoint {
	from, _ := time.Parse(model.DateLayout, r.From)
	to, _ := time.Parse(model.DateLayout, r.To)

	byDate := make(map[string]model.RevenuePoint, len(points))
	for _, p := range points {
		byDate[p.Date] = p
	}

	out := make([]model.RevenuePoint, 0, int(to.Sub(from).Hours()/24)+1)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		key := d.Format(model.DateLayout)
		p, ok := byDate[key]
		if !ok {
			p = model.RevenuePoint{Date: key, Revenue: decimal.Zero}
		}
		out = append(out, p)
	}
	return out
}
