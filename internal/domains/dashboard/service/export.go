package service

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"bookstore-storefront/internal/domains/dashboard/model"
)

const (
	sheetSummary  = "Summary"
	sheetRevenue  = "Revenue"
	sheetTopBooks = "Top books"
	sheetLowStock = "Low stock"
)

func (s *dashboardService) ExportToExcel(ctx context.Context, req model.RangeRequest) (*excelize.File, *model.Overview, error) {
	// 1. Lấy dữ liệu dashboard
	overview, err := s.Overview(ctx, req)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load dashboard: %w", err)
	}

	// 2. Tạo file Excel bằng excelize
	f, err := buildDashboardExcelFile(overview)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build excel file: %w", err)
	}
	return f, overview, nil
}

func buildDashboardExcelFile(o *model.Overview) (*excelize.File, error) {
	f := excelize.NewFile()

	// Rename default sheet
	if err := f.SetSheetName("Sheet1", sheetSummary); err != nil {
		return nil, err
	}
	for _, name := range []string{sheetRevenue, sheetTopBooks, sheetLowStock} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, err
		}
	}

	// Optional: style header (bold)
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		headerStyle = 0
	}

	// Summary
	summary := [][]interface{}{
		{"Metric", "Value"},
		{"From", o.From},
		{"To", o.To},
		{"Revenue", o.KPIs.Revenue.InexactFloat64()},
		{"Orders", o.KPIs.Orders},
		{"Paid orders", o.KPIs.PaidOrders},
		{"Pending orders", o.KPIs.PendingOrders},
		{"New customers", o.KPIs.NewCustomers},
		{"Average order value", o.KPIs.AverageOrder.InexactFloat64()},
		{"Cancelled ratio", o.KPIs.CancelledRatio},
	}
	if err := writeRows(f, sheetSummary, summary, headerStyle); err != nil {
		return nil, err
	}

	// Revenue (decimal → float64)
	revenue := [][]interface{}{{"Date", "Revenue", "Orders"}}
	for _, p := range o.Revenue {
		revenue = append(revenue, []interface{}{p.Date, p.Revenue.InexactFloat64(), p.Orders})
	}
	if err := writeRows(f, sheetRevenue, revenue, headerStyle); err != nil {
		return nil, err
	}

	// Top books
	top := [][]interface{}{{"#", "Book ID", "Title", "Sold", "Revenue"}}
	for i, b := range o.TopBooks {
		top = append(top, []interface{}{i + 1, b.BookID.String(), b.Title, b.Sold, b.Revenue.InexactFloat64()})
	}
	if err := writeRows(f, sheetTopBooks, top, headerStyle); err != nil {
		return nil, err
	}

	// Low stock
	low := [][]interface{}{{"Warehouse", "Province", "Book", "ISBN", "Quantity", "Reserved", "Available"}}
	for _, r := range o.LowStock {
		low = append(low, []interface{}{r.Warehouse.Code, r.Warehouse.Province, r.BookTitle, r.ISBN, r.Quantity, r.Reserved, r.Available()})
	}
	if err := writeRows(f, sheetLowStock, low, headerStyle); err != nil {
		return nil, err
	}

	return f, nil
}

// writeRows writes rows from A1; row 1 is the header
func writeRows(f *excelize.File, sheet string, rows [][]interface{}, headerStyle int) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		r := row
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			return err
		}
	}

	if headerStyle != 0 && len(rows) > 0 {
		last, _ := excelize.CoordinatesToCellName(len(rows[0]), 1)
		if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
			return err
		}
	}
	return f.SetColWidth(sheet, "A", "G", 18)
}
