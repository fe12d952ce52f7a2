// Package export renders dashboard figures and raw records for download.
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/SscSPs/shop_bookkeeping/internal/core/domain"
	"github.com/SscSPs/shop_bookkeeping/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// XLSXContentType is the MIME type of the dashboard workbook.
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Sheet names of the dashboard workbook.
const (
	SummarySheet  = "Summary"
	ExpensesSheet = "Expenses"
	StockSheet    = "Stock"
	AssetsSheet   = "Assets"
)

// DashboardReport is everything the dashboard workbook shows.
type DashboardReport struct {
	GeneratedAt time.Time
	Period      string // human readable window, e.g. "2024-06-01 to 2024-06-30"
	Metrics     domain.DashboardMetrics
	Expenses    domain.ExpenseBreakdown
	Stock       domain.StockValuation
	Assets      domain.AssetPortfolio
}

type sheetWriter struct {
	f     *excelize.File
	money *utils.CurrencyFormatter
	bold  int
	err   error
}

// row writes values starting at column A of the given row. The first error sticks.
func (w *sheetWriter) row(sheet string, row int, values ...any) {
	if w.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		w.err = err
		return
	}
	w.err = w.f.SetSheetRow(sheet, cell, &values)
}

func (w *sheetWriter) header(sheet string, row int, titles ...any) {
	w.row(sheet, row, titles...)
	if w.err != nil {
		return
	}
	from, _ := excelize.CoordinatesToCellName(1, row)
	to, _ := excelize.CoordinatesToCellName(len(titles), row)
	w.err = w.f.SetCellStyle(sheet, from, to, w.bold)
}

// amount rounds to the currency's minor unit and returns a number cells can sum.
func (w *sheetWriter) amount(d decimal.Decimal) float64 {
	return w.money.Round(d).InexactFloat64()
}

func pct(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

// BuildDashboard lays the report out over four sheets.
func BuildDashboard(r DashboardReport, money *utils.CurrencyFormatter) (*excelize.File, error) {
	f := excelize.NewFile()
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		f.Close()
		return nil, err
	}
	for _, name := range []string{ExpensesSheet, StockSheet, AssetsSheet} {
		if _, err := f.NewSheet(name); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to add sheet %s: %w", name, err)
		}
	}

	w := &sheetWriter{f: f, money: money, bold: bold}
	writeSummary(w, r)
	writeExpenses(w, r.Expenses)
	writeStock(w, r.Stock)
	writeAssets(w, r.Assets)
	if w.err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to fill dashboard workbook: %w", w.err)
	}

	_ = f.SetColWidth(SummarySheet, "A", "A", 28)
	_ = f.SetColWidth(ExpensesSheet, "A", "A", 24)
	_ = f.SetColWidth(StockSheet, "A", "A", 24)
	_ = f.SetColWidth(AssetsSheet, "A", "A", 24)
	f.SetActiveSheet(0)
	return f, nil
}

// WriteDashboard builds the workbook and streams it to out.
func WriteDashboard(out io.Writer, r DashboardReport, money *utils.CurrencyFormatter) error {
	f, err := BuildDashboard(r, money)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.Write(out); err != nil {
		return fmt.Errorf("failed to write dashboard workbook: %w", err)
	}
	return nil
}

func writeSummary(w *sheetWriter, r DashboardReport) {
	m := r.Metrics
	s := SummarySheet
	w.header(s, 1, "Dashboard", r.Period)
	w.row(s, 2, "Generated at", r.GeneratedAt.UTC().Format(time.RFC3339))
	w.row(s, 3, "Currency", w.money.Code())

	w.header(s, 5, "Metric", "Value")
	w.row(s, 6, "Total sales", w.amount(m.TotalSales))
	w.row(s, 7, "Cost of goods sold", w.amount(m.TotalCOGS))
	w.row(s, 8, "Gross profit", w.amount(m.GrossProfit))
	w.row(s, 9, "Operating expenses", w.amount(m.TotalOperatingExpenses))
	w.row(s, 10, "Net profit", w.amount(m.NetProfit))
	w.row(s, 11, "Gross margin %", pct(m.GrossMargin))
	w.row(s, 12, "Net margin %", pct(m.NetMargin))
	w.row(s, 13, "Investments", w.amount(m.TotalInvestments))
	w.row(s, 14, "Sales", m.SalesCount)
	w.row(s, 15, "Purchases", m.PurchasesCount)
	w.row(s, 16, "Expenses", m.ExpensesCount)
}

func writeExpenses(w *sheetWriter, b domain.ExpenseBreakdown) {
	s := ExpensesSheet
	w.header(s, 1, "Category", "Total", "Share %")
	row := 2
	for _, c := range b.Categories {
		w.row(s, row, c.Category, w.amount(c.Total), pct(c.Share))
		row++
	}
	row++
	w.row(s, row, "Total expenses", w.amount(b.TotalExpenses))
	w.row(s, row+1, "Marketing spend", w.amount(b.MarketingSpend))
	w.row(s, row+2, "Months spanned", b.MonthsSpanned)
	w.row(s, row+3, "Monthly average", w.amount(b.MonthlyAverage))
}

func writeStock(w *sheetWriter, v domain.StockValuation) {
	s := StockSheet
	w.header(s, 1, "Product", "Purchased", "Purchase value", "Average cost", "In stock", "Current value")
	row := 2
	for _, l := range v.Lines {
		w.row(s, row, l.Product, l.TotalPurchaseQuantity, w.amount(l.TotalPurchaseValue),
			w.amount(l.AverageCost), l.Quantity, w.amount(l.CurrentValue))
		row++
	}
	w.header(s, row, "Total", "", "", "", v.TotalQuantity, w.amount(v.TotalValue))
}

func writeAssets(w *sheetWriter, p domain.AssetPortfolio) {
	s := AssetsSheet
	w.header(s, 1, "Asset", "Purchased", "Cost", "Useful life (years)", "Per month", "Months elapsed", "Accumulated", "Net book value")
	row := 2
	for _, a := range p.Assets {
		d := a.Depreciation
		accumulated := w.money.Round(d.AccumulatedDepreciation)
		w.row(s, row, a.Asset.Name, a.Asset.PurchaseDate.String(), w.amount(a.Asset.Cost), a.Asset.UsefulLifeYears,
			w.amount(d.DepreciationPerMonth), d.MonthsElapsed, accumulated.InexactFloat64(),
			a.Asset.Cost.Sub(accumulated).InexactFloat64())
		row++
	}
	w.header(s, row, "Total", "", w.amount(p.TotalCost), "", w.amount(p.MonthlyDepreciationRate), "",
		w.amount(p.TotalAccumulated), w.amount(p.TotalNetBookValue))
}
