package dto

import (
	"github.com/SscSPs/shop_bookkeeping/internal/core/analytics"
	"github.com/SscSPs/shop_bookkeeping/internal/core/domain"
	"github.com/SscSPs/shop_bookkeeping/internal/utils"
	"github.com/shopspring/decimal"
)

// percentPrecision is the number of decimals kept on margins and shares.
const percentPrecision = 2

// RangeQuery holds the date window query parameters shared by list and dashboard endpoints.
type RangeQuery struct {
	Range    string `form:"range"`    // all, last-7-days, last-1-month, last-3-months
	FromDate string `form:"fromDate"` // YYYY-MM-DD, needs ToDate
	ToDate   string `form:"toDate"`   // YYYY-MM-DD, needs FromDate
}

// Window parses the query into an analytics window.
func (q RangeQuery) Window() (analytics.Window, error) {
	preset, err := analytics.ParsePreset(q.Range)
	if err != nil {
		return analytics.Window{}, err
	}
	w := analytics.Window{Preset: preset}
	if q.FromDate != "" {
		from, err := domain.ParseDay(q.FromDate)
		if err != nil {
			return analytics.Window{}, err
		}
		w.From = &from
	}
	if q.ToDate != "" {
		to, err := domain.ParseDay(q.ToDate)
		if err != nil {
			return analytics.Window{}, err
		}
		w.To = &to
	}
	return w, nil
}

// DashboardQuery adds the request generation to the window parameters.
// Generation 0 turns the stale-request check off.
type DashboardQuery struct {
	RangeQuery
	Generation uint64 `form:"generation"`
}

// MetricsResponse is the dashboard headline figures.
type MetricsResponse struct {
	Generation uint64                  `json:"generation,omitempty"`
	Currency   string                  `json:"currency"`
	Metrics    domain.DashboardMetrics `json:"metrics"`
	Display    map[string]string       `json:"display"`
}

// ToMetricsResponse rounds the metrics for the wire and adds formatted strings.
func ToMetricsResponse(m domain.DashboardMetrics, f *utils.CurrencyFormatter, generation uint64) MetricsResponse {
	rounded := domain.DashboardMetrics{
		TotalSales:             f.Round(m.TotalSales),
		TotalCOGS:              f.Round(m.TotalCOGS),
		GrossProfit:            f.Round(m.GrossProfit),
		TotalOperatingExpenses: f.Round(m.TotalOperatingExpenses),
		NetProfit:              f.Round(m.NetProfit),
		GrossMargin:            m.GrossMargin.Round(percentPrecision),
		NetMargin:              m.NetMargin.Round(percentPrecision),
		TotalInvestments:       f.Round(m.TotalInvestments),
		SalesCount:             m.SalesCount,
		PurchasesCount:         m.PurchasesCount,
		ExpensesCount:          m.ExpensesCount,
	}
	return MetricsResponse{
		Generation: generation,
		Currency:   f.Code(),
		Metrics:    rounded,
		Display: map[string]string{
			"totalSales":             f.Format(m.TotalSales),
			"totalCOGS":              f.Format(m.TotalCOGS),
			"grossProfit":            f.Format(m.GrossProfit),
			"totalOperatingExpenses": f.Format(m.TotalOperatingExpenses),
			"netProfit":              f.Format(m.NetProfit),
			"totalInvestments":       f.Format(m.TotalInvestments),
			"grossMargin":            percent(m.GrossMargin),
			"netMargin":              percent(m.NetMargin),
		},
	}
}

// ExpenseBreakdownResponse is the per-category expense view.
type ExpenseBreakdownResponse struct {
	Generation uint64                  `json:"generation,omitempty"`
	Currency   string                  `json:"currency"`
	Breakdown  domain.ExpenseBreakdown `json:"breakdown"`
}

// ToExpenseBreakdownResponse rounds the breakdown for the wire.
func ToExpenseBreakdownResponse(b domain.ExpenseBreakdown, f *utils.CurrencyFormatter, generation uint64) ExpenseBreakdownResponse {
	out := domain.ExpenseBreakdown{
		Categories:     make([]domain.CategoryTotal, len(b.Categories)),
		TotalExpenses:  f.Round(b.TotalExpenses),
		TopCategory:    b.TopCategory,
		TopShare:       b.TopShare.Round(percentPrecision),
		MarketingSpend: f.Round(b.MarketingSpend),
		MonthsSpanned:  b.MonthsSpanned,
		MonthlyAverage: f.Round(b.MonthlyAverage),
	}
	for i, c := range b.Categories {
		out.Categories[i] = domain.CategoryTotal{
			Category: c.Category,
			Total:    f.Round(c.Total),
			Share:    c.Share.Round(percentPrecision),
		}
	}
	return ExpenseBreakdownResponse{Generation: generation, Currency: f.Code(), Breakdown: out}
}

// StockResponse is the current inventory valuation.
type StockResponse struct {
	Generation    uint64             `json:"generation,omitempty"`
	Currency      string             `json:"currency"`
	Lines         []domain.StockLine `json:"lines"`
	TotalQuantity int64              `json:"totalQuantity"`
	TotalValue    decimal.Decimal    `json:"totalValue"`
	Display       string             `json:"display"`
}

// ToStockResponse rounds the valuation for the wire.
func ToStockResponse(v domain.StockValuation, f *utils.CurrencyFormatter, generation uint64) StockResponse {
	lines := make([]domain.StockLine, len(v.Lines))
	for i, l := range v.Lines {
		lines[i] = domain.StockLine{
			Product:               l.Product,
			TotalPurchaseQuantity: l.TotalPurchaseQuantity,
			TotalPurchaseValue:    f.Round(l.TotalPurchaseValue),
			AverageCost:           f.Round(l.AverageCost),
			Quantity:              l.Quantity,
			CurrentValue:          f.Round(l.CurrentValue),
		}
	}
	return StockResponse{
		Generation:    generation,
		Currency:      f.Code(),
		Lines:         lines,
		TotalQuantity: v.TotalQuantity,
		TotalValue:    f.Round(v.TotalValue),
		Display:       f.Format(v.TotalValue),
	}
}

// AssetPortfolioResponse is every asset with its depreciation plus totals.
type AssetPortfolioResponse struct {
	Generation              uint64          `json:"generation,omitempty"`
	Currency                string          `json:"currency"`
	Assets                  []AssetResponse `json:"assets"`
	TotalCost               decimal.Decimal `json:"totalCost"`
	TotalAccumulated        decimal.Decimal `json:"totalAccumulated"`
	TotalNetBookValue       decimal.Decimal `json:"totalNetBookValue"`
	MonthlyDepreciationRate decimal.Decimal `json:"monthlyDepreciationRate"`
}

// ToAssetPortfolioResponse rounds the portfolio for the wire.
func ToAssetPortfolioResponse(p domain.AssetPortfolio, f *utils.CurrencyFormatter, generation uint64) AssetPortfolioResponse {
	assets := make([]AssetResponse, len(p.Assets))
	for i, v := range p.Assets {
		d := v.Depreciation
		d.DepreciationPerMonth = f.Round(d.DepreciationPerMonth)
		d.AccumulatedDepreciation = f.Round(d.AccumulatedDepreciation)
		d.NetBookValue = v.Asset.Cost.Sub(d.AccumulatedDepreciation)
		assets[i] = AssetResponse{AssetRecord: v.Asset, Depreciation: d}
	}
	return AssetPortfolioResponse{
		Generation:              generation,
		Currency:                f.Code(),
		Assets:                  assets,
		TotalCost:               f.Round(p.TotalCost),
		TotalAccumulated:        f.Round(p.TotalAccumulated),
		TotalNetBookValue:       f.Round(p.TotalNetBookValue),
		MonthlyDepreciationRate: f.Round(p.MonthlyDepreciationRate),
	}
}

func percent(d decimal.Decimal) string {
	return utils.FormatWithPrecision(d, percentPrecision) + "%"
}
