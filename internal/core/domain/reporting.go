package domain

import (
	"github.com/shopspring/decimal"
)

// DashboardMetrics summarizes a date window.
type DashboardMetrics struct {
	TotalSales             decimal.Decimal `json:"totalSales"`
	TotalCOGS              decimal.Decimal `json:"totalCOGS"`
	GrossProfit            decimal.Decimal `json:"grossProfit"`
	TotalOperatingExpenses decimal.Decimal `json:"totalOperatingExpenses"`
	NetProfit              decimal.Decimal `json:"netProfit"`
	GrossMargin            decimal.Decimal `json:"grossMargin"` // percent
	NetMargin              decimal.Decimal `json:"netMargin"`   // percent
	TotalInvestments       decimal.Decimal `json:"totalInvestments"`
	SalesCount             int             `json:"salesCount"`
	PurchasesCount         int             `json:"purchasesCount"`
	ExpensesCount          int             `json:"expensesCount"`
}

// CategoryTotal is the summed spend of one expense category.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Share    decimal.Decimal `json:"share"` // percent of total expenses
}

// ExpenseBreakdown groups the expenses of a window by category.
type ExpenseBreakdown struct {
	Categories     []CategoryTotal `json:"categories"` // highest spend first
	TotalExpenses  decimal.Decimal `json:"totalExpenses"`
	TopCategory    string          `json:"topCategory"`
	TopShare       decimal.Decimal `json:"topShare"`
	MarketingSpend decimal.Decimal `json:"marketingSpend"`
	MonthsSpanned  int             `json:"monthsSpanned"`
	MonthlyAverage decimal.Decimal `json:"monthlyAverage"`
}

// StockLine is the running balance of one product.
type StockLine struct {
	Product               string          `json:"product"`
	TotalPurchaseQuantity int64           `json:"totalPurchaseQuantity"`
	TotalPurchaseValue    decimal.Decimal `json:"totalPurchaseValue"`
	AverageCost           decimal.Decimal `json:"averageCost"`
	Quantity              int64           `json:"quantity"`
	CurrentValue          decimal.Decimal `json:"currentValue"`
}

// StockValuation is the point-in-time inventory value.
// Lines only holds products with a positive quantity; Tracked holds every product.
type StockValuation struct {
	Lines         []StockLine     `json:"lines"`
	Tracked       []StockLine     `json:"-"`
	TotalQuantity int64           `json:"totalQuantity"`
	TotalValue    decimal.Decimal `json:"totalValue"`
}

// Depreciation is the straight-line position of an asset on a given day.
type Depreciation struct {
	DepreciationPerMonth    decimal.Decimal `json:"depreciationPerMonth"`
	MonthsElapsed           int             `json:"monthsElapsed"`
	RemainingMonths         int             `json:"remainingMonths"`
	AccumulatedDepreciation decimal.Decimal `json:"accumulatedDepreciation"`
	NetBookValue            decimal.Decimal `json:"netBookValue"`
	FullyDepreciated        bool            `json:"fullyDepreciated"`
}

// AssetValuation pairs an asset with its derived depreciation.
type AssetValuation struct {
	Asset        AssetRecord  `json:"asset"`
	Depreciation Depreciation `json:"depreciation"`
}

// AssetPortfolio totals the depreciation of all assets.
type AssetPortfolio struct {
	Assets                  []AssetValuation `json:"assets"`
	TotalCost               decimal.Decimal  `json:"totalCost"`
	TotalAccumulated        decimal.Decimal  `json:"totalAccumulated"`
	TotalNetBookValue       decimal.Decimal  `json:"totalNetBookValue"`
	MonthlyDepreciationRate decimal.Decimal  `json:"monthlyDepreciationRate"` // sum over assets still depreciating
}
