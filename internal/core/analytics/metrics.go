package analytics

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/SscSPs/shop_bookkeeping/internal/apperrors"
	"github.com/SscSPs/shop_bookkeeping/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// COGSMethod selects how cost of goods sold is derived for a window.
type COGSMethod string

const (
	// COGSPurchases treats purchases made in the window as the cost of goods sold.
	COGSPurchases COGSMethod = "purchases"
	// COGSMatched values units sold in the window at their all-time weighted average cost.
	COGSMatched COGSMethod = "matched"
)

// ParseCOGSMethod validates a COGS method name. The empty string means COGSPurchases.
func ParseCOGSMethod(s string) (COGSMethod, error) {
	switch m := COGSMethod(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return COGSPurchases, nil
	case COGSPurchases, COGSMatched:
		return m, nil
	default:
		return "", fmt.Errorf("%w: unknown COGS method %q", apperrors.ErrValidation, s)
	}
}

// MetricsInput holds the records of one window.
type MetricsInput struct {
	Sales       []domain.SaleRecord
	Purchases   []domain.PurchaseRecord
	Expenses    []domain.ExpenseRecord
	Investments []domain.InvestmentRecord

	// PurchaseHistory is the unfiltered purchase history. Only COGSMatched reads it.
	PurchaseHistory []domain.PurchaseRecord
}

// ComputeMetrics reduces the records of a window into dashboard totals.
// Margins are zero when there are no sales.
func ComputeMetrics(in MetricsInput, method COGSMethod) domain.DashboardMetrics {
	sales := live(in.Sales)
	purchases := live(in.Purchases)
	expenses := live(in.Expenses)

	totalSales := decimal.Zero
	for _, s := range sales {
		totalSales = totalSales.Add(s.Total)
	}

	totalCOGS := decimal.Zero
	switch method {
	case COGSMatched:
		costs := averageCosts(live(in.PurchaseHistory))
		for _, s := range sales {
			totalCOGS = totalCOGS.Add(costs[s.Product].Mul(decimal.NewFromInt(s.Quantity)))
		}
	default:
		for _, p := range purchases {
			totalCOGS = totalCOGS.Add(p.Total)
		}
	}

	totalExpenses := decimal.Zero
	for _, e := range expenses {
		totalExpenses = totalExpenses.Add(e.Amount)
	}

	totalInvestments := decimal.Zero
	for _, i := range in.Investments {
		totalInvestments = totalInvestments.Add(i.Amount)
	}

	grossProfit := totalSales.Sub(totalCOGS)
	netProfit := grossProfit.Sub(totalExpenses)

	return domain.DashboardMetrics{
		TotalSales:             totalSales,
		TotalCOGS:              totalCOGS,
		GrossProfit:            grossProfit,
		TotalOperatingExpenses: totalExpenses,
		NetProfit:              netProfit,
		GrossMargin:            percentOf(grossProfit, totalSales),
		NetMargin:              percentOf(netProfit, totalSales),
		TotalInvestments:       totalInvestments,
		SalesCount:             len(sales),
		PurchasesCount:         len(purchases),
		ExpensesCount:          len(expenses),
	}
}

// percentOf returns part/whole×100, or zero when whole is zero.
func percentOf(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred)
}

// DefaultMarketingKeywords is used when no keywords are configured.
var DefaultMarketingKeywords = []string{"marketing", "advertising", "facebook", "instagram", "google ads"}

// MarketingMatcher classifies expense categories as marketing spend by
// case-insensitive substring match against a keyword list.
type MarketingMatcher struct {
	keywords []string
}

// NewMarketingMatcher builds a matcher. Blank keywords are ignored.
func NewMarketingMatcher(keywords ...string) MarketingMatcher {
	m := MarketingMatcher{}
	for _, k := range keywords {
		if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
			m.keywords = append(m.keywords, k)
		}
	}
	return m
}

// Matches reports whether the category counts as marketing.
func (m MarketingMatcher) Matches(category string) bool {
	c := strings.ToLower(category)
	for _, k := range m.keywords {
		if strings.Contains(c, k) {
			return true
		}
	}
	return false
}

// BreakdownExpenses groups expenses by category and derives the top category,
// marketing spend and the monthly average over the months the expenses span.
func BreakdownExpenses(expenses []domain.ExpenseRecord, matcher MarketingMatcher) domain.ExpenseBreakdown {
	expenses = live(expenses)

	totals := map[string]decimal.Decimal{}
	total := decimal.Zero
	var earliest, latest domain.Day
	for i, e := range expenses {
		name := strings.TrimSpace(e.Category)
		totals[name] = totals[name].Add(e.Amount)
		total = total.Add(e.Amount)
		if i == 0 || e.Date.Before(earliest) {
			earliest = e.Date
		}
		if i == 0 || e.Date.After(latest) {
			latest = e.Date
		}
	}

	out := domain.ExpenseBreakdown{
		Categories:     make([]domain.CategoryTotal, 0, len(totals)),
		TotalExpenses:  total,
		TopShare:       decimal.Zero,
		MarketingSpend: decimal.Zero,
		MonthlyAverage: decimal.Zero,
	}
	for name, sum := range totals {
		out.Categories = append(out.Categories, domain.CategoryTotal{
			Category: name,
			Total:    sum,
			Share:    percentOf(sum, total),
		})
		if matcher.Matches(name) {
			out.MarketingSpend = out.MarketingSpend.Add(sum)
		}
	}
	slices.SortFunc(out.Categories, func(a, b domain.CategoryTotal) int {
		if c := b.Total.Cmp(a.Total); c != 0 {
			return c
		}
		return cmp.Compare(a.Category, b.Category)
	})

	if len(out.Categories) > 0 {
		out.TopCategory = out.Categories[0].Category
		out.TopShare = out.Categories[0].Share
	}
	if len(expenses) > 0 {
		out.MonthsSpanned = earliest.MonthsUntil(latest) + 1
	}
	out.MonthlyAverage = total.Div(decimal.NewFromInt(int64(max(1, out.MonthsSpanned))))
	return out
}
