package analytics

import (
	"testing"

	"github.com/SscSPs/shop_bookkeeping/internal/apperrors"
	"github.com/SscSPs/shop_bookkeeping/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// assertDecimal compares by value so 60 and 60.00 are equal.
func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.Truef(t, dec(want).Equal(got), "want %s, got %s %v", want, got.String(), msgAndArgs)
}

func purchase(id, date, product string, qty int64, price string) domain.PurchaseRecord {
	p := dec(price)
	return domain.PurchaseRecord{ID: id, Date: day(date), Product: product, Quantity: qty, Price: p, Total: p.Mul(decimal.NewFromInt(qty))}
}

func expense(id, date, category, amount string) domain.ExpenseRecord {
	return domain.ExpenseRecord{ID: id, Date: day(date), Category: category, Amount: dec(amount)}
}

func TestComputeMetrics_ProfitAndMargins(t *testing.T) {
	in := MetricsInput{
		Sales:       []domain.SaleRecord{sale("s1", "2024-01-02", "watch", 10, "100")},
		Purchases:   []domain.PurchaseRecord{purchase("p1", "2024-01-01", "watch", 8, "50")},
		Expenses:    []domain.ExpenseRecord{expense("e1", "2024-01-03", "Rent", "100")},
		Investments: []domain.InvestmentRecord{{ID: "i1", Date: day("2024-01-01"), Investor: "Owner", Amount: dec("5000")}},
	}

	m := ComputeMetrics(in, COGSPurchases)

	assertDecimal(t, "1000", m.TotalSales)
	assertDecimal(t, "400", m.TotalCOGS)
	assertDecimal(t, "600", m.GrossProfit)
	assertDecimal(t, "100", m.TotalOperatingExpenses)
	assertDecimal(t, "500", m.NetProfit)
	assertDecimal(t, "60", m.GrossMargin)
	assertDecimal(t, "50", m.NetMargin)
	assertDecimal(t, "5000", m.TotalInvestments)
	assert.Equal(t, 1, m.SalesCount)
	assert.Equal(t, 1, m.PurchasesCount)
	assert.Equal(t, 1, m.ExpensesCount)
}

func TestComputeMetrics_ZeroSalesHasZeroMargins(t *testing.T) {
	in := MetricsInput{
		Purchases: []domain.PurchaseRecord{purchase("p1", "2024-01-01", "watch", 2, "50")},
		Expenses:  []domain.ExpenseRecord{expense("e1", "2024-01-03", "Rent", "30")},
	}

	m := ComputeMetrics(in, COGSPurchases)

	assertDecimal(t, "0", m.TotalSales)
	assertDecimal(t, "-100", m.GrossProfit)
	assertDecimal(t, "-130", m.NetProfit)
	assertDecimal(t, "0", m.GrossMargin)
	assertDecimal(t, "0", m.NetMargin)
}

func TestComputeMetrics_EmptyInput(t *testing.T) {
	m := ComputeMetrics(MetricsInput{}, COGSPurchases)
	assertDecimal(t, "0", m.TotalSales)
	assertDecimal(t, "0", m.NetProfit)
	assertDecimal(t, "0", m.GrossMargin)
	assert.Zero(t, m.SalesCount)
}

func TestComputeMetrics_SkipsDeleted(t *testing.T) {
	gone := sale("s2", "2024-01-02", "watch", 1, "999")
	gone.IsDeleted = true
	in := MetricsInput{Sales: []domain.SaleRecord{sale("s1", "2024-01-02", "watch", 1, "100"), gone}}

	m := ComputeMetrics(in, COGSPurchases)
	assertDecimal(t, "100", m.TotalSales)
	assert.Equal(t, 1, m.SalesCount)
}

func TestComputeMetrics_MatchedCOGS(t *testing.T) {
	history := []domain.PurchaseRecord{
		purchase("p1", "2023-06-01", "watch", 4, "10"),
		purchase("p2", "2023-07-01", "watch", 6, "20"),
		purchase("p3", "2024-01-01", "strap", 10, "2"),
	}
	in := MetricsInput{
		Sales: []domain.SaleRecord{
			sale("s1", "2024-01-05", "watch", 2, "40"),
			sale("s2", "2024-01-06", "strap", 3, "5"),
			sale("s3", "2024-01-07", "ghost", 1, "7"),
		},
		Purchases:       history[2:],
		PurchaseHistory: history,
	}

	m := ComputeMetrics(in, COGSMatched)

	// watch avg cost (40+120)/10 = 16, strap avg 2, ghost was never purchased
	assertDecimal(t, "38", m.TotalCOGS)
	assertDecimal(t, "102", m.TotalSales)
	assertDecimal(t, "64", m.GrossProfit)
	assert.Equal(t, 1, m.PurchasesCount)
}

func TestParseCOGSMethod(t *testing.T) {
	m, err := ParseCOGSMethod("")
	require.NoError(t, err)
	assert.Equal(t, COGSPurchases, m)

	m, err = ParseCOGSMethod(" Matched ")
	require.NoError(t, err)
	assert.Equal(t, COGSMatched, m)

	_, err = ParseCOGSMethod("fifo")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestMarketingMatcher(t *testing.T) {
	m := NewMarketingMatcher(DefaultMarketingKeywords...)

	tests := []struct {
		category string
		want     bool
	}{
		{"Marketing", true},
		{"Facebook Ads", true},
		{"INSTAGRAM promo", true},
		{"google ads", true},
		{"Rent", false},
		{"Google Workspace", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, m.Matches(tt.category), tt.category)
	}

	assert.False(t, NewMarketingMatcher("", "  ").Matches("anything"))
}

func TestBreakdownExpenses(t *testing.T) {
	expenses := []domain.ExpenseRecord{
		expense("e1", "2024-01-10", "Rent", "500"),
		expense("e2", "2024-02-10", "Facebook Ads", "150"),
		expense("e3", "2024-03-05", "Packaging", "150"),
		expense("e4", "2024-03-20", "Rent", "200"),
	}

	b := BreakdownExpenses(expenses, NewMarketingMatcher(DefaultMarketingKeywords...))

	require.Len(t, b.Categories, 3)
	assert.Equal(t, "Rent", b.Categories[0].Category)
	assertDecimal(t, "700", b.Categories[0].Total)
	// ties are ordered by name
	assert.Equal(t, "Facebook Ads", b.Categories[1].Category)
	assert.Equal(t, "Packaging", b.Categories[2].Category)

	assertDecimal(t, "1000", b.TotalExpenses)
	assert.Equal(t, "Rent", b.TopCategory)
	assertDecimal(t, "70", b.TopShare)
	assertDecimal(t, "150", b.MarketingSpend)
	assert.Equal(t, 3, b.MonthsSpanned)
	assertDecimal(t, dec("1000").Div(dec("3")).String(), b.MonthlyAverage)
}

func TestBreakdownExpenses_SingleMonthAndEmpty(t *testing.T) {
	b := BreakdownExpenses([]domain.ExpenseRecord{
		expense("e1", "2024-05-01", "Rent", "300"),
		expense("e2", "2024-05-31", "Rent", "100"),
	}, NewMarketingMatcher())
	assert.Equal(t, 1, b.MonthsSpanned)
	assertDecimal(t, "400", b.MonthlyAverage)
	assertDecimal(t, "0", b.MarketingSpend)

	empty := BreakdownExpenses(nil, NewMarketingMatcher())
	assert.Empty(t, empty.Categories)
	assert.Equal(t, "", empty.TopCategory)
	assert.Equal(t, 0, empty.MonthsSpanned)
	assertDecimal(t, "0", empty.MonthlyAverage)
	assertDecimal(t, "0", empty.TopShare)
}

func TestBreakdownExpenses_SpanAcrossYears(t *testing.T) {
	b := BreakdownExpenses([]domain.ExpenseRecord{
		expense("e1", "2023-11-30", "Rent", "100"),
		expense("e2", "2024-02-01", "Rent", "300"),
	}, NewMarketingMatcher())
	assert.Equal(t, 4, b.MonthsSpanned)
	assertDecimal(t, "100", b.MonthlyAverage)
}
