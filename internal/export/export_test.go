package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/shop_bookkeeping/internal/apperrors"
	"github.com/SscSPs/shop_bookkeeping/internal/core/domain"
	portssvc "github.com/SscSPs/shop_bookkeeping/internal/core/ports/services"
	"github.com/SscSPs/shop_bookkeeping/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestBuildDashboard(t *testing.T) {
	money, err := utils.NewCurrencyFormatter("USD")
	require.NoError(t, err)

	report := DashboardReport{
		GeneratedAt: time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC),
		Period:      "all",
		Metrics: domain.DashboardMetrics{
			TotalSales: dec("1000"), TotalCOGS: dec("400"), GrossProfit: dec("600"),
			TotalOperatingExpenses: dec("100"), NetProfit: dec("500"),
			GrossMargin: dec("60"), NetMargin: dec("50"), SalesCount: 1,
		},
		Expenses: domain.ExpenseBreakdown{
			Categories:    []domain.CategoryTotal{{Category: "Rent", Total: dec("100"), Share: dec("100")}},
			TotalExpenses: dec("100"),
		},
		Stock: domain.StockValuation{
			Lines:         []domain.StockLine{{Product: "A", TotalPurchaseQuantity: 10, TotalPurchaseValue: dec("50"), AverageCost: dec("5"), Quantity: 6, CurrentValue: dec("30")}},
			TotalQuantity: 6,
			TotalValue:    dec("30"),
		},
		Assets: domain.AssetPortfolio{
			Assets: []domain.AssetValuation{{
				Asset:        domain.AssetRecord{Name: "Shelf", PurchaseDate: domain.NewDay(2024, 1, 1), Cost: dec("100"), UsefulLifeYears: 3},
				Depreciation: domain.Depreciation{DepreciationPerMonth: dec("100").Div(dec("36")), MonthsElapsed: 6, AccumulatedDepreciation: dec("100").Div(dec("36")).Mul(dec("6"))},
			}},
			TotalCost: dec("100"),
		},
	}

	f, err := BuildDashboard(report, money)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SummarySheet, ExpensesSheet, StockSheet, AssetsSheet}, f.GetSheetList())

	cell := func(sheet, axis string) string {
		v, err := f.GetCellValue(sheet, axis)
		require.NoError(t, err)
		return v
	}
	assert.Equal(t, "USD", cell(SummarySheet, "B3"))
	assert.Equal(t, "1000", cell(SummarySheet, "B6"))
	assert.Equal(t, "500", cell(SummarySheet, "B10"))
	assert.Equal(t, "60", cell(SummarySheet, "B11"))
	assert.Equal(t, "Rent", cell(ExpensesSheet, "A2"))
	assert.Equal(t, "A", cell(StockSheet, "A2"))
	assert.Equal(t, "30", cell(StockSheet, "F2"))
	assert.Equal(t, "Total", cell(StockSheet, "A3"))
	// 100/36×6 = 16.666… rounds to 16.67; net book value keeps cost = accumulated + nbv
	assert.Equal(t, "16.67", cell(AssetsSheet, "G2"))
	assert.Equal(t, "83.33", cell(AssetsSheet, "H2"))
}

func TestWriteDashboard_ProducesReadableWorkbook(t *testing.T) {
	money, err := utils.NewCurrencyFormatter("INR")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteDashboard(&buf, DashboardReport{Period: "last-7-days"}, money))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()
	v, err := f.GetCellValue(SummarySheet, "B1")
	require.NoError(t, err)
	assert.Equal(t, "last-7-days", v)
}

func TestSnapshotRoundTrip(t *testing.T) {
	snap := &portssvc.Snapshot{
		Currency: "INR",
		Sales:    []domain.SaleRecord{{ID: "s1", Date: domain.NewDay(2024, 6, 1), Product: "A", Quantity: 1, Price: dec("5"), Total: dec("5")}},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteSnapshot(&buf, snap))

	got, err := ReadSnapshot(&buf)
	require.NoError(t, err)
	require.Len(t, got.Sales, 1)
	assert.Equal(t, "2024-06-01", got.Sales[0].Date.String())
	assert.True(t, got.Sales[0].Total.Equal(dec("5")))
}

func TestReadSnapshot_TimestampDatesAndErrors(t *testing.T) {
	in := `{"currency":"INR","expenses":[{"id":"e1","date":{"seconds":1717200000,"nanoseconds":0},"category":"Rent","amount":"10"}]}`
	got, err := ReadSnapshot(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, got.Expenses, 1)
	assert.Equal(t, "2024-06-01", got.Expenses[0].Date.String())

	_, err = ReadSnapshot(strings.NewReader(`{"sales":[{"date":"yesterday"}]}`))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestReadSnapshot_RejectsRecordsWithoutDates(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantMsg string
	}{
		{
			name:    "expense without date",
			in:      `{"expenses":[{"id":"e1","category":"Rent","amount":"1200"},{"id":"e2","date":"2024-03-10","category":"Rent","amount":"100"}]}`,
			wantMsg: `expenses[0] (id "e1")`,
		},
		{
			name:    "sale with null date",
			in:      `{"sales":[{"id":"s1","date":null,"product":"A","quantity":1,"price":"5","total":"5"}]}`,
			wantMsg: `sales[0] (id "s1")`,
		},
		{
			name:    "investment without date",
			in:      `{"investments":[{"id":"i1","investor":"Owner","amount":"500"}]}`,
			wantMsg: `investments[0] (id "i1")`,
		},
		{
			name:    "asset without purchase date",
			in:      `{"assets":[{"id":"a1","name":"Shelf","cost":"100","usefulLife":2}]}`,
			wantMsg: `assets[0] (id "a1")`,
		},
		{
			name:    "purchase with zero quantity",
			in:      `{"purchases":[{"id":"p1","date":"2024-01-01","product":"A","quantity":0,"price":"5"}]}`,
			wantMsg: `purchases[0] (id "p1")`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap, err := ReadSnapshot(strings.NewReader(tt.in))
			assert.Nil(t, snap)
			require.ErrorIs(t, err, apperrors.ErrValidation)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}
