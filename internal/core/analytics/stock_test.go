package analytics

import (
	"testing"

	"github.com/SscSPs/shop_bookkeeping/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueStock_WeightedAverage(t *testing.T) {
	purchases := []domain.PurchaseRecord{
		purchase("p1", "2024-01-01", "A", 5, "4"),
		purchase("p2", "2024-01-10", "A", 5, "6"),
	}
	sales := []domain.SaleRecord{sale("s1", "2024-01-15", "A", 4, "12")}

	v := ValueStock(purchases, sales)

	require.Len(t, v.Lines, 1)
	l := v.Lines[0]
	assert.Equal(t, "A", l.Product)
	assert.Equal(t, int64(10), l.TotalPurchaseQuantity)
	assertDecimal(t, "50", l.TotalPurchaseValue)
	assertDecimal(t, "5", l.AverageCost)
	assert.Equal(t, int64(6), l.Quantity)
	assertDecimal(t, "30", l.CurrentValue)
	assert.Equal(t, int64(6), v.TotalQuantity)
	assertDecimal(t, "30", v.TotalValue)
}

func TestValueStock_HidesSoldOutAndOversold(t *testing.T) {
	purchases := []domain.PurchaseRecord{
		purchase("p1", "2024-01-01", "sold-out", 2, "10"),
		purchase("p2", "2024-01-02", "oversold", 1, "10"),
		purchase("p3", "2024-01-03", "in-stock", 3, "7"),
	}
	sales := []domain.SaleRecord{
		sale("s1", "2024-01-04", "sold-out", 2, "20"),
		sale("s2", "2024-01-05", "oversold", 3, "20"),
		sale("s3", "2024-01-06", "never-bought", 1, "20"),
	}

	v := ValueStock(purchases, sales)

	require.Len(t, v.Lines, 1)
	assert.Equal(t, "in-stock", v.Lines[0].Product)
	assert.Equal(t, int64(3), v.TotalQuantity)
	assertDecimal(t, "21", v.TotalValue)

	require.Len(t, v.Tracked, 4)
	assert.Equal(t, int64(0), v.Tracked[0].Quantity)
	assert.Equal(t, int64(-2), v.Tracked[1].Quantity)
	assert.Equal(t, "never-bought", v.Tracked[3].Product)
	assertDecimal(t, "0", v.Tracked[3].AverageCost)
}

func TestValueStock_OrderIndependentOfDates(t *testing.T) {
	// a sale dated before the purchase still reduces the balance
	purchases := []domain.PurchaseRecord{purchase("p1", "2024-02-01", "A", 4, "3")}
	sales := []domain.SaleRecord{sale("s1", "2024-01-01", "A", 1, "9")}

	v := ValueStock(purchases, sales)
	require.Len(t, v.Lines, 1)
	assert.Equal(t, int64(3), v.Lines[0].Quantity)
	assertDecimal(t, "9", v.TotalValue)
}

func TestValueStock_FirstPurchaseOrderAndDeleted(t *testing.T) {
	deleted := purchase("p0", "2024-01-01", "A", 100, "1")
	deleted.IsDeleted = true
	purchases := []domain.PurchaseRecord{
		purchase("p1", "2024-01-03", "B", 1, "2"),
		deleted,
		purchase("p2", "2024-01-04", "A", 2, "2"),
		purchase("p3", "2024-01-05", "B", 1, "4"),
	}

	v := ValueStock(purchases, nil)

	require.Len(t, v.Lines, 2)
	assert.Equal(t, "B", v.Lines[0].Product)
	assertDecimal(t, "3", v.Lines[0].AverageCost)
	assert.Equal(t, "A", v.Lines[1].Product)
	assert.Equal(t, int64(2), v.Lines[1].Quantity)
}

func TestValueStock_Empty(t *testing.T) {
	v := ValueStock(nil, nil)
	assert.NotNil(t, v.Lines)
	assert.Empty(t, v.Lines)
	assert.Zero(t, v.TotalQuantity)
	assertDecimal(t, "0", v.TotalValue)
}
