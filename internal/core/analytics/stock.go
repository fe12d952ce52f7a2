package analytics

import (
	"github.com/SscSPs/shop_bookkeeping/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ValueStock computes the current per-product inventory from the full purchase
// and sale history. Quantity is purchased minus sold regardless of order, and
// remaining units are valued at the all-time weighted average purchase cost.
//
// Products whose quantity is zero or negative stay in Tracked but are left out
// of Lines and of the totals.
func ValueStock(purchases []domain.PurchaseRecord, sales []domain.SaleRecord) domain.StockValuation {
	lines := map[string]*domain.StockLine{}
	var order []string
	lineFor := func(product string) *domain.StockLine {
		l, ok := lines[product]
		if !ok {
			l = &domain.StockLine{
				Product:            product,
				TotalPurchaseValue: decimal.Zero,
				AverageCost:        decimal.Zero,
				CurrentValue:       decimal.Zero,
			}
			lines[product] = l
			order = append(order, product)
		}
		return l
	}

	for _, p := range live(purchases) {
		l := lineFor(p.Product)
		l.TotalPurchaseQuantity += p.Quantity
		l.TotalPurchaseValue = l.TotalPurchaseValue.Add(p.Total)
	}
	for _, l := range lines {
		l.Quantity = l.TotalPurchaseQuantity
		if l.TotalPurchaseQuantity > 0 {
			l.AverageCost = l.TotalPurchaseValue.Div(decimal.NewFromInt(l.TotalPurchaseQuantity))
		}
	}
	for _, s := range live(sales) {
		lineFor(s.Product).Quantity -= s.Quantity
	}

	out := domain.StockValuation{
		Lines:      []domain.StockLine{},
		Tracked:    make([]domain.StockLine, 0, len(order)),
		TotalValue: decimal.Zero,
	}
	for _, product := range order {
		l := lines[product]
		l.CurrentValue = l.AverageCost.Mul(decimal.NewFromInt(l.Quantity))
		out.Tracked = append(out.Tracked, *l)
		if l.Quantity <= 0 {
			continue
		}
		out.Lines = append(out.Lines, *l)
		out.TotalQuantity += l.Quantity
		out.TotalValue = out.TotalValue.Add(l.CurrentValue)
	}
	return out
}

// averageCosts returns the weighted average purchase cost per product.
func averageCosts(purchases []domain.PurchaseRecord) map[string]decimal.Decimal {
	qty := map[string]int64{}
	value := map[string]decimal.Decimal{}
	for _, p := range purchases {
		qty[p.Product] += p.Quantity
		value[p.Product] = value[p.Product].Add(p.Total)
	}
	costs := make(map[string]decimal.Decimal, len(qty))
	for product, q := range qty {
		if q > 0 {
			costs[product] = value[product].Div(decimal.NewFromInt(q))
		}
	}
	return costs
}
