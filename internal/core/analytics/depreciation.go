package analytics

import (
	"github.com/SscSPs/shop_bookkeeping/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Depreciate computes the straight-line depreciation of an asset as of today.
// Months are counted by calendar year and month only, and accumulated
// depreciation never exceeds the cost.
func Depreciate(asset domain.AssetRecord, today domain.Day) domain.Depreciation {
	lifeMonths := asset.UsefulLifeYears * 12
	if lifeMonths <= 0 {
		// Validation keeps this from being persisted; treat it as fully written off.
		return domain.Depreciation{
			DepreciationPerMonth:    decimal.Zero,
			AccumulatedDepreciation: asset.Cost,
			NetBookValue:            decimal.Zero,
			FullyDepreciated:        true,
		}
	}

	elapsed := max(0, asset.PurchaseDate.MonthsUntil(today))
	perMonth := asset.Cost.Div(decimal.NewFromInt(int64(lifeMonths)))

	accumulated := asset.Cost
	if elapsed < lifeMonths {
		accumulated = decimal.Min(perMonth.Mul(decimal.NewFromInt(int64(elapsed))), asset.Cost)
	}

	return domain.Depreciation{
		DepreciationPerMonth:    perMonth,
		MonthsElapsed:           elapsed,
		RemainingMonths:         max(0, lifeMonths-elapsed),
		AccumulatedDepreciation: accumulated,
		NetBookValue:            asset.Cost.Sub(accumulated),
		FullyDepreciated:        elapsed >= lifeMonths,
	}
}

// ValueAssets depreciates every asset and totals the results.
func ValueAssets(assets []domain.AssetRecord, today domain.Day) domain.AssetPortfolio {
	out := domain.AssetPortfolio{
		Assets:                  make([]domain.AssetValuation, 0, len(assets)),
		TotalCost:               decimal.Zero,
		TotalAccumulated:        decimal.Zero,
		TotalNetBookValue:       decimal.Zero,
		MonthlyDepreciationRate: decimal.Zero,
	}
	for _, a := range assets {
		d := Depreciate(a, today)
		out.Assets = append(out.Assets, domain.AssetValuation{Asset: a, Depreciation: d})
		out.TotalCost = out.TotalCost.Add(a.Cost)
		out.TotalAccumulated = out.TotalAccumulated.Add(d.AccumulatedDepreciation)
		out.TotalNetBookValue = out.TotalNetBookValue.Add(d.NetBookValue)
		if !d.FullyDepreciated {
			out.MonthlyDepreciationRate = out.MonthlyDepreciationRate.Add(d.DepreciationPerMonth)
		}
	}
	return out
}
