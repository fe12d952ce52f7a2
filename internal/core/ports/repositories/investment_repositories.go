package repositories

import (
	"context"

	"github.com/SscSPs/shop_bookkeeping/internal/core/domain"
)

// InvestmentRepositoryFacade stores capital contributions. Investments are
// append-only.
type InvestmentRepositoryFacade interface {
	SaveInvestment(ctx context.Context, investment domain.InvestmentRecord) error

	// ListInvestments returns every investment, newest first.
	ListInvestments(ctx context.Context) ([]domain.InvestmentRecord, error)
}
