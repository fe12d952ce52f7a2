package services

import (
	"context"

	"github.com/SscSPs/shop_bookkeeping/internal/core/analytics"
	portsrepo "github.com/SscSPs/shop_bookkeeping/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/shop_bookkeeping/internal/core/ports/services"
)

type snapshotService struct {
	BaseService
	repos    portsrepo.RepositoryProvider
	currency string
}

// NewSnapshotService creates the service behind the snapshot export. The
// currency code is stamped on the snapshot so offline tools format amounts
// the same way.
func NewSnapshotService(repos portsrepo.RepositoryProvider, currency string) portssvc.SnapshotSvcFacade {
	return &snapshotService{repos: repos, currency: currency}
}

func (s *snapshotService) Snapshot(ctx context.Context) (*portssvc.Snapshot, error) {
	recs, err := fetchBook(ctx, s.repos, fetchSet{sales: true, purchases: true, expenses: true, investments: true, assets: true})
	if err != nil {
		s.LogError(ctx, err, "Failed to build snapshot")
		return nil, err
	}
	analytics.SortMostRecentFirst(recs.sales)
	analytics.SortMostRecentFirst(recs.purchases)
	analytics.SortMostRecentFirst(recs.expenses)
	analytics.SortMostRecentFirst(recs.investments)

	return &portssvc.Snapshot{
		Currency:    s.currency,
		Sales:       nonNil(recs.sales),
		Purchases:   nonNil(recs.purchases),
		Expenses:    nonNil(recs.expenses),
		Investments: nonNil(recs.investments),
		Assets:      nonNil(recs.assets),
	}, nil
}

// nonNil keeps empty collections as [] in JSON.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
