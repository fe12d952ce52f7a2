package repositories

import (
	"context"

	"github.com/SscSPs/shop_bookkeeping/internal/core/domain"
)

// PurchaseReader defines read operations for purchase records
type PurchaseReader interface {
	FindPurchaseByID(ctx context.Context, id string) (*domain.PurchaseRecord, error)

	// ListPurchases returns every live purchase, newest first.
	ListPurchases(ctx context.Context) ([]domain.PurchaseRecord, error)

	ListDeletedPurchases(ctx context.Context) ([]domain.PurchaseRecord, error)
}

// PurchaseWriter defines write operations for purchase records
type PurchaseWriter interface {
	SavePurchase(ctx context.Context, purchase domain.PurchaseRecord) error
	SoftDeleter
}

// PurchaseRepositoryFacade combines all purchase-related repository interfaces
type PurchaseRepositoryFacade interface {
	PurchaseReader
	PurchaseWriter
}
