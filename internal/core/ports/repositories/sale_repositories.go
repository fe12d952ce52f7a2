package repositories

import (
	"context"

	"github.com/SscSPs/shop_bookkeeping/internal/core/domain"
)

// SaleReader defines read operations for sale records
type SaleReader interface {
	// FindSaleByID retrieves a sale, deleted or not.
	FindSaleByID(ctx context.Context, id string) (*domain.SaleRecord, error)

	// ListSales returns every live sale, newest first.
	ListSales(ctx context.Context) ([]domain.SaleRecord, error)

	// ListDeletedSales returns the soft-deleted sales, most recently deleted first.
	ListDeletedSales(ctx context.Context) ([]domain.SaleRecord, error)
}

// SaleWriter defines write operations for sale records
type SaleWriter interface {
	SaveSale(ctx context.Context, sale domain.SaleRecord) error
	SoftDeleter
}

// SaleRepositoryFacade combines all sale-related repository interfaces
type SaleRepositoryFacade interface {
	SaleReader
	SaleWriter
}
