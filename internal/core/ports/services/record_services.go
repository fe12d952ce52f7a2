package services

import (
	"context"

	"github.com/SscSPs/shop_bookkeeping/internal/core/analytics"
	"github.com/SscSPs/shop_bookkeeping/internal/core/domain"
	"github.com/SscSPs/shop_bookkeeping/internal/dto"
)

// RecordLifecycleSvc soft-deletes and restores records of one collection.
type RecordLifecycleSvc interface {
	// SoftDelete hides a record from listings and aggregates.
	SoftDelete(ctx context.Context, id string, userID string) error

	// Restore brings a soft-deleted record back.
	Restore(ctx context.Context, id string, userID string) error
}

// SaleSvcFacade defines operations on sale records
type SaleSvcFacade interface {
	// AddSale validates the request, computes the total and persists the sale.
	AddSale(ctx context.Context, req dto.CreateSaleRequest, userID string) (*domain.SaleRecord, error)

	// ListSales returns live sales inside the window, newest first.
	ListSales(ctx context.Context, window analytics.Window) ([]domain.SaleRecord, error)

	ListDeletedSales(ctx context.Context) ([]domain.SaleRecord, error)

	// GetSale returns one sale, deleted or not.
	GetSale(ctx context.Context, id string) (*domain.SaleRecord, error)
	RecordLifecycleSvc
}

// PurchaseSvcFacade defines operations on purchase records
type PurchaseSvcFacade interface {
	AddPurchase(ctx context.Context, req dto.CreatePurchaseRequest, userID string) (*domain.PurchaseRecord, error)
	ListPurchases(ctx context.Context, window analytics.Window) ([]domain.PurchaseRecord, error)
	ListDeletedPurchases(ctx context.Context) ([]domain.PurchaseRecord, error)
	RecordLifecycleSvc
}

// ExpenseSvcFacade defines operations on expense records
type ExpenseSvcFacade interface {
	AddExpense(ctx context.Context, req dto.CreateExpenseRequest, userID string) (*domain.ExpenseRecord, error)
	ListExpenses(ctx context.Context, window analytics.Window) ([]domain.ExpenseRecord, error)
	ListDeletedExpenses(ctx context.Context) ([]domain.ExpenseRecord, error)
	RecordLifecycleSvc
}

// InvestmentSvcFacade defines operations on capital contributions
type InvestmentSvcFacade interface {
	AddInvestment(ctx context.Context, req dto.CreateInvestmentRequest, userID string) (*domain.InvestmentRecord, error)
	ListInvestments(ctx context.Context, window analytics.Window) ([]domain.InvestmentRecord, error)
}

// AssetSvcFacade defines operations on depreciable assets
type AssetSvcFacade interface {
	AddAsset(ctx context.Context, req dto.CreateAssetRequest, userID string) (*domain.AssetValuation, error)

	// ListAssets returns every asset with its depreciation as of today.
	ListAssets(ctx context.Context) ([]domain.AssetValuation, error)

	// TouchAssetDepreciation stamps the asset's LastUpdated and returns its
	// freshly computed depreciation.
	TouchAssetDepreciation(ctx context.Context, id string, userID string) (*domain.AssetValuation, error)
}

// CategorySvcFacade manages the picker lists
type CategorySvcFacade interface {
	AddCategory(ctx context.Context, kind domain.CategoryKind, req dto.CreateCategoryRequest, userID string) (*domain.Category, error)
	ListCategories(ctx context.Context, kind domain.CategoryKind) ([]domain.Category, error)
	DeleteCategory(ctx context.Context, kind domain.CategoryKind, id string) error
}
