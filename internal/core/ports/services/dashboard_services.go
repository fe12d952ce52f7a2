package services

import (
	"context"

	"github.com/SscSPs/shop_bookkeeping/internal/core/analytics"
	"github.com/SscSPs/shop_bookkeeping/internal/core/domain"
)

// DashboardView names a dashboard panel for the stale-request check.
type DashboardView string

const (
	ViewMetrics  DashboardView = "metrics"
	ViewExpenses DashboardView = "expenses"
	ViewStock    DashboardView = "stock"
	ViewAssets   DashboardView = "assets"
)

// DashboardRequest identifies one dashboard read.
type DashboardRequest struct {
	UserID string
	Window analytics.Window

	// Generation increases with every request the client makes for a view.
	// A read whose generation was overtaken while it ran fails with
	// apperrors.ErrStaleRequest. Zero disables the check.
	Generation uint64
}

// DashboardSvcFacade derives the dashboard figures from the stored records.
type DashboardSvcFacade interface {
	Metrics(ctx context.Context, req DashboardRequest) (domain.DashboardMetrics, error)
	ExpenseBreakdown(ctx context.Context, req DashboardRequest) (domain.ExpenseBreakdown, error)

	// Stock ignores the window: stock is always valued over the full history.
	Stock(ctx context.Context, req DashboardRequest) (domain.StockValuation, error)

	Assets(ctx context.Context, req DashboardRequest) (domain.AssetPortfolio, error)
}

// Snapshot is every live record, used for exports and the offline CLI.
type Snapshot struct {
	Currency    string                    `json:"currency"`
	Sales       []domain.SaleRecord       `json:"sales"`
	Purchases   []domain.PurchaseRecord   `json:"purchases"`
	Expenses    []domain.ExpenseRecord    `json:"expenses"`
	Investments []domain.InvestmentRecord `json:"investments"`
	Assets      []domain.AssetRecord      `json:"assets"`
}

// SnapshotSvcFacade reads the whole book in one go.
type SnapshotSvcFacade interface {
	Snapshot(ctx context.Context) (*Snapshot, error)
}
