package services

import (
	"log/slog"

	"github.com/SscSPs/shop_bookkeeping/internal/core/analytics"
	portsrepo "github.com/SscSPs/shop_bookkeeping/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/shop_bookkeeping/internal/core/ports/services"
	"github.com/SscSPs/shop_bookkeeping/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	cogs, err := analytics.ParseCOGSMethod(cfg.COGSMethod)
	if err != nil {
		slog.Warn("Unknown COGS method, using purchases", slog.String("cogs_method", cfg.COGSMethod))
		cogs = analytics.COGSPurchases
	}
	keywords := cfg.MarketingKeywords
	if len(keywords) == 0 {
		keywords = analytics.DefaultMarketingKeywords
	}

	return &portssvc.ServiceContainer{
		Sale:       NewSaleService(repos.SaleRepo),
		Purchase:   NewPurchaseService(repos.PurchaseRepo),
		Expense:    NewExpenseService(repos.ExpenseRepo),
		Investment: NewInvestmentService(repos.InvestmentRepo),
		Asset:      NewAssetService(repos.AssetRepo),
		Category:   NewCategoryService(repos.CategoryRepo),
		Dashboard: NewDashboardService(repos,
			WithCOGSMethod(cogs),
			WithMarketingMatcher(analytics.NewMarketingMatcher(keywords...)),
		),
		Snapshot: NewSnapshotService(repos, cfg.CurrencyCode),
		Health:   NewHealthService(repos.Health),

		Access:             NewAccessService(cfg),
		TokenService:       NewTokenService(cfg),
		GoogleOAuthHandler: NewGoogleOAuthHandlerService(cfg),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.SnapshotSvcFacade           = (*snapshotService)(nil)
	_ portssvc.HealthSvcFacade             = (*healthService)(nil)
	_ portssvc.TokenSvcFacade              = (*tokenService)(nil)
	_ portssvc.GoogleOAuthHandlerSvcFacade = (*googleOAuthHandlerService)(nil)
)
