package services

import "context"

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Sale       SaleSvcFacade
	Purchase   PurchaseSvcFacade
	Expense    ExpenseSvcFacade
	Investment InvestmentSvcFacade
	Asset      AssetSvcFacade
	Category   CategorySvcFacade
	Dashboard  DashboardSvcFacade
	Snapshot   SnapshotSvcFacade
	Health     HealthSvcFacade

	Access             AccessSvcFacade
	TokenService       TokenSvcFacade
	GoogleOAuthHandler GoogleOAuthHandlerSvcFacade
}

// HealthSvcFacade reports whether the record store is reachable.
type HealthSvcFacade interface {
	Check(ctx context.Context) error
}
