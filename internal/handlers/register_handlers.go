package handlers

import (
	"github.com/SscSPs/shop_bookkeeping/cmd/docs"
	portssvc "github.com/SscSPs/shop_bookkeeping/internal/core/ports/services"
	"github.com/SscSPs/shop_bookkeeping/internal/middleware"
	"github.com/SscSPs/shop_bookkeeping/internal/platform/config"
	"github.com/SscSPs/shop_bookkeeping/internal/utils"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes. money formats amounts in
// dashboard responses and exports.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	money *utils.CurrencyFormatter,
) {
	r.GET("/health", getHealth(services.Health))

	// Register public authentication routes
	registerAuthRoutes(r, cfg, services)

	setupAPIV1Routes(r, cfg, services, money)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the authenticated /api/v1 group.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	money *utils.CurrencyFormatter,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerSaleRoutes(v1, services.Sale)
	registerPurchaseRoutes(v1, services.Purchase)
	registerExpenseRoutes(v1, services.Expense)
	registerInvestmentRoutes(v1, services.Investment)
	registerAssetRoutes(v1, services.Asset)
	registerCategoryRoutes(v1, services.Category)
	registerDashboardRoutes(v1, services.Dashboard, money)
	registerExportRoutes(v1, services, money)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
