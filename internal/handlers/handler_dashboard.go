package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/shop_bookkeeping/internal/core/ports/services"
	"github.com/SscSPs/shop_bookkeeping/internal/dto"
	"github.com/SscSPs/shop_bookkeeping/internal/utils"
	"github.com/gin-gonic/gin"
)

// dashboardHandler serves the four dashboard panels.
type dashboardHandler struct {
	dashboardService portssvc.DashboardSvcFacade
	money            *utils.CurrencyFormatter
}

func registerDashboardRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardSvcFacade, money *utils.CurrencyFormatter) {
	h := &dashboardHandler{dashboardService: dashboardService, money: money}

	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/metrics", h.getMetrics)
		dashboard.GET("/expenses", h.getExpenseBreakdown)
		dashboard.GET("/stock", h.getStock)
		dashboard.GET("/assets", h.getAssets)
	}
}

// bindDashboardRequest reads the window and generation from the query string.
func bindDashboardRequest(c *gin.Context) (portssvc.DashboardRequest, bool) {
	userID, ok := requireUserID(c)
	if !ok {
		return portssvc.DashboardRequest{}, false
	}
	var q dto.DashboardQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, "query parameters", err)
		return portssvc.DashboardRequest{}, false
	}
	window, err := q.Window()
	if err != nil {
		respondWithError(c, err, "Invalid date range")
		return portssvc.DashboardRequest{}, false
	}
	return portssvc.DashboardRequest{UserID: userID, Window: window, Generation: q.Generation}, true
}

// getMetrics godoc
// @Summary Dashboard metrics
// @Description Sales, cost of goods sold, profit, margins and investments inside the window
// @Tags dashboard
// @Produce json
// @Param range query string false "all, last-7-days, last-1-month or last-3-months"
// @Param fromDate query string false "Custom range start, YYYY-MM-DD"
// @Param toDate query string false "Custom range end, YYYY-MM-DD"
// @Param generation query int false "Client request counter; older generations are rejected"
// @Success 200 {object} dto.MetricsResponse
// @Failure 400 {object} ErrorResponse "Invalid date range"
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Superseded by a newer request"
// @Failure 503 {object} ErrorResponse "Record store unavailable"
// @Security BearerAuth
// @Router /dashboard/metrics [get]
func (h *dashboardHandler) getMetrics(c *gin.Context) {
	req, ok := bindDashboardRequest(c)
	if !ok {
		return
	}
	m, err := h.dashboardService.Metrics(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err, "Failed to compute dashboard metrics")
		return
	}
	c.JSON(http.StatusOK, dto.ToMetricsResponse(m, h.money, req.Generation))
}

// getExpenseBreakdown godoc
// @Summary Expenses by category
// @Tags dashboard
// @Produce json
// @Param range query string false "all, last-7-days, last-1-month or last-3-months"
// @Param fromDate query string false "Custom range start, YYYY-MM-DD"
// @Param toDate query string false "Custom range end, YYYY-MM-DD"
// @Param generation query int false "Client request counter"
// @Success 200 {object} dto.ExpenseBreakdownResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard/expenses [get]
func (h *dashboardHandler) getExpenseBreakdown(c *gin.Context) {
	req, ok := bindDashboardRequest(c)
	if !ok {
		return
	}
	b, err := h.dashboardService.ExpenseBreakdown(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err, "Failed to compute expense breakdown")
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseBreakdownResponse(b, h.money, req.Generation))
}

// getStock godoc
// @Summary Stock valuation
// @Description Products still in stock at their weighted average cost. The date window is ignored.
// @Tags dashboard
// @Produce json
// @Param generation query int false "Client request counter"
// @Success 200 {object} dto.StockResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard/stock [get]
func (h *dashboardHandler) getStock(c *gin.Context) {
	req, ok := bindDashboardRequest(c)
	if !ok {
		return
	}
	v, err := h.dashboardService.Stock(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err, "Failed to value stock")
		return
	}
	c.JSON(http.StatusOK, dto.ToStockResponse(v, h.money, req.Generation))
}

// getAssets godoc
// @Summary Asset depreciation portfolio
// @Tags dashboard
// @Produce json
// @Param generation query int false "Client request counter"
// @Success 200 {object} dto.AssetPortfolioResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard/assets [get]
func (h *dashboardHandler) getAssets(c *gin.Context) {
	req, ok := bindDashboardRequest(c)
	if !ok {
		return
	}
	p, err := h.dashboardService.Assets(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err, "Failed to value assets")
		return
	}
	c.JSON(http.StatusOK, dto.ToAssetPortfolioResponse(p, h.money, req.Generation))
}
