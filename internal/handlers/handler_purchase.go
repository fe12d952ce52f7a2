package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/shop_bookkeeping/internal/core/ports/services"
	"github.com/SscSPs/shop_bookkeeping/internal/dto"
	"github.com/SscSPs/shop_bookkeeping/internal/middleware"
	"github.com/gin-gonic/gin"
)

// purchaseHandler handles HTTP requests related to purchases.
type purchaseHandler struct {
	purchaseService portssvc.PurchaseSvcFacade
}

func registerPurchaseRoutes(rg *gin.RouterGroup, purchaseService portssvc.PurchaseSvcFacade) {
	h := &purchaseHandler{purchaseService: purchaseService}

	purchases := rg.Group("/purchases")
	{
		purchases.POST("", h.createPurchase)
		purchases.GET("", h.listPurchases)
		purchases.GET("/deleted", h.listDeletedPurchases)
	}
	registerLifecycleRoutes(purchases, "purchase", purchaseService)
}

// createPurchase godoc
// @Summary Record a stock purchase
// @Description Records a stock purchase. The total is quantity times unit price.
// @Tags purchases
// @Accept json
// @Produce json
// @Param purchase body dto.CreatePurchaseRequest true "Purchase details"
// @Success 201 {object} domain.PurchaseRecord
// @Failure 400 {object} ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse "Record store unavailable"
// @Security BearerAuth
// @Router /purchases [post]
func (h *purchaseHandler) createPurchase(c *gin.Context) {
	var req dto.CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "request format", err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	purchase, err := h.purchaseService.AddPurchase(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to record purchase")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Purchase recorded", slog.String("purchase_id", purchase.ID))
	c.JSON(http.StatusCreated, purchase)
}

// listPurchases godoc
// @Summary List purchases
// @Description Lists live purchases inside the date window, most recent first
// @Tags purchases
// @Produce json
// @Param range query string false "all, last-7-days, last-1-month or last-3-months"
// @Param fromDate query string false "Custom range start, YYYY-MM-DD"
// @Param toDate query string false "Custom range end, YYYY-MM-DD"
// @Success 200 {array} domain.PurchaseRecord
// @Failure 400 {object} ErrorResponse "Invalid date range"
// @Failure 401 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse "Record store unavailable"
// @Security BearerAuth
// @Router /purchases [get]
func (h *purchaseHandler) listPurchases(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}
	window, ok := bindWindow(c)
	if !ok {
		return
	}

	purchases, err := h.purchaseService.ListPurchases(c.Request.Context(), window)
	if err != nil {
		respondWithError(c, err, "Failed to list purchases")
		return
	}
	c.JSON(http.StatusOK, purchases)
}

// listDeletedPurchases godoc
// @Summary List soft deleted purchases
// @Tags purchases
// @Produce json
// @Success 200 {array} domain.PurchaseRecord
// @Failure 401 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse "Record store unavailable"
// @Security BearerAuth
// @Router /purchases/deleted [get]
func (h *purchaseHandler) listDeletedPurchases(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}
	purchases, err := h.purchaseService.ListDeletedPurchases(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "Failed to list deleted purchases")
		return
	}
	c.JSON(http.StatusOK, purchases)
}
