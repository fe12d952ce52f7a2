package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/shop_bookkeeping/internal/core/ports/services"
	"github.com/SscSPs/shop_bookkeeping/internal/dto"
	"github.com/SscSPs/shop_bookkeeping/internal/middleware"
	"github.com/gin-gonic/gin"
)

// saleHandler handles HTTP requests related to sales.
type saleHandler struct {
	saleService portssvc.SaleSvcFacade
}

func registerSaleRoutes(rg *gin.RouterGroup, saleService portssvc.SaleSvcFacade) {
	h := &saleHandler{saleService: saleService}

	sales := rg.Group("/sales")
	{
		sales.POST("", h.createSale)
		sales.GET("", h.listSales)
		sales.GET("/deleted", h.listDeletedSales)
		sales.GET("/:id", h.getSale)
	}
	registerLifecycleRoutes(sales, "sale", saleService)
}

// createSale godoc
// @Summary Record a sale
// @Description Records a sale. The total is quantity times price.
// @Tags sales
// @Accept json
// @Produce json
// @Param sale body dto.CreateSaleRequest true "Sale details"
// @Success 201 {object} domain.SaleRecord
// @Failure 400 {object} ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse "Record store unavailable"
// @Security BearerAuth
// @Router /sales [post]
func (h *saleHandler) createSale(c *gin.Context) {
	var req dto.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "request format", err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	sale, err := h.saleService.AddSale(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to record sale")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Sale recorded", slog.String("sale_id", sale.ID))
	c.JSON(http.StatusCreated, sale)
}

// listSales godoc
// @Summary List sales
// @Description Lists live sales inside the date window, most recent first
// @Tags sales
// @Produce json
// @Param range query string false "all, last-7-days, last-1-month or last-3-months"
// @Param fromDate query string false "Custom range start, YYYY-MM-DD"
// @Param toDate query string false "Custom range end, YYYY-MM-DD"
// @Success 200 {array} domain.SaleRecord
// @Failure 400 {object} ErrorResponse "Invalid date range"
// @Failure 401 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse "Record store unavailable"
// @Security BearerAuth
// @Router /sales [get]
func (h *saleHandler) listSales(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}
	window, ok := bindWindow(c)
	if !ok {
		return
	}

	sales, err := h.saleService.ListSales(c.Request.Context(), window)
	if err != nil {
		respondWithError(c, err, "Failed to list sales")
		return
	}
	c.JSON(http.StatusOK, sales)
}

// listDeletedSales godoc
// @Summary List soft deleted sales
// @Tags sales
// @Produce json
// @Success 200 {array} domain.SaleRecord
// @Failure 401 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse "Record store unavailable"
// @Security BearerAuth
// @Router /sales/deleted [get]
func (h *saleHandler) listDeletedSales(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}
	sales, err := h.saleService.ListDeletedSales(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "Failed to list deleted sales")
		return
	}
	c.JSON(http.StatusOK, sales)
}

// getSale godoc
// @Summary Get a sale
// @Description Returns one sale, including soft deleted ones
// @Tags sales
// @Produce json
// @Param id path string true "Sale ID"
// @Success 200 {object} domain.SaleRecord
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Sale not found"
// @Failure 503 {object} ErrorResponse "Record store unavailable"
// @Security BearerAuth
// @Router /sales/{id} [get]
func (h *saleHandler) getSale(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}
	sale, err := h.saleService.GetSale(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err, "Failed to get sale")
		return
	}
	c.JSON(http.StatusOK, sale)
}
