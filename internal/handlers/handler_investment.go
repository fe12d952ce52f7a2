package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/shop_bookkeeping/internal/core/ports/services"
	"github.com/SscSPs/shop_bookkeeping/internal/dto"
	"github.com/SscSPs/shop_bookkeeping/internal/middleware"
	"github.com/gin-gonic/gin"
)

type investmentHandler struct {
	investmentService portssvc.InvestmentSvcFacade
}

func registerInvestmentRoutes(rg *gin.RouterGroup, investmentService portssvc.InvestmentSvcFacade) {
	h := &investmentHandler{investmentService: investmentService}

	investments := rg.Group("/investments")
	{
		investments.POST("", h.createInvestment)
		investments.GET("", h.listInvestments)
	}
}

// createInvestment godoc
// @Summary Record a capital contribution
// @Tags investments
// @Accept json
// @Produce json
// @Param investment body dto.CreateInvestmentRequest true "Investment details"
// @Success 201 {object} domain.InvestmentRecord
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Security BearerAuth
// @Router /investments [post]
func (h *investmentHandler) createInvestment(c *gin.Context) {
	var req dto.CreateInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "request format", err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	inv, err := h.investmentService.AddInvestment(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to record investment")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Investment recorded", slog.String("investment_id", inv.ID))
	c.JSON(http.StatusCreated, inv)
}

// listInvestments godoc
// @Summary List capital contributions
// @Tags investments
// @Produce json
// @Param range query string false "all, last-7-days, last-1-month or last-3-months"
// @Param fromDate query string false "Custom range start, YYYY-MM-DD"
// @Param toDate query string false "Custom range end, YYYY-MM-DD"
// @Success 200 {array} domain.InvestmentRecord
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Security BearerAuth
// @Router /investments [get]
func (h *investmentHandler) listInvestments(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}
	window, ok := bindWindow(c)
	if !ok {
		return
	}
	investments, err := h.investmentService.ListInvestments(c.Request.Context(), window)
	if err != nil {
		respondWithError(c, err, "Failed to list investments")
		return
	}
	c.JSON(http.StatusOK, investments)
}
