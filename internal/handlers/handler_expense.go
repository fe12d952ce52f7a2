package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/shop_bookkeeping/internal/core/ports/services"
	"github.com/SscSPs/shop_bookkeeping/internal/dto"
	"github.com/SscSPs/shop_bookkeeping/internal/middleware"
	"github.com/gin-gonic/gin"
)

// expenseHandler handles HTTP requests related to expenses.
type expenseHandler struct {
	expenseService portssvc.ExpenseSvcFacade
}

func registerExpenseRoutes(rg *gin.RouterGroup, expenseService portssvc.ExpenseSvcFacade) {
	h := &expenseHandler{expenseService: expenseService}

	expenses := rg.Group("/expenses")
	{
		expenses.POST("", h.createExpense)
		expenses.GET("", h.listExpenses)
		expenses.GET("/deleted", h.listDeletedExpenses)
	}
	registerLifecycleRoutes(expenses, "expense", expenseService)
}

// createExpense godoc
// @Summary Record an operating expense
// @Description Records an expense against a category.
// @Tags expenses
// @Accept json
// @Produce json
// @Param expense body dto.CreateExpenseRequest true "Expense details"
// @Success 201 {object} domain.ExpenseRecord
// @Failure 400 {object} ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse "Record store unavailable"
// @Security BearerAuth
// @Router /expenses [post]
func (h *expenseHandler) createExpense(c *gin.Context) {
	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "request format", err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	expense, err := h.expenseService.AddExpense(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to record expense")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Expense recorded", slog.String("expense_id", expense.ID))
	c.JSON(http.StatusCreated, expense)
}

// listExpenses godoc
// @Summary List expenses
// @Description Lists live expenses inside the date window, most recent first
// @Tags expenses
// @Produce json
// @Param range query string false "all, last-7-days, last-1-month or last-3-months"
// @Param fromDate query string false "Custom range start, YYYY-MM-DD"
// @Param toDate query string false "Custom range end, YYYY-MM-DD"
// @Success 200 {array} domain.ExpenseRecord
// @Failure 400 {object} ErrorResponse "Invalid date range"
// @Failure 401 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse "Record store unavailable"
// @Security BearerAuth
// @Router /expenses [get]
func (h *expenseHandler) listExpenses(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}
	window, ok := bindWindow(c)
	if !ok {
		return
	}

	expenses, err := h.expenseService.ListExpenses(c.Request.Context(), window)
	if err != nil {
		respondWithError(c, err, "Failed to list expenses")
		return
	}
	c.JSON(http.StatusOK, expenses)
}

// listDeletedExpenses godoc
// @Summary List soft deleted expenses
// @Tags expenses
// @Produce json
// @Success 200 {array} domain.ExpenseRecord
// @Failure 401 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse "Record store unavailable"
// @Security BearerAuth
// @Router /expenses/deleted [get]
func (h *expenseHandler) listDeletedExpenses(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}
	expenses, err := h.expenseService.ListDeletedExpenses(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "Failed to list deleted expenses")
		return
	}
	c.JSON(http.StatusOK, expenses)
}
