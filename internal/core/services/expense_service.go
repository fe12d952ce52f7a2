package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/shop_bookkeeping/internal/core/analytics"
	"github.com/SscSPs/shop_bookkeeping/internal/core/domain"
	portsrepo "github.com/SscSPs/shop_bookkeeping/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/shop_bookkeeping/internal/core/ports/services"
	"github.com/SscSPs/shop_bookkeeping/internal/dto"
	"github.com/google/uuid"
)

type expenseService struct {
	recordLifecycle
	expenseRepo portsrepo.ExpenseRepositoryFacade
}

// NewExpenseService creates the expense service.
func NewExpenseService(repo portsrepo.ExpenseRepositoryFacade, opts ...RecordOption) portssvc.ExpenseSvcFacade {
	return &expenseService{
		recordLifecycle: newRecordLifecycle("expense", repo, opts),
		expenseRepo:     repo,
	}
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

func (s *expenseService) AddExpense(ctx context.Context, req dto.CreateExpenseRequest, userID string) (*domain.ExpenseRecord, error) {
	expense := domain.ExpenseRecord{
		ID:          uuid.NewString(),
		Date:        req.Date,
		Category:    req.Category,
		Description: req.Description,
		Amount:      req.Amount,
		Notes:       req.Notes,
		AuditFields: newAuditFields(s.Now(), userID),
	}
	if err := validateRecord(expense); err != nil {
		s.LogDebug(ctx, "Rejected expense", slog.String("reason", err.Error()))
		return nil, err
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "Failed to save expense", slog.String("expense_id", expense.ID))
		return nil, fmt.Errorf("failed to save expense: %w", err)
	}

	s.LogInfo(ctx, "Expense recorded",
		slog.String("expense_id", expense.ID),
		slog.String("category", expense.Category))
	return &expense, nil
}

func (s *expenseService) ListExpenses(ctx context.Context, window analytics.Window) ([]domain.ExpenseRecord, error) {
	return listInWindow(ctx, &s.BaseService, "expense", window, s.expenseRepo.ListExpenses)
}

func (s *expenseService) ListDeletedExpenses(ctx context.Context) ([]domain.ExpenseRecord, error) {
	expenses, err := s.expenseRepo.ListDeletedExpenses(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list deleted expenses")
		return nil, fmt.Errorf("failed to list deleted expenses: %w", err)
	}
	return expenses, nil
}
