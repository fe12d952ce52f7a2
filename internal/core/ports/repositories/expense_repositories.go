package repositories

import (
	"context"

	"github.com/SscSPs/shop_bookkeeping/internal/core/domain"
)

// ExpenseReader defines read operations for expense records
type ExpenseReader interface {
	FindExpenseByID(ctx context.Context, id string) (*domain.ExpenseRecord, error)
	ListExpenses(ctx context.Context) ([]domain.ExpenseRecord, error)
	ListDeletedExpenses(ctx context.Context) ([]domain.ExpenseRecord, error)
}

// ExpenseWriter defines write operations for expense records
type ExpenseWriter interface {
	SaveExpense(ctx context.Context, expense domain.ExpenseRecord) error
	SoftDeleter
}

// ExpenseRepositoryFacade combines all expense-related repository interfaces
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
