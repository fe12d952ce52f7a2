package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/shop_bookkeeping/internal/core/domain"
	portsrepo "github.com/SscSPs/shop_bookkeeping/internal/core/ports/repositories"
	"github.com/SscSPs/shop_bookkeeping/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

const expenseColumns = `id, expense_date, category, description, amount, notes,
	is_deleted, deleted_at, restored_at, created_at, created_by, last_updated_at, last_updated_by`

type PgxExpenseRepository struct {
	BaseRepository
}

func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

func toDomainExpense(m models.Expense) domain.ExpenseRecord {
	return domain.ExpenseRecord{
		ID:          m.ID,
		Date:        domain.DayOf(m.ExpenseDate),
		Category:    m.Category,
		Description: m.Description,
		Amount:      m.Amount,
		Notes:       m.Notes,
		SoftDelete:  toDomainSoftDelete(m.SoftDelete),
		AuditFields: toDomainAudit(m.AuditFields),
	}
}

func toDomainExpenses(ms []models.Expense) []domain.ExpenseRecord {
	out := make([]domain.ExpenseRecord, len(ms))
	for i, m := range ms {
		out[i] = toDomainExpense(m)
	}
	return out
}

func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, e domain.ExpenseRecord) error {
	audit := toModelAudit(e.AuditFields)
	query := `
		INSERT INTO expenses (` + expenseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		e.ID, e.Date.Time(), e.Category, e.Description, e.Amount, e.Notes,
		e.IsDeleted, e.DeletedAt, e.RestoredAt,
		audit.CreatedAt, audit.CreatedBy, audit.LastUpdatedAt, audit.LastUpdatedBy,
	)
	if err != nil {
		return storeError("save expense "+e.ID, err)
	}
	return nil
}

func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, id string) (*domain.ExpenseRecord, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE id = $1;`
	m, err := collectOne[models.Expense](ctx, r.Pool, "find expense "+id, query, id)
	if err != nil {
		return nil, err
	}
	e := toDomainExpense(*m)
	return &e, nil
}

func (r *PgxExpenseRepository) ListExpenses(ctx context.Context) ([]domain.ExpenseRecord, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE NOT is_deleted ORDER BY expense_date DESC, created_at DESC;`
	ms, err := collect[models.Expense](ctx, r.Pool, "list expenses", query)
	if err != nil {
		return nil, err
	}
	return toDomainExpenses(ms), nil
}

func (r *PgxExpenseRepository) ListDeletedExpenses(ctx context.Context) ([]domain.ExpenseRecord, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE is_deleted ORDER BY deleted_at DESC NULLS LAST;`
	ms, err := collect[models.Expense](ctx, r.Pool, "list deleted expenses", query)
	if err != nil {
		return nil, err
	}
	return toDomainExpenses(ms), nil
}

func (r *PgxExpenseRepository) SoftDelete(ctx context.Context, id string, userID string, now time.Time) error {
	return r.softDelete(ctx, "expenses", id, userID, now)
}

func (r *PgxExpenseRepository) Restore(ctx context.Context, id string, userID string, now time.Time) error {
	return r.restore(ctx, "expenses", id, userID, now)
}
