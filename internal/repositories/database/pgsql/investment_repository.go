package pgsql

import (
	"context"

	"github.com/SscSPs/shop_bookkeeping/internal/core/domain"
	portsrepo "github.com/SscSPs/shop_bookkeeping/internal/core/ports/repositories"
	"github.com/SscSPs/shop_bookkeeping/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

const investmentColumns = `id, investment_date, investor, amount, note, created_at, created_by, last_updated_at, last_updated_by`

type PgxInvestmentRepository struct {
	BaseRepository
}

func newPgxInvestmentRepository(pool *pgxpool.Pool) portsrepo.InvestmentRepositoryFacade {
	return &PgxInvestmentRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.InvestmentRepositoryFacade = (*PgxInvestmentRepository)(nil)

func (r *PgxInvestmentRepository) SaveInvestment(ctx context.Context, inv domain.InvestmentRecord) error {
	query := `
		INSERT INTO investments (` + investmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		inv.ID, inv.Date.Time(), inv.Investor, inv.Amount, inv.Note,
		inv.CreatedAt, inv.CreatedBy, inv.LastUpdatedAt, inv.LastUpdatedBy,
	)
	if err != nil {
		return storeError("save investment "+inv.ID, err)
	}
	return nil
}

func (r *PgxInvestmentRepository) ListInvestments(ctx context.Context) ([]domain.InvestmentRecord, error) {
	query := `SELECT ` + investmentColumns + ` FROM investments ORDER BY investment_date DESC, created_at DESC;`
	ms, err := collect[models.Investment](ctx, r.Pool, "list investments", query)
	if err != nil {
		return nil, err
	}
	out := make([]domain.InvestmentRecord, len(ms))
	for i, m := range ms {
		out[i] = domain.InvestmentRecord{
			ID:          m.ID,
			Date:        domain.DayOf(m.InvestmentDate),
			Investor:    m.Investor,
			Amount:      m.Amount,
			Note:        m.Note,
			AuditFields: toDomainAudit(m.AuditFields),
		}
	}
	return out, nil
}
