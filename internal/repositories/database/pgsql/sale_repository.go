package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/shop_bookkeeping/internal/core/domain"
	portsrepo "github.com/SscSPs/shop_bookkeeping/internal/core/ports/repositories"
	"github.com/SscSPs/shop_bookkeeping/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

const saleColumns = `id, sale_date, product, order_number, quantity, price, total, notes,
	is_deleted, deleted_at, restored_at, created_at, created_by, last_updated_at, last_updated_by`

type PgxSaleRepository struct {
	BaseRepository
}

// newPgxSaleRepository creates a new repository for sale data.
func newPgxSaleRepository(pool *pgxpool.Pool) portsrepo.SaleRepositoryFacade {
	return &PgxSaleRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.SaleRepositoryFacade = (*PgxSaleRepository)(nil)

func toModelSale(d domain.SaleRecord) models.Sale {
	return models.Sale{
		ID:          d.ID,
		SaleDate:    d.Date.Time(),
		Product:     d.Product,
		OrderNumber: d.OrderNumber,
		Quantity:    d.Quantity,
		Price:       d.Price,
		Total:       d.Total,
		Notes:       d.Notes,
		SoftDelete:  models.SoftDelete{IsDeleted: d.IsDeleted, DeletedAt: d.DeletedAt, RestoredAt: d.RestoredAt},
		AuditFields: toModelAudit(d.AuditFields),
	}
}

func toDomainSale(m models.Sale) domain.SaleRecord {
	return domain.SaleRecord{
		ID:          m.ID,
		Date:        domain.DayOf(m.SaleDate),
		Product:     m.Product,
		OrderNumber: m.OrderNumber,
		Quantity:    m.Quantity,
		Price:       m.Price,
		Total:       m.Total,
		Notes:       m.Notes,
		SoftDelete:  toDomainSoftDelete(m.SoftDelete),
		AuditFields: toDomainAudit(m.AuditFields),
	}
}

func toDomainSales(ms []models.Sale) []domain.SaleRecord {
	out := make([]domain.SaleRecord, len(ms))
	for i, m := range ms {
		out[i] = toDomainSale(m)
	}
	return out
}

func (r *PgxSaleRepository) SaveSale(ctx context.Context, sale domain.SaleRecord) error {
	m := toModelSale(sale)
	query := `
		INSERT INTO sales (` + saleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ID, m.SaleDate, m.Product, m.OrderNumber, m.Quantity, m.Price, m.Total, m.Notes,
		m.IsDeleted, m.DeletedAt, m.RestoredAt,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return storeError("save sale "+m.ID, err)
	}
	return nil
}

// FindSaleByID retrieves a sale, deleted or not.
func (r *PgxSaleRepository) FindSaleByID(ctx context.Context, id string) (*domain.SaleRecord, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1;`
	m, err := collectOne[models.Sale](ctx, r.Pool, "find sale "+id, query, id)
	if err != nil {
		return nil, err
	}
	sale := toDomainSale(*m)
	return &sale, nil
}

func (r *PgxSaleRepository) ListSales(ctx context.Context) ([]domain.SaleRecord, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE NOT is_deleted ORDER BY sale_date DESC, created_at DESC;`
	ms, err := collect[models.Sale](ctx, r.Pool, "list sales", query)
	if err != nil {
		return nil, err
	}
	return toDomainSales(ms), nil
}

func (r *PgxSaleRepository) ListDeletedSales(ctx context.Context) ([]domain.SaleRecord, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE is_deleted ORDER BY deleted_at DESC NULLS LAST;`
	ms, err := collect[models.Sale](ctx, r.Pool, "list deleted sales", query)
	if err != nil {
		return nil, err
	}
	return toDomainSales(ms), nil
}

func (r *PgxSaleRepository) SoftDelete(ctx context.Context, id string, userID string, now time.Time) error {
	return r.softDelete(ctx, "sales", id, userID, now)
}

func (r *PgxSaleRepository) Restore(ctx context.Context, id string, userID string, now time.Time) error {
	return r.restore(ctx, "sales", id, userID, now)
}
