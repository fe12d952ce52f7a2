package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/shop_bookkeeping/internal/core/domain"
	portsrepo "github.com/SscSPs/shop_bookkeeping/internal/core/ports/repositories"
	"github.com/SscSPs/shop_bookkeeping/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

const purchaseColumns = `id, purchase_date, product, quantity, price, total, supplier, gender, color, dial_color, notes,
	is_deleted, deleted_at, restored_at, created_at, created_by, last_updated_at, last_updated_by`

type PgxPurchaseRepository struct {
	BaseRepository
}

func newPgxPurchaseRepository(pool *pgxpool.Pool) portsrepo.PurchaseRepositoryFacade {
	return &PgxPurchaseRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.PurchaseRepositoryFacade = (*PgxPurchaseRepository)(nil)

func toModelPurchase(d domain.PurchaseRecord) models.Purchase {
	return models.Purchase{
		ID:           d.ID,
		PurchaseDate: d.Date.Time(),
		Product:      d.Product,
		Quantity:     d.Quantity,
		Price:        d.Price,
		Total:        d.Total,
		Supplier:     d.Supplier,
		Gender:       d.Gender,
		Color:        d.Color,
		DialColor:    d.DialColor,
		Notes:        d.Notes,
		SoftDelete:   models.SoftDelete{IsDeleted: d.IsDeleted, DeletedAt: d.DeletedAt, RestoredAt: d.RestoredAt},
		AuditFields:  toModelAudit(d.AuditFields),
	}
}

func toDomainPurchases(ms []models.Purchase) []domain.PurchaseRecord {
	out := make([]domain.PurchaseRecord, len(ms))
	for i, m := range ms {
		out[i] = domain.PurchaseRecord{
			ID:          m.ID,
			Date:        domain.DayOf(m.PurchaseDate),
			Product:     m.Product,
			Quantity:    m.Quantity,
			Price:       m.Price,
			Total:       m.Total,
			Supplier:    m.Supplier,
			Gender:      m.Gender,
			Color:       m.Color,
			DialColor:   m.DialColor,
			Notes:       m.Notes,
			SoftDelete:  toDomainSoftDelete(m.SoftDelete),
			AuditFields: toDomainAudit(m.AuditFields),
		}
	}
	return out
}

func (r *PgxPurchaseRepository) SavePurchase(ctx context.Context, purchase domain.PurchaseRecord) error {
	m := toModelPurchase(purchase)
	query := `
		INSERT INTO purchases (` + purchaseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ID, m.PurchaseDate, m.Product, m.Quantity, m.Price, m.Total,
		m.Supplier, m.Gender, m.Color, m.DialColor, m.Notes,
		m.IsDeleted, m.DeletedAt, m.RestoredAt,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return storeError("save purchase "+m.ID, err)
	}
	return nil
}

func (r *PgxPurchaseRepository) FindPurchaseByID(ctx context.Context, id string) (*domain.PurchaseRecord, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE id = $1;`
	m, err := collectOne[models.Purchase](ctx, r.Pool, "find purchase "+id, query, id)
	if err != nil {
		return nil, err
	}
	return &toDomainPurchases([]models.Purchase{*m})[0], nil
}

func (r *PgxPurchaseRepository) ListPurchases(ctx context.Context) ([]domain.PurchaseRecord, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE NOT is_deleted ORDER BY purchase_date DESC, created_at DESC;`
	ms, err := collect[models.Purchase](ctx, r.Pool, "list purchases", query)
	if err != nil {
		return nil, err
	}
	return toDomainPurchases(ms), nil
}

func (r *PgxPurchaseRepository) ListDeletedPurchases(ctx context.Context) ([]domain.PurchaseRecord, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE is_deleted ORDER BY deleted_at DESC NULLS LAST;`
	ms, err := collect[models.Purchase](ctx, r.Pool, "list deleted purchases", query)
	if err != nil {
		return nil, err
	}
	return toDomainPurchases(ms), nil
}

func (r *PgxPurchaseRepository) SoftDelete(ctx context.Context, id string, userID string, now time.Time) error {
	return r.softDelete(ctx, "purchases", id, userID, now)
}

func (r *PgxPurchaseRepository) Restore(ctx context.Context, id string, userID string, now time.Time) error {
	return r.restore(ctx, "purchases", id, userID, now)
}
