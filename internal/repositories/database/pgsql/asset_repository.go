package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/shop_bookkeeping/internal/apperrors"
	"github.com/SscSPs/shop_bookkeeping/internal/core/domain"
	portsrepo "github.com/SscSPs/shop_bookkeeping/internal/core/ports/repositories"
	"github.com/SscSPs/shop_bookkeeping/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

const assetColumns = `id, name, purchase_date, cost, useful_life_years, last_updated, note,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxAssetRepository struct {
	BaseRepository
}

func newPgxAssetRepository(pool *pgxpool.Pool) portsrepo.AssetRepositoryFacade {
	return &PgxAssetRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.AssetRepositoryFacade = (*PgxAssetRepository)(nil)

func toDomainAsset(m models.Asset) domain.AssetRecord {
	return domain.AssetRecord{
		ID:              m.ID,
		Name:            m.Name,
		PurchaseDate:    domain.DayOf(m.PurchaseDate),
		Cost:            m.Cost,
		UsefulLifeYears: m.UsefulLifeYears,
		LastUpdated:     timePtrUTC(m.LastUpdated),
		Note:            m.Note,
		AuditFields:     toDomainAudit(m.AuditFields),
	}
}

func (r *PgxAssetRepository) SaveAsset(ctx context.Context, a domain.AssetRecord) error {
	query := `
		INSERT INTO assets (` + assetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		a.ID, a.Name, a.PurchaseDate.Time(), a.Cost, a.UsefulLifeYears, a.LastUpdated, a.Note,
		a.CreatedAt, a.CreatedBy, a.LastUpdatedAt, a.LastUpdatedBy,
	)
	if err != nil {
		return storeError("save asset "+a.ID, err)
	}
	return nil
}

func (r *PgxAssetRepository) FindAssetByID(ctx context.Context, id string) (*domain.AssetRecord, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE id = $1;`
	m, err := collectOne[models.Asset](ctx, r.Pool, "find asset "+id, query, id)
	if err != nil {
		return nil, err
	}
	a := toDomainAsset(*m)
	return &a, nil
}

func (r *PgxAssetRepository) ListAssets(ctx context.Context) ([]domain.AssetRecord, error) {
	query := `SELECT ` + assetColumns + ` FROM assets ORDER BY purchase_date DESC, name;`
	ms, err := collect[models.Asset](ctx, r.Pool, "list assets", query)
	if err != nil {
		return nil, err
	}
	out := make([]domain.AssetRecord, len(ms))
	for i, m := range ms {
		out[i] = toDomainAsset(m)
	}
	return out, nil
}

// TouchAsset only stamps the advisory marker. Cost and useful life are never written here.
func (r *PgxAssetRepository) TouchAsset(ctx context.Context, id string, userID string, now time.Time) error {
	query := `
		UPDATE assets
		SET last_updated = $2, last_updated_at = $2, last_updated_by = $3
		WHERE id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, id, now, userID)
	if err != nil {
		return storeError("touch asset "+id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: asset %s", apperrors.ErrNotFound, id)
	}
	return nil
}
