package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/shop_bookkeeping/internal/apperrors"
	"github.com/SscSPs/shop_bookkeeping/internal/core/domain"
	portsrepo "github.com/SscSPs/shop_bookkeeping/internal/core/ports/repositories"
	"github.com/SscSPs/shop_bookkeeping/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCategoryRepository struct {
	BaseRepository
}

func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepositoryFacade {
	return &PgxCategoryRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

// SaveCategory relies on the (kind, lower(name)) unique index for duplicates.
func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, c domain.Category) error {
	query := `
		INSERT INTO categories (id, kind, name, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5);
	`
	if _, err := r.Pool.Exec(ctx, query, c.ID, string(c.Kind), c.Name, c.CreatedAt, c.CreatedBy); err != nil {
		return storeError("save category "+c.Name, err)
	}
	return nil
}

func (r *PgxCategoryRepository) ListCategories(ctx context.Context, kind domain.CategoryKind) ([]domain.Category, error) {
	query := `
		SELECT id, kind, name, created_at, created_by
		FROM categories
		WHERE kind = $1
		ORDER BY lower(name);
	`
	ms, err := collect[models.Category](ctx, r.Pool, "list categories", query, string(kind))
	if err != nil {
		return nil, err
	}
	out := make([]domain.Category, len(ms))
	for i, m := range ms {
		out[i] = domain.Category{
			ID:        m.ID,
			Kind:      domain.CategoryKind(m.Kind),
			Name:      m.Name,
			CreatedAt: m.CreatedAt.UTC(),
			CreatedBy: m.CreatedBy,
		}
	}
	return out, nil
}

func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, kind domain.CategoryKind, id string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM categories WHERE kind = $1 AND id = $2;`, string(kind), id)
	if err != nil {
		return storeError("delete category "+id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s category %s", apperrors.ErrNotFound, kind, id)
	}
	return nil
}
