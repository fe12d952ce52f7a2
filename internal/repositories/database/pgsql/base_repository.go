package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/shop_bookkeeping/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pgUniqueViolation = "23505"

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Ping checks that the database answers.
func (r *BaseRepository) Ping(ctx context.Context) error {
	if err := r.Pool.Ping(ctx); err != nil {
		return storeError("ping", err)
	}
	return nil
}

// softDelete flags a live row of table as deleted.
func (r *BaseRepository) softDelete(ctx context.Context, table, id, userID string, now time.Time) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET is_deleted = TRUE, deleted_at = $2, last_updated_at = $2, last_updated_by = $3
		WHERE id = $1 AND NOT is_deleted;
	`, table)
	tag, err := r.Pool.Exec(ctx, query, id, now, userID)
	if err != nil {
		return storeError("soft delete "+table, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: no live %s row with id %s", apperrors.ErrNotFound, table, id)
	}
	return nil
}

// restore clears the deleted flag of a soft-deleted row of table.
func (r *BaseRepository) restore(ctx context.Context, table, id, userID string, now time.Time) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET is_deleted = FALSE, restored_at = $2, last_updated_at = $2, last_updated_by = $3
		WHERE id = $1 AND is_deleted;
	`, table)
	tag, err := r.Pool.Exec(ctx, query, id, now, userID)
	if err != nil {
		return storeError("restore "+table, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: no deleted %s row with id %s", apperrors.ErrNotFound, table, id)
	}
	return nil
}

// collect runs query and scans every row into M by column name.
func collect[M any](ctx context.Context, pool *pgxpool.Pool, op, query string, args ...any) ([]M, error) {
	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return nil, storeError(op, err)
	}
	out, err := pgx.CollectRows(rows, pgx.RowToStructByName[M])
	if err != nil {
		return nil, storeError(op, err)
	}
	return out, nil
}

// collectOne is collect for a single row; no row maps to apperrors.ErrNotFound.
func collectOne[M any](ctx context.Context, pool *pgxpool.Pool, op, query string, args ...any) (*M, error) {
	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return nil, storeError(op, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[M])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, apperrors.ErrNotFound)
		}
		return nil, storeError(op, err)
	}
	return &m, nil
}

// storeError marks an unexpected database failure as a transient store error.
// Unique violations become apperrors.ErrDuplicate.
func storeError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return fmt.Errorf("%s: %w: %s", op, apperrors.ErrDuplicate, pgErr.ConstraintName)
	}
	return fmt.Errorf("%s: %w: %w", op, apperrors.ErrStoreUnavailable, err)
}

func timePtrUTC(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
