package repositories

import (
	"context"
	"time"
)

// SoftDeleter flips the soft-delete flag on a record collection.
type SoftDeleter interface {
	// SoftDelete marks a live record as deleted. It returns apperrors.ErrNotFound
	// when no live record has the given ID.
	SoftDelete(ctx context.Context, id string, userID string, now time.Time) error

	// Restore clears the deleted flag of a deleted record. It returns
	// apperrors.ErrNotFound when no deleted record has the given ID.
	Restore(ctx context.Context, id string, userID string, now time.Time) error
}

// HealthChecker reports whether the record store is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
