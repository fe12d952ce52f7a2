package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/shop_bookkeeping/internal/apperrors"
	"github.com/SscSPs/shop_bookkeeping/internal/core/analytics"
	portsrepo "github.com/SscSPs/shop_bookkeeping/internal/core/ports/repositories"
)

// RecordOption configures the record services.
type RecordOption func(*BaseService)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) RecordOption {
	return func(s *BaseService) {
		s.Clock = now
	}
}

// recordLifecycle implements soft delete and restore for one collection.
type recordLifecycle struct {
	BaseService
	kind    string
	deleter portsrepo.SoftDeleter
}

func newRecordLifecycle(kind string, deleter portsrepo.SoftDeleter, opts []RecordOption) recordLifecycle {
	l := recordLifecycle{kind: kind, deleter: deleter}
	for _, opt := range opts {
		opt(&l.BaseService)
	}
	return l
}

func (l *recordLifecycle) SoftDelete(ctx context.Context, id string, userID string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: %s id is required", apperrors.ErrValidation, l.kind)
	}
	if err := l.deleter.SoftDelete(ctx, id, userID, l.Now()); err != nil {
		l.LogError(ctx, err, "Failed to soft delete record", slog.String("kind", l.kind), slog.String("id", id))
		return fmt.Errorf("failed to delete %s %s: %w", l.kind, id, err)
	}
	l.LogInfo(ctx, "Record soft deleted", slog.String("kind", l.kind), slog.String("id", id), slog.String("user_id", userID))
	return nil
}

func (l *recordLifecycle) Restore(ctx context.Context, id string, userID string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: %s id is required", apperrors.ErrValidation, l.kind)
	}
	if err := l.deleter.Restore(ctx, id, userID, l.Now()); err != nil {
		l.LogError(ctx, err, "Failed to restore record", slog.String("kind", l.kind), slog.String("id", id))
		return fmt.Errorf("failed to restore %s %s: %w", l.kind, id, err)
	}
	l.LogInfo(ctx, "Record restored", slog.String("kind", l.kind), slog.String("id", id), slog.String("user_id", userID))
	return nil
}

// listInWindow loads a collection and narrows it to the window, newest first.
// The window is checked before the store is touched.
func listInWindow[T analytics.Dated](ctx context.Context, s *BaseService, kind string, w analytics.Window, load func(context.Context) ([]T, error)) ([]T, error) {
	today := s.Today()
	if _, _, err := w.Resolve(today); err != nil {
		return nil, err
	}
	all, err := load(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list records", slog.String("kind", kind))
		return nil, fmt.Errorf("failed to list %s records: %w", kind, err)
	}
	out, err := analytics.Filter(all, w, today)
	if err != nil {
		return nil, err
	}
	analytics.SortMostRecentFirst(out)
	return out, nil
}
