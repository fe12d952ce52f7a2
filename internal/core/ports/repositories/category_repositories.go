package repositories

import (
	"context"

	"github.com/SscSPs/shop_bookkeeping/internal/core/domain"
)

// CategoryRepositoryFacade stores the picker lists. Categories are hard-deleted.
type CategoryRepositoryFacade interface {
	// SaveCategory returns apperrors.ErrDuplicate when the kind already has the name.
	SaveCategory(ctx context.Context, category domain.Category) error

	// ListCategories returns the categories of one kind ordered by name.
	ListCategories(ctx context.Context, kind domain.CategoryKind) ([]domain.Category, error)

	DeleteCategory(ctx context.Context, kind domain.CategoryKind, id string) error
}
