package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/shop_bookkeeping/internal/apperrors"
	"github.com/SscSPs/shop_bookkeeping/internal/core/domain"
	portsrepo "github.com/SscSPs/shop_bookkeeping/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/shop_bookkeeping/internal/core/ports/services"
	"github.com/SscSPs/shop_bookkeeping/internal/dto"
	"github.com/google/uuid"
)

type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCategoryService creates the picker list service.
func NewCategoryService(repo portsrepo.CategoryRepositoryFacade, opts ...RecordOption) portssvc.CategorySvcFacade {
	svc := &categoryService{categoryRepo: repo}
	for _, opt := range opts {
		opt(&svc.BaseService)
	}
	return svc
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) AddCategory(ctx context.Context, kind domain.CategoryKind, req dto.CreateCategoryRequest, userID string) (*domain.Category, error) {
	if _, err := domain.ParseCategoryKind(string(kind)); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name is required", apperrors.ErrValidation)
	}

	category := domain.Category{
		ID:        uuid.NewString(),
		Kind:      kind,
		Name:      name,
		CreatedAt: s.Now(),
		CreatedBy: userID,
	}
	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: %s %q already exists", apperrors.ErrDuplicate, kind, name)
		}
		s.LogError(ctx, err, "Failed to save category", slog.String("kind", string(kind)), slog.String("name", name))
		return nil, fmt.Errorf("failed to save category: %w", err)
	}
	return &category, nil
}

func (s *categoryService) ListCategories(ctx context.Context, kind domain.CategoryKind) ([]domain.Category, error) {
	if _, err := domain.ParseCategoryKind(string(kind)); err != nil {
		return nil, err
	}
	categories, err := s.categoryRepo.ListCategories(ctx, kind)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories", slog.String("kind", string(kind)))
		return nil, fmt.Errorf("failed to list %s categories: %w", kind, err)
	}
	return categories, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, kind domain.CategoryKind, id string) error {
	if _, err := domain.ParseCategoryKind(string(kind)); err != nil {
		return err
	}
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: category id is required", apperrors.ErrValidation)
	}
	if err := s.categoryRepo.DeleteCategory(ctx, kind, id); err != nil {
		s.LogError(ctx, err, "Failed to delete category", slog.String("kind", string(kind)), slog.String("id", id))
		return fmt.Errorf("failed to delete category %s: %w", id, err)
	}
	return nil
}
