package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/shop_bookkeeping/internal/apperrors"
	"github.com/SscSPs/shop_bookkeeping/internal/core/analytics"
	"github.com/SscSPs/shop_bookkeeping/internal/core/domain"
	portsrepo "github.com/SscSPs/shop_bookkeeping/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/shop_bookkeeping/internal/core/ports/services"
	"github.com/SscSPs/shop_bookkeeping/internal/dto"
	"github.com/google/uuid"
)

type assetService struct {
	BaseService
	assetRepo portsrepo.AssetRepositoryFacade
}

// NewAssetService creates the asset service. Depreciation is always derived
// from the stored cost and useful life as of the service clock's day.
func NewAssetService(repo portsrepo.AssetRepositoryFacade, opts ...RecordOption) portssvc.AssetSvcFacade {
	svc := &assetService{assetRepo: repo}
	for _, opt := range opts {
		opt(&svc.BaseService)
	}
	return svc
}

var _ portssvc.AssetSvcFacade = (*assetService)(nil)

func (s *assetService) AddAsset(ctx context.Context, req dto.CreateAssetRequest, userID string) (*domain.AssetValuation, error) {
	asset := domain.AssetRecord{
		ID:              uuid.NewString(),
		Name:            req.Name,
		PurchaseDate:    req.PurchaseDate,
		Cost:            req.Cost,
		UsefulLifeYears: req.UsefulLife,
		Note:            req.Note,
		AuditFields:     newAuditFields(s.Now(), userID),
	}
	if err := validateRecord(asset); err != nil {
		return nil, err
	}

	if err := s.assetRepo.SaveAsset(ctx, asset); err != nil {
		s.LogError(ctx, err, "Failed to save asset", slog.String("asset_id", asset.ID))
		return nil, fmt.Errorf("failed to save asset: %w", err)
	}
	s.LogInfo(ctx, "Asset registered", slog.String("asset_id", asset.ID), slog.String("name", asset.Name))

	return &domain.AssetValuation{Asset: asset, Depreciation: analytics.Depreciate(asset, s.Today())}, nil
}

func (s *assetService) ListAssets(ctx context.Context) ([]domain.AssetValuation, error) {
	assets, err := s.assetRepo.ListAssets(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list assets")
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	today := s.Today()
	out := make([]domain.AssetValuation, len(assets))
	for i, a := range assets {
		out[i] = domain.AssetValuation{Asset: a, Depreciation: analytics.Depreciate(a, today)}
	}
	return out, nil
}

func (s *assetService) TouchAssetDepreciation(ctx context.Context, id string, userID string) (*domain.AssetValuation, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: asset id is required", apperrors.ErrValidation)
	}
	asset, err := s.assetRepo.FindAssetByID(ctx, id)
	if err != nil {
		s.LogError(ctx, err, "Failed to find asset", slog.String("asset_id", id))
		return nil, fmt.Errorf("failed to find asset %s: %w", id, err)
	}

	now := s.Now()
	if err := s.assetRepo.TouchAsset(ctx, id, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to stamp asset", slog.String("asset_id", id))
		return nil, fmt.Errorf("failed to update asset %s: %w", id, err)
	}
	asset.LastUpdated = &now
	asset.LastUpdatedAt = now
	asset.LastUpdatedBy = userID

	return &domain.AssetValuation{Asset: *asset, Depreciation: analytics.Depreciate(*asset, domain.DayOf(now))}, nil
}
