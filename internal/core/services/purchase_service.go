package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/shop_bookkeeping/internal/core/analytics"
	"github.com/SscSPs/shop_bookkeeping/internal/core/domain"
	portsrepo "github.com/SscSPs/shop_bookkeeping/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/shop_bookkeeping/internal/core/ports/services"
	"github.com/SscSPs/shop_bookkeeping/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type purchaseService struct {
	recordLifecycle
	purchaseRepo portsrepo.PurchaseRepositoryFacade
}

// NewPurchaseService creates the purchase service.
func NewPurchaseService(repo portsrepo.PurchaseRepositoryFacade, opts ...RecordOption) portssvc.PurchaseSvcFacade {
	return &purchaseService{
		recordLifecycle: newRecordLifecycle("purchase", repo, opts),
		purchaseRepo:    repo,
	}
}

var _ portssvc.PurchaseSvcFacade = (*purchaseService)(nil)

func (s *purchaseService) AddPurchase(ctx context.Context, req dto.CreatePurchaseRequest, userID string) (*domain.PurchaseRecord, error) {
	purchase := domain.PurchaseRecord{
		ID:          uuid.NewString(),
		Date:        req.Date,
		Product:     req.Product,
		Quantity:    req.Quantity,
		Price:       req.Price,
		Total:       req.Price.Mul(decimal.NewFromInt(req.Quantity)),
		Supplier:    req.Supplier,
		Gender:      req.Gender,
		Color:       req.Color,
		DialColor:   req.DialColor,
		Notes:       req.Notes,
		AuditFields: newAuditFields(s.Now(), userID),
	}
	if err := validateRecord(purchase); err != nil {
		s.LogDebug(ctx, "Rejected purchase", slog.String("reason", err.Error()))
		return nil, err
	}

	if err := s.purchaseRepo.SavePurchase(ctx, purchase); err != nil {
		s.LogError(ctx, err, "Failed to save purchase", slog.String("purchase_id", purchase.ID))
		return nil, fmt.Errorf("failed to save purchase: %w", err)
	}

	s.LogInfo(ctx, "Purchase recorded",
		slog.String("purchase_id", purchase.ID),
		slog.String("product", purchase.Product),
		slog.Int64("quantity", purchase.Quantity))
	return &purchase, nil
}

func (s *purchaseService) ListPurchases(ctx context.Context, window analytics.Window) ([]domain.PurchaseRecord, error) {
	return listInWindow(ctx, &s.BaseService, "purchase", window, s.purchaseRepo.ListPurchases)
}

func (s *purchaseService) ListDeletedPurchases(ctx context.Context) ([]domain.PurchaseRecord, error) {
	purchases, err := s.purchaseRepo.ListDeletedPurchases(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list deleted purchases")
		return nil, fmt.Errorf("failed to list deleted purchases: %w", err)
	}
	return purchases, nil
}
