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
	"github.com/shopspring/decimal"
)

type saleService struct {
	recordLifecycle
	saleRepo portsrepo.SaleRepositoryFacade
}

// NewSaleService creates the sale service.
func NewSaleService(repo portsrepo.SaleRepositoryFacade, opts ...RecordOption) portssvc.SaleSvcFacade {
	return &saleService{
		recordLifecycle: newRecordLifecycle("sale", repo, opts),
		saleRepo:        repo,
	}
}

var _ portssvc.SaleSvcFacade = (*saleService)(nil)

func (s *saleService) AddSale(ctx context.Context, req dto.CreateSaleRequest, userID string) (*domain.SaleRecord, error) {
	now := s.Now()
	sale := domain.SaleRecord{
		ID:          uuid.NewString(),
		Date:        req.Date,
		Product:     req.Product,
		OrderNumber: req.OrderNumber,
		Quantity:    req.Quantity,
		Price:       req.Price,
		Total:       req.Price.Mul(decimal.NewFromInt(req.Quantity)),
		Notes:       req.Notes,
		AuditFields: newAuditFields(now, userID),
	}
	if err := validateRecord(sale); err != nil {
		s.LogDebug(ctx, "Rejected sale", slog.String("reason", err.Error()))
		return nil, err
	}

	if err := s.saleRepo.SaveSale(ctx, sale); err != nil {
		s.LogError(ctx, err, "Failed to save sale", slog.String("sale_id", sale.ID))
		return nil, fmt.Errorf("failed to save sale: %w", err)
	}

	s.LogInfo(ctx, "Sale recorded",
		slog.String("sale_id", sale.ID),
		slog.String("product", sale.Product),
		slog.String("total", sale.Total.String()))
	return &sale, nil
}

func (s *saleService) ListSales(ctx context.Context, window analytics.Window) ([]domain.SaleRecord, error) {
	return listInWindow(ctx, &s.BaseService, "sale", window, s.saleRepo.ListSales)
}

func (s *saleService) GetSale(ctx context.Context, id string) (*domain.SaleRecord, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: sale id is required", apperrors.ErrValidation)
	}
	sale, err := s.saleRepo.FindSaleByID(ctx, id)
	if err != nil {
		s.LogError(ctx, err, "Failed to find sale", slog.String("sale_id", id))
		return nil, fmt.Errorf("failed to find sale %s: %w", id, err)
	}
	return sale, nil
}

func (s *saleService) ListDeletedSales(ctx context.Context) ([]domain.SaleRecord, error) {
	sales, err := s.saleRepo.ListDeletedSales(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list deleted sales")
		return nil, fmt.Errorf("failed to list deleted sales: %w", err)
	}
	return sales, nil
}
