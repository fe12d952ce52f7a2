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
)

// investmentService records capital contributions. There is no delete path.
type investmentService struct {
	BaseService
	investmentRepo portsrepo.InvestmentRepositoryFacade
}

// NewInvestmentService creates the investment service.
func NewInvestmentService(repo portsrepo.InvestmentRepositoryFacade, opts ...RecordOption) portssvc.InvestmentSvcFacade {
	svc := &investmentService{investmentRepo: repo}
	for _, opt := range opts {
		opt(&svc.BaseService)
	}
	return svc
}

var _ portssvc.InvestmentSvcFacade = (*investmentService)(nil)

func (s *investmentService) AddInvestment(ctx context.Context, req dto.CreateInvestmentRequest, userID string) (*domain.InvestmentRecord, error) {
	investment := domain.InvestmentRecord{
		ID:          uuid.NewString(),
		Date:        req.Date,
		Investor:    req.Investor,
		Amount:      req.Amount,
		Note:        req.Note,
		AuditFields: newAuditFields(s.Now(), userID),
	}
	if err := validateRecord(investment); err != nil {
		return nil, err
	}

	if err := s.investmentRepo.SaveInvestment(ctx, investment); err != nil {
		s.LogError(ctx, err, "Failed to save investment", slog.String("investment_id", investment.ID))
		return nil, fmt.Errorf("failed to save investment: %w", err)
	}
	s.LogInfo(ctx, "Investment recorded", slog.String("investment_id", investment.ID), slog.String("investor", investment.Investor))
	return &investment, nil
}

func (s *investmentService) ListInvestments(ctx context.Context, window analytics.Window) ([]domain.InvestmentRecord, error) {
	return listInWindow(ctx, &s.BaseService, "investment", window, s.investmentRepo.ListInvestments)
}
