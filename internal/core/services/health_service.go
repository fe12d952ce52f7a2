package services

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/shop_bookkeeping/internal/apperrors"
	portsrepo "github.com/SscSPs/shop_bookkeeping/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/shop_bookkeeping/internal/core/ports/services"
)

const healthCheckTimeout = 2 * time.Second

type healthService struct {
	BaseService
	checker portsrepo.HealthChecker
}

func NewHealthService(checker portsrepo.HealthChecker) portssvc.HealthSvcFacade {
	return &healthService{checker: checker}
}

func (s *healthService) Check(ctx context.Context) error {
	if s.checker == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()
	if err := s.checker.Ping(ctx); err != nil {
		s.LogError(ctx, err, "Health check failed")
		return fmt.Errorf("%w: %w", apperrors.ErrStoreUnavailable, err)
	}
	return nil
}
