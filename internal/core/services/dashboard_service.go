package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/shop_bookkeeping/internal/apperrors"
	"github.com/SscSPs/shop_bookkeeping/internal/core/analytics"
	"github.com/SscSPs/shop_bookkeeping/internal/core/domain"
	portsrepo "github.com/SscSPs/shop_bookkeeping/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/shop_bookkeeping/internal/core/ports/services"
	"golang.org/x/sync/errgroup"
)

// dashboardService computes every dashboard panel from freshly fetched records.
// Nothing is cached between calls.
type dashboardService struct {
	BaseService
	repos       portsrepo.RepositoryProvider
	cogsMethod  analytics.COGSMethod
	marketing   analytics.MarketingMatcher
	generations *GenerationTracker
}

// DashboardOption is a functional option for configuring the dashboard service
type DashboardOption func(*dashboardService)

// WithCOGSMethod sets how cost of goods sold is derived.
func WithCOGSMethod(m analytics.COGSMethod) DashboardOption {
	return func(s *dashboardService) {
		s.cogsMethod = m
	}
}

// WithMarketingMatcher overrides the marketing keyword list.
func WithMarketingMatcher(m analytics.MarketingMatcher) DashboardOption {
	return func(s *dashboardService) {
		s.marketing = m
	}
}

// WithGenerationTracker shares a tracker between service instances.
func WithGenerationTracker(t *GenerationTracker) DashboardOption {
	return func(s *dashboardService) {
		s.generations = t
	}
}

// WithDashboardClock replaces time.Now.
func WithDashboardClock(now func() time.Time) DashboardOption {
	return func(s *dashboardService) {
		s.Clock = now
	}
}

// NewDashboardService creates the dashboard service.
func NewDashboardService(repos portsrepo.RepositoryProvider, options ...DashboardOption) portssvc.DashboardSvcFacade {
	svc := &dashboardService{
		repos:       repos,
		cogsMethod:  analytics.COGSPurchases,
		marketing:   analytics.NewMarketingMatcher(analytics.DefaultMarketingKeywords...),
		generations: NewGenerationTracker(),
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.DashboardSvcFacade = (*dashboardService)(nil)

// begin resolves the window and registers the request generation.
// Both failures happen before any record is fetched.
func (s *dashboardService) begin(ctx context.Context, view portssvc.DashboardView, req portssvc.DashboardRequest) (domain.Day, error) {
	today := s.Today()
	if _, _, err := req.Window.Resolve(today); err != nil {
		return domain.Day{}, err
	}
	if !s.generations.Observe(req.UserID, view, req.Generation) {
		s.LogDebug(ctx, "Dashboard request already superseded",
			slog.String("view", string(view)), slog.Uint64("generation", req.Generation))
		return domain.Day{}, fmt.Errorf("%w: %s generation %d", apperrors.ErrStaleRequest, view, req.Generation)
	}
	return today, nil
}

// finish fails the read when a newer generation arrived while it was fetching.
func (s *dashboardService) finish(ctx context.Context, view portssvc.DashboardView, req portssvc.DashboardRequest) error {
	if s.generations.IsCurrent(req.UserID, view, req.Generation) {
		return nil
	}
	s.LogDebug(ctx, "Discarding superseded dashboard result",
		slog.String("view", string(view)), slog.Uint64("generation", req.Generation))
	return fmt.Errorf("%w: %s generation %d", apperrors.ErrStaleRequest, view, req.Generation)
}

type bookRecords struct {
	sales       []domain.SaleRecord
	purchases   []domain.PurchaseRecord
	expenses    []domain.ExpenseRecord
	investments []domain.InvestmentRecord
	assets      []domain.AssetRecord
}

type fetchSet struct {
	sales, purchases, expenses, investments, assets bool
}

func (s *dashboardService) fetch(ctx context.Context, want fetchSet) (*bookRecords, error) {
	recs, err := fetchBook(ctx, s.repos, want)
	if err != nil {
		s.LogError(ctx, err, "Failed to load dashboard records")
		return nil, err
	}
	return recs, nil
}

// fetchBook loads the requested collections concurrently. Any failure fails
// the whole read so no partial aggregate is ever produced.
func fetchBook(ctx context.Context, repos portsrepo.RepositoryProvider, want fetchSet) (*bookRecords, error) {
	var out bookRecords
	g, gctx := errgroup.WithContext(ctx)
	if want.sales {
		g.Go(func() (err error) {
			out.sales, err = repos.SaleRepo.ListSales(gctx)
			return wrapFetch("sales", err)
		})
	}
	if want.purchases {
		g.Go(func() (err error) {
			out.purchases, err = repos.PurchaseRepo.ListPurchases(gctx)
			return wrapFetch("purchases", err)
		})
	}
	if want.expenses {
		g.Go(func() (err error) {
			out.expenses, err = repos.ExpenseRepo.ListExpenses(gctx)
			return wrapFetch("expenses", err)
		})
	}
	if want.investments {
		g.Go(func() (err error) {
			out.investments, err = repos.InvestmentRepo.ListInvestments(gctx)
			return wrapFetch("investments", err)
		})
	}
	if want.assets {
		g.Go(func() (err error) {
			out.assets, err = repos.AssetRepo.ListAssets(gctx)
			return wrapFetch("assets", err)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}

func wrapFetch(what string, err error) error {
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", what, err)
	}
	return nil
}

func (s *dashboardService) Metrics(ctx context.Context, req portssvc.DashboardRequest) (domain.DashboardMetrics, error) {
	today, err := s.begin(ctx, portssvc.ViewMetrics, req)
	if err != nil {
		return domain.DashboardMetrics{}, err
	}
	recs, err := s.fetch(ctx, fetchSet{sales: true, purchases: true, expenses: true, investments: true})
	if err != nil {
		return domain.DashboardMetrics{}, err
	}
	if err := s.finish(ctx, portssvc.ViewMetrics, req); err != nil {
		return domain.DashboardMetrics{}, err
	}

	in := analytics.MetricsInput{PurchaseHistory: recs.purchases}
	if in.Sales, err = analytics.Filter(recs.sales, req.Window, today); err != nil {
		return domain.DashboardMetrics{}, err
	}
	if in.Purchases, err = analytics.Filter(recs.purchases, req.Window, today); err != nil {
		return domain.DashboardMetrics{}, err
	}
	if in.Expenses, err = analytics.Filter(recs.expenses, req.Window, today); err != nil {
		return domain.DashboardMetrics{}, err
	}
	if in.Investments, err = analytics.Filter(recs.investments, req.Window, today); err != nil {
		return domain.DashboardMetrics{}, err
	}
	return analytics.ComputeMetrics(in, s.cogsMethod), nil
}

func (s *dashboardService) ExpenseBreakdown(ctx context.Context, req portssvc.DashboardRequest) (domain.ExpenseBreakdown, error) {
	today, err := s.begin(ctx, portssvc.ViewExpenses, req)
	if err != nil {
		return domain.ExpenseBreakdown{}, err
	}
	recs, err := s.fetch(ctx, fetchSet{expenses: true})
	if err != nil {
		return domain.ExpenseBreakdown{}, err
	}
	if err := s.finish(ctx, portssvc.ViewExpenses, req); err != nil {
		return domain.ExpenseBreakdown{}, err
	}

	expenses, err := analytics.Filter(recs.expenses, req.Window, today)
	if err != nil {
		return domain.ExpenseBreakdown{}, err
	}
	return analytics.BreakdownExpenses(expenses, s.marketing), nil
}

func (s *dashboardService) Stock(ctx context.Context, req portssvc.DashboardRequest) (domain.StockValuation, error) {
	// stock is a balance over the full history; the window is not applied
	if _, err := s.begin(ctx, portssvc.ViewStock, req); err != nil {
		return domain.StockValuation{}, err
	}
	recs, err := s.fetch(ctx, fetchSet{sales: true, purchases: true})
	if err != nil {
		return domain.StockValuation{}, err
	}
	if err := s.finish(ctx, portssvc.ViewStock, req); err != nil {
		return domain.StockValuation{}, err
	}
	return analytics.ValueStock(recs.purchases, recs.sales), nil
}

func (s *dashboardService) Assets(ctx context.Context, req portssvc.DashboardRequest) (domain.AssetPortfolio, error) {
	today, err := s.begin(ctx, portssvc.ViewAssets, req)
	if err != nil {
		return domain.AssetPortfolio{}, err
	}
	recs, err := s.fetch(ctx, fetchSet{assets: true})
	if err != nil {
		return domain.AssetPortfolio{}, err
	}
	if err := s.finish(ctx, portssvc.ViewAssets, req); err != nil {
		return domain.AssetPortfolio{}, err
	}
	return analytics.ValueAssets(recs.assets, today), nil
}
