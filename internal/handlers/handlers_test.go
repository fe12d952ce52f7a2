package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/shop_bookkeeping/internal/apperrors"
	"github.com/SscSPs/shop_bookkeeping/internal/core/analytics"
	"github.com/SscSPs/shop_bookkeeping/internal/core/domain"
	portssvc "github.com/SscSPs/shop_bookkeeping/internal/core/ports/services"
	"github.com/SscSPs/shop_bookkeeping/internal/dto"
	"github.com/SscSPs/shop_bookkeeping/internal/export"
	"github.com/SscSPs/shop_bookkeeping/internal/handlers"
	"github.com/SscSPs/shop_bookkeeping/internal/middleware"
	"github.com/SscSPs/shop_bookkeeping/internal/platform/config"
	"github.com/SscSPs/shop_bookkeeping/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const (
	testSecret = "handler-test-secret"
	testUserID = "owner-1"
)

// --- Mock SaleService ---
type MockSaleService struct {
	mock.Mock
}

func (m *MockSaleService) AddSale(ctx context.Context, req dto.CreateSaleRequest, userID string) (*domain.SaleRecord, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SaleRecord), args.Error(1)
}
func (m *MockSaleService) ListSales(ctx context.Context, window analytics.Window) ([]domain.SaleRecord, error) {
	args := m.Called(ctx, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SaleRecord), args.Error(1)
}
func (m *MockSaleService) ListDeletedSales(ctx context.Context) ([]domain.SaleRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SaleRecord), args.Error(1)
}
func (m *MockSaleService) GetSale(ctx context.Context, id string) (*domain.SaleRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SaleRecord), args.Error(1)
}
func (m *MockSaleService) SoftDelete(ctx context.Context, id string, userID string) error {
	return m.Called(ctx, id, userID).Error(0)
}
func (m *MockSaleService) Restore(ctx context.Context, id string, userID string) error {
	return m.Called(ctx, id, userID).Error(0)
}

var _ portssvc.SaleSvcFacade = (*MockSaleService)(nil)

// --- Mock DashboardService ---
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Metrics(ctx context.Context, req portssvc.DashboardRequest) (domain.DashboardMetrics, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.DashboardMetrics), args.Error(1)
}
func (m *MockDashboardService) ExpenseBreakdown(ctx context.Context, req portssvc.DashboardRequest) (domain.ExpenseBreakdown, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.ExpenseBreakdown), args.Error(1)
}
func (m *MockDashboardService) Stock(ctx context.Context, req portssvc.DashboardRequest) (domain.StockValuation, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.StockValuation), args.Error(1)
}
func (m *MockDashboardService) Assets(ctx context.Context, req portssvc.DashboardRequest) (domain.AssetPortfolio, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.AssetPortfolio), args.Error(1)
}

var _ portssvc.DashboardSvcFacade = (*MockDashboardService)(nil)

// --- Mock auth services ---
type MockAccessService struct {
	mock.Mock
}

func (m *MockAccessService) AuthenticateOwner(ctx context.Context, email, password string) (*domain.Principal, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Principal), args.Error(1)
}
func (m *MockAccessService) AuthorizeGoogleUser(ctx context.Context, email, name string, emailVerified bool) (*domain.Principal, error) {
	args := m.Called(ctx, email, name, emailVerified)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Principal), args.Error(1)
}

type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, principal domain.Principal) (string, time.Time, error) {
	args := m.Called(ctx, principal)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

type MockHealthService struct {
	mock.Mock
}

func (m *MockHealthService) Check(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// --- Test Suite Setup ---
type HandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	sales     *MockSaleService
	dashboard *MockDashboardService
	access    *MockAccessService
	tokens    *MockTokenService
	health    *MockHealthService
	token     string
}

func (s *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.sales = new(MockSaleService)
	s.dashboard = new(MockDashboardService)
	s.access = new(MockAccessService)
	s.tokens = new(MockTokenService)
	s.health = new(MockHealthService)

	cfg := &config.Config{JWTSecret: testSecret, IsProduction: true, LoginRateLimit: "100-M"}
	money, err := utils.NewCurrencyFormatter("USD")
	s.Require().NoError(err)

	s.router = gin.New()
	s.router.Use(middleware.StructuredLoggingMiddleware(slog.New(slog.DiscardHandler)))
	handlers.RegisterRoutes(s.router, cfg, &portssvc.ServiceContainer{
		Sale:         s.sales,
		Dashboard:    s.dashboard,
		Access:       s.access,
		TokenService: s.tokens,
		Health:       s.health,
	}, money)

	s.token, _, err = utils.GenerateJWT(testUserID, testSecret, time.Hour, "test")
	s.Require().NoError(err)
}

func (s *HandlerTestSuite) TearDownTest() {
	s.sales.AssertExpectations(s.T())
	s.dashboard.AssertExpectations(s.T())
	s.access.AssertExpectations(s.T())
	s.tokens.AssertExpectations(s.T())
	s.health.AssertExpectations(s.T())
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) do(method, path, body string, authed bool) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if authed {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *HandlerTestSuite) errorBody(w *httptest.ResponseRecorder) string {
	var body handlers.ErrorResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error
}

// --- Sales ---

func (s *HandlerTestSuite) TestCreateSale() {
	s.sales.On("AddSale", mock.Anything, mock.MatchedBy(func(r dto.CreateSaleRequest) bool {
		return r.Product == "Watch" && r.Quantity == 2 && r.Price.Equal(decimal.RequireFromString("12.5")) && r.Date.String() == "2024-06-01"
	}), testUserID).Return(&domain.SaleRecord{ID: "s1", Product: "Watch", Quantity: 2, Total: decimal.NewFromInt(25)}, nil).Once()

	w := s.do(http.MethodPost, "/api/v1/sales", `{"date":"2024-06-01","product":"Watch","quantity":2,"price":"12.5"}`, true)

	s.Equal(http.StatusCreated, w.Code)
	var got domain.SaleRecord
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	s.Equal("s1", got.ID)
	s.True(got.Total.Equal(decimal.NewFromInt(25)))
}

func (s *HandlerTestSuite) TestCreateSale_Rejections() {
	w := s.do(http.MethodPost, "/api/v1/sales", `{"date":"2024-06-01","product":"Watch","quantity":1,"price":"1"}`, false)
	s.Equal(http.StatusUnauthorized, w.Code)

	w = s.do(http.MethodPost, "/api/v1/sales", `{"product":`, true)
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPost, "/api/v1/sales", `{"date":"2024-06-01","product":"Watch","quantity":0,"price":"1"}`, true)
	s.Equal(http.StatusBadRequest, w.Code)

	s.sales.On("AddSale", mock.Anything, mock.Anything, testUserID).
		Return(nil, fmt.Errorf("%w: price must be positive", apperrors.ErrValidation)).Once()
	w = s.do(http.MethodPost, "/api/v1/sales", `{"date":"2024-06-01","product":"Watch","quantity":1,"price":"-1"}`, true)
	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(s.errorBody(w), "price must be positive")
}

func (s *HandlerTestSuite) TestListSales_Window() {
	from, to := domain.NewDay(2024, time.June, 1), domain.NewDay(2024, time.June, 30)
	s.sales.On("ListSales", mock.Anything, analytics.Window{Preset: analytics.PresetAll, From: &from, To: &to}).
		Return([]domain.SaleRecord{{ID: "s2"}, {ID: "s1"}}, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/sales?fromDate=2024-06-01&toDate=2024-06-30", "", true)
	s.Equal(http.StatusOK, w.Code)
	var got []domain.SaleRecord
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	s.Len(got, 2)

	w = s.do(http.MethodGet, "/api/v1/sales?range=last-year", "", true)
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do(http.MethodGet, "/api/v1/sales?fromDate=June", "", true)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestSaleLifecycle() {
	s.sales.On("SoftDelete", mock.Anything, "s1", testUserID).Return(nil).Once()
	s.sales.On("Restore", mock.Anything, "missing", testUserID).
		Return(fmt.Errorf("restore sale: %w", apperrors.ErrNotFound)).Once()
	s.sales.On("ListDeletedSales", mock.Anything).Return(nil, fmt.Errorf("list: %w", apperrors.ErrStoreUnavailable)).Once()

	w := s.do(http.MethodDelete, "/api/v1/sales/s1", "", true)
	s.Equal(http.StatusNoContent, w.Code)

	w = s.do(http.MethodPost, "/api/v1/sales/missing/restore", "", true)
	s.Equal(http.StatusNotFound, w.Code)

	w = s.do(http.MethodGet, "/api/v1/sales/deleted", "", true)
	s.Equal(http.StatusServiceUnavailable, w.Code)
	s.Equal("Failed to list deleted sales", s.errorBody(w))
}

func (s *HandlerTestSuite) TestGetSale() {
	s.sales.On("GetSale", mock.Anything, "s1").Return(&domain.SaleRecord{ID: "s1", Product: "Watch"}, nil).Once()
	s.sales.On("GetSale", mock.Anything, "missing").Return(nil, fmt.Errorf("find sale missing: %w", apperrors.ErrNotFound)).Once()

	w := s.do(http.MethodGet, "/api/v1/sales/s1", "", true)
	s.Equal(http.StatusOK, w.Code)
	var got domain.SaleRecord
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	s.Equal("Watch", got.Product)

	w = s.do(http.MethodGet, "/api/v1/sales/missing", "", true)
	s.Equal(http.StatusNotFound, w.Code)

	w = s.do(http.MethodGet, "/api/v1/sales/s1", "", false)
	s.Equal(http.StatusUnauthorized, w.Code)
}

// --- Dashboard ---

func (s *HandlerTestSuite) TestDashboardMetrics() {
	s.dashboard.On("Metrics", mock.Anything, portssvc.DashboardRequest{
		UserID:     testUserID,
		Window:     analytics.Window{Preset: analytics.PresetLast7Days},
		Generation: 3,
	}).Return(domain.DashboardMetrics{
		TotalSales:  decimal.RequireFromString("1000"),
		GrossProfit: decimal.RequireFromString("600.004"),
		GrossMargin: decimal.RequireFromString("60.0004"),
		SalesCount:  4,
	}, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/dashboard/metrics?range=last-7-days&generation=3", "", true)
	s.Require().Equal(http.StatusOK, w.Code)

	var got dto.MetricsResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	s.Equal(uint64(3), got.Generation)
	s.Equal("USD", got.Currency)
	s.True(got.Metrics.GrossProfit.Equal(decimal.RequireFromString("600")))
	s.Equal("60.00%", got.Display["grossMargin"])
	s.Equal(4, got.Metrics.SalesCount)
}

func (s *HandlerTestSuite) TestDashboardErrors() {
	s.dashboard.On("Metrics", mock.Anything, mock.MatchedBy(func(r portssvc.DashboardRequest) bool { return r.Generation == 1 })).
		Return(domain.DashboardMetrics{}, fmt.Errorf("metrics: %w", apperrors.ErrStaleRequest)).Once()
	s.dashboard.On("Metrics", mock.Anything, mock.MatchedBy(func(r portssvc.DashboardRequest) bool { return r.Generation == 2 })).
		Return(domain.DashboardMetrics{}, fmt.Errorf("fetch sales: %w: connection refused", apperrors.ErrStoreUnavailable)).Once()

	w := s.do(http.MethodGet, "/api/v1/dashboard/metrics?generation=1", "", true)
	s.Equal(http.StatusConflict, w.Code)

	w = s.do(http.MethodGet, "/api/v1/dashboard/metrics?generation=2", "", true)
	s.Equal(http.StatusServiceUnavailable, w.Code)
	s.NotContains(s.errorBody(w), "connection refused")

	w = s.do(http.MethodGet, "/api/v1/dashboard/metrics?range=forever", "", true)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestDashboardStock() {
	s.dashboard.On("Stock", mock.Anything, mock.Anything).Return(domain.StockValuation{
		Lines:         []domain.StockLine{{Product: "A", Quantity: 6, AverageCost: decimal.NewFromInt(5), CurrentValue: decimal.NewFromInt(30)}},
		TotalQuantity: 6,
		TotalValue:    decimal.NewFromInt(30),
	}, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/dashboard/stock", "", true)
	s.Require().Equal(http.StatusOK, w.Code)
	var got dto.StockResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	s.Len(got.Lines, 1)
	s.Equal(int64(6), got.TotalQuantity)
	s.Equal("$30.00", got.Display)
}

func (s *HandlerTestSuite) TestExportDashboard() {
	s.dashboard.On("Metrics", mock.Anything, mock.MatchedBy(func(r portssvc.DashboardRequest) bool { return r.Generation == 0 })).
		Return(domain.DashboardMetrics{}, nil).Once()
	s.dashboard.On("ExpenseBreakdown", mock.Anything, mock.Anything).Return(domain.ExpenseBreakdown{}, nil).Once()
	s.dashboard.On("Stock", mock.Anything, mock.Anything).Return(domain.StockValuation{}, nil).Once()
	s.dashboard.On("Assets", mock.Anything, mock.Anything).Return(domain.AssetPortfolio{}, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/export/dashboard.xlsx?generation=9", "", true)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Equal(export.XLSXContentType, w.Header().Get("Content-Type"))
	s.Contains(w.Header().Get("Content-Disposition"), "dashboard-")
	s.NotZero(w.Body.Len())
}

// --- Auth and health ---

func (s *HandlerTestSuite) TestLogin() {
	principal := domain.NewPrincipal("owner@shop.test", "", domain.ProviderPassword)
	expires := time.Date(2024, 7, 1, 22, 0, 0, 0, time.UTC)
	s.access.On("AuthenticateOwner", mock.Anything, "owner@shop.test", "s3cret").Return(&principal, nil).Once()
	s.access.On("AuthenticateOwner", mock.Anything, "owner@shop.test", "wrong").
		Return(nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)).Once()
	s.tokens.On("GenerateAccessToken", mock.Anything, principal).Return("jwt-token", expires, nil).Once()

	w := s.do(http.MethodPost, "/api/v1/auth/login", `{"email":"owner@shop.test","password":"s3cret"}`, false)
	s.Require().Equal(http.StatusOK, w.Code)
	var got dto.LoginResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	s.Equal("jwt-token", got.Token)
	s.Equal(principal.ID, got.UserID)
	s.True(expires.Equal(got.ExpiresAt))

	w = s.do(http.MethodPost, "/api/v1/auth/login", `{"email":"owner@shop.test","password":"wrong"}`, false)
	s.Equal(http.StatusUnauthorized, w.Code)
	s.Equal("Invalid email or password", s.errorBody(w))

	w = s.do(http.MethodPost, "/api/v1/auth/login", `{"email":"not-an-email","password":"x"}`, false)
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("Invalid request body", s.errorBody(w))
}

func (s *HandlerTestSuite) TestLogin_TokenSigningFailure() {
	principal := domain.NewPrincipal("owner@shop.test", "", domain.ProviderPassword)
	s.access.On("AuthenticateOwner", mock.Anything, "owner@shop.test", "s3cret").Return(&principal, nil).Once()
	s.tokens.On("GenerateAccessToken", mock.Anything, principal).Return("", time.Time{}, fmt.Errorf("no signing key")).Once()

	w := s.do(http.MethodPost, "/api/v1/auth/login", `{"email":"owner@shop.test","password":"s3cret"}`, false)
	s.Equal(http.StatusInternalServerError, w.Code)
	s.Equal("Failed to generate token", s.errorBody(w))
}

func (s *HandlerTestSuite) TestHealth() {
	s.health.On("Check", mock.Anything).Return(nil).Once()
	w := s.do(http.MethodGet, "/health", "", false)
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"status":"ok"}`, w.Body.String())

	s.health.On("Check", mock.Anything).Return(fmt.Errorf("ping: %w", apperrors.ErrStoreUnavailable)).Once()
	w = s.do(http.MethodGet, "/health", "", false)
	s.Equal(http.StatusServiceUnavailable, w.Code)
}

func (s *HandlerTestSuite) TestCategoryKindValidated() {
	w := s.do(http.MethodGet, "/api/v1/categories/brand", "", true)
	s.Equal(http.StatusBadRequest, w.Code)
}
