package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/shop_bookkeeping/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Sales ---

type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) FindSaleByID(ctx context.Context, id string) (*domain.SaleRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SaleRecord), args.Error(1)
}

func (m *MockSaleRepository) ListSales(ctx context.Context) ([]domain.SaleRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SaleRecord), args.Error(1)
}

func (m *MockSaleRepository) ListDeletedSales(ctx context.Context) ([]domain.SaleRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SaleRecord), args.Error(1)
}

func (m *MockSaleRepository) SaveSale(ctx context.Context, sale domain.SaleRecord) error {
	return m.Called(ctx, sale).Error(0)
}

func (m *MockSaleRepository) SoftDelete(ctx context.Context, id string, userID string, now time.Time) error {
	return m.Called(ctx, id, userID, now).Error(0)
}

func (m *MockSaleRepository) Restore(ctx context.Context, id string, userID string, now time.Time) error {
	return m.Called(ctx, id, userID, now).Error(0)
}

// --- Purchases ---

type MockPurchaseRepository struct {
	mock.Mock
}

func (m *MockPurchaseRepository) FindPurchaseByID(ctx context.Context, id string) (*domain.PurchaseRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseRecord), args.Error(1)
}

func (m *MockPurchaseRepository) ListPurchases(ctx context.Context) ([]domain.PurchaseRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PurchaseRecord), args.Error(1)
}

func (m *MockPurchaseRepository) ListDeletedPurchases(ctx context.Context) ([]domain.PurchaseRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PurchaseRecord), args.Error(1)
}

func (m *MockPurchaseRepository) SavePurchase(ctx context.Context, purchase domain.PurchaseRecord) error {
	return m.Called(ctx, purchase).Error(0)
}

func (m *MockPurchaseRepository) SoftDelete(ctx context.Context, id string, userID string, now time.Time) error {
	return m.Called(ctx, id, userID, now).Error(0)
}

func (m *MockPurchaseRepository) Restore(ctx context.Context, id string, userID string, now time.Time) error {
	return m.Called(ctx, id, userID, now).Error(0)
}

// --- Expenses ---

type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) FindExpenseByID(ctx context.Context, id string) (*domain.ExpenseRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExpenseRecord), args.Error(1)
}

func (m *MockExpenseRepository) ListExpenses(ctx context.Context) ([]domain.ExpenseRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExpenseRecord), args.Error(1)
}

func (m *MockExpenseRepository) ListDeletedExpenses(ctx context.Context) ([]domain.ExpenseRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExpenseRecord), args.Error(1)
}

func (m *MockExpenseRepository) SaveExpense(ctx context.Context, expense domain.ExpenseRecord) error {
	return m.Called(ctx, expense).Error(0)
}

func (m *MockExpenseRepository) SoftDelete(ctx context.Context, id string, userID string, now time.Time) error {
	return m.Called(ctx, id, userID, now).Error(0)
}

func (m *MockExpenseRepository) Restore(ctx context.Context, id string, userID string, now time.Time) error {
	return m.Called(ctx, id, userID, now).Error(0)
}

// --- Investments ---

type MockInvestmentRepository struct {
	mock.Mock
}

func (m *MockInvestmentRepository) SaveInvestment(ctx context.Context, investment domain.InvestmentRecord) error {
	return m.Called(ctx, investment).Error(0)
}

func (m *MockInvestmentRepository) ListInvestments(ctx context.Context) ([]domain.InvestmentRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvestmentRecord), args.Error(1)
}

// --- Assets ---

type MockAssetRepository struct {
	mock.Mock
}

func (m *MockAssetRepository) FindAssetByID(ctx context.Context, id string) (*domain.AssetRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AssetRecord), args.Error(1)
}

func (m *MockAssetRepository) ListAssets(ctx context.Context) ([]domain.AssetRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AssetRecord), args.Error(1)
}

func (m *MockAssetRepository) SaveAsset(ctx context.Context, asset domain.AssetRecord) error {
	return m.Called(ctx, asset).Error(0)
}

func (m *MockAssetRepository) TouchAsset(ctx context.Context, id string, userID string, now time.Time) error {
	return m.Called(ctx, id, userID, now).Error(0)
}

// --- Categories ---

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context, kind domain.CategoryKind) ([]domain.Category, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) DeleteCategory(ctx context.Context, kind domain.CategoryKind, id string) error {
	return m.Called(ctx, kind, id).Error(0)
}

// --- Health ---

type MockHealthChecker struct {
	mock.Mock
}

func (m *MockHealthChecker) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
