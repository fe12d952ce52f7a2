package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/shop_bookkeeping/internal/apperrors"
	"github.com/SscSPs/shop_bookkeeping/internal/core/analytics"
	"github.com/SscSPs/shop_bookkeeping/internal/core/domain"
	"github.com/SscSPs/shop_bookkeeping/internal/core/services"
	"github.com/SscSPs/shop_bookkeeping/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAssetService_AddAsset(t *testing.T) {
	ctx := context.Background()
	repo := new(MockAssetRepository)
	repo.On("SaveAsset", ctx, mock.MatchedBy(func(a domain.AssetRecord) bool {
		return a.UsefulLifeYears == 1 && a.Cost.Equal(dec("1200")) && a.LastUpdated == nil
	})).Return(nil).Once()

	svc := services.NewAssetService(repo, services.WithClock(fixedClock))
	v, err := svc.AddAsset(ctx, dto.CreateAssetRequest{
		Name: "Display case", PurchaseDate: day("2024-01-01"), Cost: dec("1200"), UsefulLife: 1,
	}, "user-1")

	require.NoError(t, err)
	assert.True(t, v.Depreciation.AccumulatedDepreciation.Equal(dec("600")))
	assert.True(t, v.Depreciation.NetBookValue.Equal(dec("600")))
	repo.AssertExpectations(t)
}

func TestAssetService_AddAssetValidation(t *testing.T) {
	repo := new(MockAssetRepository)
	svc := services.NewAssetService(repo)

	_, err := svc.AddAsset(context.Background(), dto.CreateAssetRequest{
		Name: "Shelf", PurchaseDate: day("2024-01-01"), Cost: dec("0"), UsefulLife: 3,
	}, "user-1")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.AddAsset(context.Background(), dto.CreateAssetRequest{
		Name: "Shelf", PurchaseDate: day("2024-01-01"), Cost: dec("10"), UsefulLife: 0,
	}, "user-1")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	repo.AssertNotCalled(t, "SaveAsset", mock.Anything, mock.Anything)
}

func TestAssetService_TouchAssetDepreciation(t *testing.T) {
	ctx := context.Background()
	repo := new(MockAssetRepository)
	repo.On("FindAssetByID", ctx, "a1").Return(&domain.AssetRecord{
		ID: "a1", Name: "Display case", PurchaseDate: day("2022-07-01"), Cost: dec("3600"), UsefulLifeYears: 2,
	}, nil).Once()
	repo.On("TouchAsset", ctx, "a1", "user-1", fixedNow).Return(nil).Once()
	repo.On("FindAssetByID", ctx, "nope").Return(nil, apperrors.ErrNotFound).Once()

	svc := services.NewAssetService(repo, services.WithClock(fixedClock))

	v, err := svc.TouchAssetDepreciation(ctx, "a1", "user-1")
	require.NoError(t, err)
	require.NotNil(t, v.Asset.LastUpdated)
	assert.Equal(t, fixedNow, *v.Asset.LastUpdated)
	assert.True(t, v.Depreciation.FullyDepreciated)
	assert.True(t, v.Depreciation.NetBookValue.IsZero())

	_, err = svc.TouchAssetDepreciation(ctx, "nope", "user-1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	repo.AssertExpectations(t)
}

func TestAssetService_ListAssets(t *testing.T) {
	ctx := context.Background()
	repo := new(MockAssetRepository)
	repo.On("ListAssets", ctx).Return([]domain.AssetRecord{
		{ID: "a1", PurchaseDate: day("2024-06-15"), Cost: dec("1200"), UsefulLifeYears: 1},
	}, nil).Once()

	got, err := services.NewAssetService(repo, services.WithClock(fixedClock)).ListAssets(ctx)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].Depreciation.MonthsElapsed)
}

func TestCategoryService(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCategoryRepository)
	repo.On("SaveCategory", ctx, mock.MatchedBy(func(c domain.Category) bool {
		return c.Name == "Straps" && c.Kind == domain.ProductCategory
	})).Return(nil).Once()
	repo.On("SaveCategory", ctx, mock.MatchedBy(func(c domain.Category) bool { return c.Name == "Rent" })).
		Return(apperrors.ErrDuplicate).Once()
	repo.On("ListCategories", ctx, domain.SupplierCategory).Return([]domain.Category{{ID: "c1", Name: "Acme"}}, nil).Once()
	repo.On("DeleteCategory", ctx, domain.ColorCategory, "missing").Return(apperrors.ErrNotFound).Once()

	svc := services.NewCategoryService(repo, services.WithClock(fixedClock))

	c, err := svc.AddCategory(ctx, domain.ProductCategory, dto.CreateCategoryRequest{Name: "  Straps "}, "user-1")
	require.NoError(t, err)
	assert.Equal(t, fixedNow, c.CreatedAt)

	_, err = svc.AddCategory(ctx, domain.ExpenseCategory, dto.CreateCategoryRequest{Name: "Rent"}, "user-1")
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	_, err = svc.AddCategory(ctx, domain.CategoryKind("brand"), dto.CreateCategoryRequest{Name: "X"}, "user-1")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	list, err := svc.ListCategories(ctx, domain.SupplierCategory)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	assert.ErrorIs(t, svc.DeleteCategory(ctx, domain.ColorCategory, "missing"), apperrors.ErrNotFound)
	repo.AssertExpectations(t)
}

func TestInvestmentService(t *testing.T) {
	ctx := context.Background()
	repo := new(MockInvestmentRepository)
	repo.On("SaveInvestment", ctx, mock.Anything).Return(nil).Once()
	repo.On("ListInvestments", ctx).Return([]domain.InvestmentRecord{
		{ID: "i1", Date: day("2024-01-01"), Investor: "Owner", Amount: dec("100")},
		{ID: "i2", Date: day("2024-06-01"), Investor: "Owner", Amount: dec("100")},
	}, nil).Once()

	svc := services.NewInvestmentService(repo, services.WithClock(fixedClock))

	_, err := svc.AddInvestment(ctx, dto.CreateInvestmentRequest{Date: day("2024-06-01"), Investor: "Owner", Amount: dec("100")}, "user-1")
	require.NoError(t, err)

	_, err = svc.AddInvestment(ctx, dto.CreateInvestmentRequest{Date: day("2024-06-01"), Investor: "", Amount: dec("100")}, "user-1")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	got, err := svc.ListInvestments(ctx, analytics.Window{})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "i2", got[0].ID)
}

func TestHealthService(t *testing.T) {
	checker := new(MockHealthChecker)
	checker.On("Ping", mock.Anything).Return(assert.AnError).Once()

	err := services.NewHealthService(checker).Check(context.Background())

	assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
	assert.ErrorIs(t, err, assert.AnError)
}
