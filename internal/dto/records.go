package dto

import (
	"github.com/SscSPs/shop_bookkeeping/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateSaleRequest defines the data needed to record a sale.
// Total is computed by the service.
type CreateSaleRequest struct {
	Date        domain.Day      `json:"date" binding:"required"`
	Product     string          `json:"product" binding:"required"`
	OrderNumber string          `json:"orderNumber"`
	Quantity    int64           `json:"quantity" binding:"required,gt=0"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Notes       string          `json:"notes"`
}

// CreatePurchaseRequest defines the data needed to record a stock purchase.
type CreatePurchaseRequest struct {
	Date      domain.Day      `json:"date" binding:"required"`
	Product   string          `json:"product" binding:"required"`
	Quantity  int64           `json:"quantity" binding:"required,gt=0"`
	Price     decimal.Decimal `json:"price" binding:"required"`
	Supplier  string          `json:"supplier"`
	Gender    string          `json:"gender"`
	Color     string          `json:"color"`
	DialColor string          `json:"dialColor"`
	Notes     string          `json:"notes"`
}

// CreateExpenseRequest defines the data needed to record an operating expense.
type CreateExpenseRequest struct {
	Date        domain.Day      `json:"date" binding:"required"`
	Category    string          `json:"category" binding:"required"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Notes       string          `json:"notes"`
}

// CreateInvestmentRequest defines the data needed to record a capital contribution.
type CreateInvestmentRequest struct {
	Date     domain.Day      `json:"date" binding:"required"`
	Investor string          `json:"investor" binding:"required"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Note     string          `json:"note"`
}

// CreateAssetRequest defines the data needed to register a depreciable asset.
type CreateAssetRequest struct {
	Name         string          `json:"name" binding:"required"`
	PurchaseDate domain.Day      `json:"purchaseDate" binding:"required"`
	Cost         decimal.Decimal `json:"cost" binding:"required"`
	UsefulLife   int             `json:"usefulLife" binding:"required,gt=0"` // years
	Note         string          `json:"note"`
}

// CreateCategoryRequest adds a name to one of the picker lists.
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// AssetResponse is an asset with its depreciation as of today.
type AssetResponse struct {
	domain.AssetRecord
	Depreciation domain.Depreciation `json:"depreciation"`
}

// ToAssetResponse flattens an AssetValuation into the wire shape.
func ToAssetResponse(v domain.AssetValuation) AssetResponse {
	return AssetResponse{AssetRecord: v.Asset, Depreciation: v.Depreciation}
}

// ToListAssetResponse converts a slice of valuations.
func ToListAssetResponse(vs []domain.AssetValuation) []AssetResponse {
	res := make([]AssetResponse, len(vs))
	for i, v := range vs {
		res[i] = ToAssetResponse(v)
	}
	return res
}
