package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/shop_bookkeeping/internal/apperrors"
	"github.com/shopspring/decimal"
)

// SaleRecord is a single sale of a product.
type SaleRecord struct {
	ID          string          `json:"id"`
	Date        Day             `json:"date" validate:"required"`
	Product     string          `json:"product" validate:"required"`
	OrderNumber string          `json:"orderNumber"`
	Quantity    int64           `json:"quantity" validate:"gt=0"`
	Price       decimal.Decimal `json:"price"`
	Total       decimal.Decimal `json:"total"` // Quantity × Price, fixed at write time
	Notes       string          `json:"notes"`
	SoftDelete
	AuditFields
}

func (s SaleRecord) RecordDate() Day { return s.Date }

// Validate checks the invariants of a sale, including the ones struct tags also cover.
func (s SaleRecord) Validate() error {
	if err := requireDay("date", s.Date); err != nil {
		return err
	}
	if strings.TrimSpace(s.Product) == "" {
		return fmt.Errorf("%w: product is required", apperrors.ErrValidation)
	}
	if s.Quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", apperrors.ErrValidation)
	}
	return requirePositive("price", s.Price)
}

// PurchaseRecord is a stock purchase. Supplier, Gender, Color and DialColor are
// optional product-variant metadata.
type PurchaseRecord struct {
	ID        string          `json:"id"`
	Date      Day             `json:"date" validate:"required"`
	Product   string          `json:"product" validate:"required"`
	Quantity  int64           `json:"quantity" validate:"gt=0"`
	Price     decimal.Decimal `json:"price"`
	Total     decimal.Decimal `json:"total"`
	Supplier  string          `json:"supplier"`
	Gender    string          `json:"gender"`
	Color     string          `json:"color"`
	DialColor string          `json:"dialColor"`
	Notes     string          `json:"notes"`
	SoftDelete
	AuditFields
}

func (p PurchaseRecord) RecordDate() Day { return p.Date }

func (p PurchaseRecord) Validate() error {
	if err := requireDay("date", p.Date); err != nil {
		return err
	}
	if strings.TrimSpace(p.Product) == "" {
		return fmt.Errorf("%w: product is required", apperrors.ErrValidation)
	}
	if p.Quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", apperrors.ErrValidation)
	}
	return requirePositive("price", p.Price)
}

// ExpenseRecord is an operating expense.
type ExpenseRecord struct {
	ID          string          `json:"id"`
	Date        Day             `json:"date" validate:"required"`
	Category    string          `json:"category" validate:"required"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Notes       string          `json:"notes"`
	SoftDelete
	AuditFields
}

func (e ExpenseRecord) RecordDate() Day { return e.Date }

func (e ExpenseRecord) Validate() error {
	if err := requireDay("date", e.Date); err != nil {
		return err
	}
	if strings.TrimSpace(e.Category) == "" {
		return fmt.Errorf("%w: category is required", apperrors.ErrValidation)
	}
	return requirePositive("amount", e.Amount)
}

// InvestmentRecord is capital put into the business. It has no soft delete.
type InvestmentRecord struct {
	ID       string          `json:"id"`
	Date     Day             `json:"date" validate:"required"`
	Investor string          `json:"investor" validate:"required"`
	Amount   decimal.Decimal `json:"amount"`
	Note     string          `json:"note"`
	AuditFields
}

func (i InvestmentRecord) RecordDate() Day { return i.Date }
func (i InvestmentRecord) Deleted() bool   { return false }

func (i InvestmentRecord) Validate() error {
	if err := requireDay("date", i.Date); err != nil {
		return err
	}
	if strings.TrimSpace(i.Investor) == "" {
		return fmt.Errorf("%w: investor is required", apperrors.ErrValidation)
	}
	return requirePositive("amount", i.Amount)
}

// AssetRecord is a depreciable asset. Cost and UsefulLifeYears never change
// after creation; depreciation is derived on read.
type AssetRecord struct {
	ID              string          `json:"id"`
	Name            string          `json:"name" validate:"required"`
	PurchaseDate    Day             `json:"purchaseDate" validate:"required"`
	Cost            decimal.Decimal `json:"cost"`
	UsefulLifeYears int             `json:"usefulLife" validate:"gt=0"`
	LastUpdated     *time.Time      `json:"lastUpdated,omitempty"` // advisory only
	Note            string          `json:"note"`
	AuditFields
}

func (a AssetRecord) Validate() error {
	if err := requireDay("purchase date", a.PurchaseDate); err != nil {
		return err
	}
	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("%w: name is required", apperrors.ErrValidation)
	}
	if a.UsefulLifeYears <= 0 {
		return fmt.Errorf("%w: useful life must be positive", apperrors.ErrValidation)
	}
	return requirePositive("cost", a.Cost)
}

// CategoryKind selects one of the category pickers.
type CategoryKind string

const (
	ExpenseCategory   CategoryKind = "expense"
	ProductCategory   CategoryKind = "product"
	SupplierCategory  CategoryKind = "supplier"
	ColorCategory     CategoryKind = "color"
	DialColorCategory CategoryKind = "dialColor"
)

// ParseCategoryKind validates a category kind coming from a URL or flag.
func ParseCategoryKind(s string) (CategoryKind, error) {
	switch k := CategoryKind(s); k {
	case ExpenseCategory, ProductCategory, SupplierCategory, ColorCategory, DialColorCategory:
		return k, nil
	default:
		return "", fmt.Errorf("%w: unknown category kind %q", apperrors.ErrValidation, s)
	}
}

// Category is a named entry of a picker list.
type Category struct {
	ID        string       `json:"id"`
	Kind      CategoryKind `json:"kind"`
	Name      string       `json:"name" validate:"required"`
	CreatedAt time.Time    `json:"createdAt"`
	CreatedBy string       `json:"createdBy"`
}

func requirePositive(field string, v decimal.Decimal) error {
	if !v.IsPositive() {
		return fmt.Errorf("%w: %s must be positive, got %s", apperrors.ErrValidation, field, v.String())
	}
	return nil
}

func requireDay(field string, d Day) error {
	if d.IsZero() {
		return fmt.Errorf("%w: %s is required", apperrors.ErrValidation, field)
	}
	return nil
}
