package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is a row of the sales table.
type Sale struct {
	ID          string          `db:"id"`
	SaleDate    time.Time       `db:"sale_date"` // DATE column
	Product     string          `db:"product"`
	OrderNumber string          `db:"order_number"`
	Quantity    int64           `db:"quantity"`
	Price       decimal.Decimal `db:"price"`
	Total       decimal.Decimal `db:"total"`
	Notes       string          `db:"notes"`
	SoftDelete
	AuditFields
}

// Purchase is a row of the purchases table.
type Purchase struct {
	ID           string          `db:"id"`
	PurchaseDate time.Time       `db:"purchase_date"`
	Product      string          `db:"product"`
	Quantity     int64           `db:"quantity"`
	Price        decimal.Decimal `db:"price"`
	Total        decimal.Decimal `db:"total"`
	Supplier     string          `db:"supplier"`
	Gender       string          `db:"gender"`
	Color        string          `db:"color"`
	DialColor    string          `db:"dial_color"`
	Notes        string          `db:"notes"`
	SoftDelete
	AuditFields
}

// Expense is a row of the expenses table.
type Expense struct {
	ID          string          `db:"id"`
	ExpenseDate time.Time       `db:"expense_date"`
	Category    string          `db:"category"`
	Description string          `db:"description"`
	Amount      decimal.Decimal `db:"amount"`
	Notes       string          `db:"notes"`
	SoftDelete
	AuditFields
}

// Investment is a row of the investments table. Investments are never deleted.
type Investment struct {
	ID             string          `db:"id"`
	InvestmentDate time.Time       `db:"investment_date"`
	Investor       string          `db:"investor"`
	Amount         decimal.Decimal `db:"amount"`
	Note           string          `db:"note"`
	AuditFields
}

// Asset is a row of the assets table.
type Asset struct {
	ID              string          `db:"id"`
	Name            string          `db:"name"`
	PurchaseDate    time.Time       `db:"purchase_date"`
	Cost            decimal.Decimal `db:"cost"`
	UsefulLifeYears int             `db:"useful_life_years"`
	LastUpdated     *time.Time      `db:"last_updated"` // Nullable, advisory
	Note            string          `db:"note"`
	AuditFields
}

// Category is a row of the categories table.
type Category struct {
	ID        string    `db:"id"`
	Kind      string    `db:"kind"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
	CreatedBy string    `db:"created_by"`
}
