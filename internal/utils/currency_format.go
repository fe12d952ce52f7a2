package utils

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/SscSPs/shop_bookkeeping/internal/apperrors"
	"github.com/shopspring/decimal"
)

// CurrencyFormatter rounds and renders amounts of a single ISO 4217 currency.
type CurrencyFormatter struct {
	cur money.Currency
}

// NewCurrencyFormatter looks the code up in the go-money currency table.
func NewCurrencyFormatter(code string) (*CurrencyFormatter, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	cur := money.GetCurrency(code)
	if cur == nil {
		return nil, fmt.Errorf("%w: unknown currency code %q", apperrors.ErrValidation, code)
	}
	return &CurrencyFormatter{cur: *cur}, nil
}

// Code returns the ISO currency code.
func (f *CurrencyFormatter) Code() string { return f.cur.Code }

// Precision is the number of minor-unit digits, 2 for USD and 0 for JPY.
func (f *CurrencyFormatter) Precision() int32 { return int32(f.cur.Fraction) }

// Round rounds an amount to the currency precision.
// Example: 12.3456 in USD returns 12.35, in JPY returns 12.
func (f *CurrencyFormatter) Round(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(f.Precision())
}

// Format renders an amount with the currency symbol and grouping, e.g. "$1,234.50".
func (f *CurrencyFormatter) Format(amount decimal.Decimal) string {
	minor := amount.Shift(f.Precision()).Round(0).IntPart()
	return f.cur.Formatter().Format(minor)
}

// FormatWithPrecision formats an amount with the given precision
// This is a convenience function when you only have the precision value
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.Round(int32(precision)).StringFixed(int32(precision))
}
