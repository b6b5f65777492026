package domain

import (
	"github.com/SscSPs/fin_assist/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Budget is a spending limit for one category in one calendar month.
// (Category, Month, Year) is unique.
type Budget struct {
	BudgetID int64           `json:"budgetID"`
	Category string          `json:"category"`
	Limit    decimal.Decimal `json:"limit"`
	Month    int             `json:"month"`
	Year     int             `json:"year"`
	AuditFields
}

// Period returns the month the budget applies to.
func (b Budget) Period() Period {
	return Period{Month: b.Month, Year: b.Year}
}

// Validate checks the limit and the period.
func (b Budget) Validate() error {
	if b.Category == "" {
		return apperrors.NewValidationError("category", "is required")
	}
	if b.Limit.LessThanOrEqual(decimal.Zero) {
		return apperrors.NewValidationError("limit", "must be positive")
	}
	if err := ValidateMoney("limit", b.Limit); err != nil {
		return err
	}
	return b.Period().Validate()
}
