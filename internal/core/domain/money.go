package domain

import (
	"github.com/SscSPs/fin_assist/internal/apperrors"
	"github.com/shopspring/decimal"
)

// MoneyScale is the number of decimal places stored for every amount.
const MoneyScale = 2

// MaxAmount is the largest amount the stores can hold (NUMERIC(15,2)).
var MaxAmount = decimal.RequireFromString("9999999999999.99")

// ValidateMoney returns a ValidationError on field when amount has more than
// two decimal places or exceeds MaxAmount.
func ValidateMoney(field string, amount decimal.Decimal) error {
	if !amount.Equal(amount.Round(MoneyScale)) {
		return apperrors.NewValidationError(field, "must have at most 2 decimal places")
	}
	if amount.Abs().GreaterThan(MaxAmount) {
		return apperrors.NewValidationError(field, "must not exceed 9999999999999.99")
	}
	return nil
}
