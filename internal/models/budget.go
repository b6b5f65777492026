package models

import "github.com/shopspring/decimal"

// Budget is a row of the budgets table. (category, month, year) is unique.
type Budget struct {
	BudgetID    int64           `json:"budgetID" db:"budget_id"`
	Category    string          `json:"category" db:"category"`
	LimitAmount decimal.Decimal `json:"limitAmount" db:"limit_amount"`
	Month       int             `json:"month" db:"month"`
	Year        int             `json:"year" db:"year"`
	AuditFields
}
