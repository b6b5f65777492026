package domain

import (
	"github.com/shopspring/decimal"
)

// PeriodSummary holds the income/expense totals of one period.
type PeriodSummary struct {
	Period       Period          `json:"period"`
	IncomeTotal  decimal.Decimal `json:"incomeTotal"`
	ExpenseTotal decimal.Decimal `json:"expenseTotal"`
	Balance      decimal.Decimal `json:"balance"` // IncomeTotal - ExpenseTotal, may be negative
	// ExpenseByCategory omits categories without expenses in the period.
	ExpenseByCategory map[string]decimal.Decimal `json:"expenseByCategory"`
}

// LedgerTotals holds the income/expense totals of the whole ledger.
type LedgerTotals struct {
	IncomeTotal      decimal.Decimal `json:"incomeTotal"`
	ExpenseTotal     decimal.Decimal `json:"expenseTotal"`
	Balance          decimal.Decimal `json:"balance"`
	TransactionCount int64           `json:"transactionCount"`
}

// CategoryStat counts and sums the whole ledger for one category.
type CategoryStat struct {
	Category         string          `json:"category"`
	TransactionCount int64           `json:"transactionCount"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
}

// BudgetProgress pairs a budget with the expenses consumed against it.
type BudgetProgress struct {
	Budget   Budget          `json:"budget"`
	Consumed decimal.Decimal `json:"consumed"`
	// Percent is clamped to [0, 100]; use Overspent to detect overspend.
	Percent decimal.Decimal `json:"percent"`
}

// Overspent reports whether consumption exceeded the limit.
func (bp BudgetProgress) Overspent() bool {
	return bp.Consumed.GreaterThan(bp.Budget.Limit)
}

// GoalProgress pairs a goal with its clamped completion percent.
type GoalProgress struct {
	Goal    Goal            `json:"goal"`
	Percent decimal.Decimal `json:"percent"`
}

// Dashboard is the combined view of one period.
type Dashboard struct {
	Summary PeriodSummary    `json:"summary"`
	Budgets []BudgetProgress `json:"budgets"`
	Goals   []GoalProgress   `json:"goals"`
	Recent  []Transaction    `json:"recent"`
}
