package dto

import (
	"sort"

	"github.com/SscSPs/fin_assist/internal/core/domain"
	"github.com/SscSPs/fin_assist/internal/utils"
	"github.com/SscSPs/fin_assist/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// CategoryAmountResponse is one slice of the expense breakdown.
type CategoryAmountResponse struct {
	Category        string          `json:"category"`
	Color           string          `json:"color"`
	Amount          decimal.Decimal `json:"amount"`
	AmountFormatted string          `json:"amountFormatted"`
	// Share is the percent of the period's expense total.
	Share decimal.Decimal `json:"share"`
}

// PeriodSummaryResponse defines the monthly totals.
type PeriodSummaryResponse struct {
	Month                 int                      `json:"month"`
	Year                  int                      `json:"year"`
	IncomeTotal           decimal.Decimal          `json:"incomeTotal"`
	IncomeTotalFormatted  string                   `json:"incomeTotalFormatted"`
	ExpenseTotal          decimal.Decimal          `json:"expenseTotal"`
	ExpenseTotalFormatted string                   `json:"expenseTotalFormatted"`
	Balance               decimal.Decimal          `json:"balance"`
	BalanceFormatted      string                   `json:"balanceFormatted"`
	ExpenseByCategory     []CategoryAmountResponse `json:"expenseByCategory"`
}

// LedgerTotalsResponse defines the all-time totals.
type LedgerTotalsResponse struct {
	IncomeTotal           decimal.Decimal `json:"incomeTotal"`
	IncomeTotalFormatted  string          `json:"incomeTotalFormatted"`
	ExpenseTotal          decimal.Decimal `json:"expenseTotal"`
	ExpenseTotalFormatted string          `json:"expenseTotalFormatted"`
	Balance               decimal.Decimal `json:"balance"`
	BalanceFormatted      string          `json:"balanceFormatted"`
	TransactionCount      int64           `json:"transactionCount"`
}

// DashboardResponse is the combined monthly view.
type DashboardResponse struct {
	Summary PeriodSummaryResponse    `json:"summary"`
	Budgets []BudgetProgressResponse `json:"budgets"`
	Goals   []GoalResponse           `json:"goals"`
	Recent  []TransactionResponse    `json:"recent"`
}

// ToPeriodSummaryResponse converts a summary to its DTO. The category
// breakdown is ordered by amount descending, then name.
func ToPeriodSummaryResponse(s domain.PeriodSummary) PeriodSummaryResponse {
	breakdown := make([]CategoryAmountResponse, 0, len(s.ExpenseByCategory))
	for name, amount := range s.ExpenseByCategory {
		breakdown = append(breakdown, CategoryAmountResponse{
			Category:        name,
			Color:           utils.CategoryColor(name),
			Amount:          amount,
			AmountFormatted: utils.FormatBRL(amount),
			Share:           accounting.CalculatePercent(amount, s.ExpenseTotal).Round(2),
		})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if c := breakdown[i].Amount.Cmp(breakdown[j].Amount); c != 0 {
			return c > 0
		}
		return breakdown[i].Category < breakdown[j].Category
	})

	return PeriodSummaryResponse{
		Month:                 s.Period.Month,
		Year:                  s.Period.Year,
		IncomeTotal:           s.IncomeTotal,
		IncomeTotalFormatted:  utils.FormatBRL(s.IncomeTotal),
		ExpenseTotal:          s.ExpenseTotal,
		ExpenseTotalFormatted: utils.FormatBRL(s.ExpenseTotal),
		Balance:               s.Balance,
		BalanceFormatted:      utils.FormatBRL(s.Balance),
		ExpenseByCategory:     breakdown,
	}
}

// ToLedgerTotalsResponse converts ledger totals to their DTO.
func ToLedgerTotalsResponse(t domain.LedgerTotals) LedgerTotalsResponse {
	return LedgerTotalsResponse{
		IncomeTotal:           t.IncomeTotal,
		IncomeTotalFormatted:  utils.FormatBRL(t.IncomeTotal),
		ExpenseTotal:          t.ExpenseTotal,
		ExpenseTotalFormatted: utils.FormatBRL(t.ExpenseTotal),
		Balance:               t.Balance,
		BalanceFormatted:      utils.FormatBRL(t.Balance),
		TransactionCount:      t.TransactionCount,
	}
}

// ToDashboardResponse converts a dashboard to its DTO.
func ToDashboardResponse(d domain.Dashboard) DashboardResponse {
	return DashboardResponse{
		Summary: ToPeriodSummaryResponse(d.Summary),
		Budgets: ToBudgetProgressResponses(d.Budgets),
		Goals:   ToGoalProgressResponses(d.Goals),
		Recent:  ToTransactionResponses(d.Recent),
	}
}
