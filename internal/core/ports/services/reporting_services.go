package services

import (
	"context"

	"github.com/SscSPs/fin_assist/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingService derives aggregates from the stores on every call
type ReportingService interface {
	// PeriodSummary totals income and expense of one month.
	PeriodSummary(ctx context.Context, period domain.Period) (*domain.PeriodSummary, error)

	// LedgerTotals totals income and expense over the whole ledger.
	LedgerTotals(ctx context.Context) (*domain.LedgerTotals, error)

	// CategoryStatistics counts and sums the whole ledger per known category.
	CategoryStatistics(ctx context.Context) ([]domain.CategoryStat, error)

	// BudgetProgress computes consumption for every budget of one month.
	BudgetProgress(ctx context.Context, period domain.Period) ([]domain.BudgetProgress, error)

	// GoalProgress returns the clamped completion percent of a goal.
	GoalProgress(goal domain.Goal) decimal.Decimal

	// Dashboard combines summary, budgets, goals and the latest transactions.
	Dashboard(ctx context.Context, period domain.Period, recent int) (*domain.Dashboard, error)
}
