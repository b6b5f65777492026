package services

import (
	"context"

	"github.com/SscSPs/fin_assist/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BudgetReaderSvc defines read operations on budgets
type BudgetReaderSvc interface {
	// ListBudgetsForPeriod returns the budgets of a month with their consumption.
	ListBudgetsForPeriod(ctx context.Context, period domain.Period) ([]domain.BudgetProgress, error)
}

// BudgetWriterSvc defines write operations on budgets
type BudgetWriterSvc interface {
	// UpsertBudget creates a budget or replaces the limit of the existing one.
	UpsertBudget(ctx context.Context, category string, limit decimal.Decimal, period domain.Period) (*domain.Budget, error)

	// RemoveBudget deletes a budget; absent ids are a no-op.
	RemoveBudget(ctx context.Context, budgetID int64) error
}

// BudgetSvcFacade combines all budget service interfaces
type BudgetSvcFacade interface {
	BudgetReaderSvc
	BudgetWriterSvc
}
