package repositories

import (
	"context"

	"github.com/SscSPs/fin_assist/internal/core/domain"
)

// BudgetReader defines read operations for budgets
type BudgetReader interface {
	// FindBudgetsByPeriod returns the budgets of one month ordered by category.
	FindBudgetsByPeriod(ctx context.Context, period domain.Period) ([]domain.Budget, error)
}

// BudgetWriter defines write operations for budgets
type BudgetWriter interface {
	// UpsertBudget inserts a budget or replaces the limit of the existing
	// (category, month, year) row, keeping its id.
	UpsertBudget(ctx context.Context, budget domain.Budget) (*domain.Budget, error)

	// DeleteBudget removes a budget. Missing ids are ignored.
	DeleteBudget(ctx context.Context, budgetID int64) error
}

// BudgetRepositoryFacade combines all budget repository interfaces
type BudgetRepositoryFacade interface {
	BudgetReader
	BudgetWriter
}
