package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/fin_assist/internal/apperrors"
	"github.com/SscSPs/fin_assist/internal/core/domain"
	portsrepo "github.com/SscSPs/fin_assist/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fin_assist/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

type budgetService struct {
	BaseService
	budgetRepo   portsrepo.BudgetRepositoryFacade
	categoryRepo portsrepo.CategoryReader
	reporting    portssvc.ReportingService
}

// NewBudgetService creates a new budget registry service. Consumption is
// computed by the reporting service.
func NewBudgetService(budgetRepo portsrepo.BudgetRepositoryFacade, categoryRepo portsrepo.CategoryReader, reporting portssvc.ReportingService) portssvc.BudgetSvcFacade {
	return &budgetService{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
		reporting:    reporting,
	}
}

var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

// UpsertBudget creates the (category, month, year) budget or replaces its limit.
func (s *budgetService) UpsertBudget(ctx context.Context, category string, limit decimal.Decimal, period domain.Period) (*domain.Budget, error) {
	budget := domain.Budget{
		Category: domain.NormalizeCategoryName(category),
		Limit:    limit,
		Month:    period.Month,
		Year:     period.Year,
	}
	if err := budget.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.categoryRepo.CategoryExists(ctx, budget.Category)
	if err != nil {
		s.LogError(ctx, err, "Failed to check category", slog.String("category", budget.Category))
		return nil, fmt.Errorf("failed to check category: %w", err)
	}
	if !exists {
		return nil, apperrors.NewValidationError("category", "is not registered")
	}

	saved, err := s.budgetRepo.UpsertBudget(ctx, budget)
	if err != nil {
		s.LogError(ctx, err, "Failed to upsert budget",
			slog.String("category", budget.Category),
			slog.Int("month", budget.Month),
			slog.Int("year", budget.Year))
		return nil, fmt.Errorf("failed to upsert budget: %w", err)
	}

	s.LogInfo(ctx, "Budget saved successfully",
		slog.Int64("budget_id", saved.BudgetID),
		slog.String("limit", saved.Limit.String()))
	return saved, nil
}

// RemoveBudget deletes a budget. Absent ids are a no-op.
func (s *budgetService) RemoveBudget(ctx context.Context, budgetID int64) error {
	if err := s.budgetRepo.DeleteBudget(ctx, budgetID); err != nil {
		s.LogError(ctx, err, "Failed to delete budget", slog.Int64("budget_id", budgetID))
		return fmt.Errorf("failed to remove budget: %w", err)
	}
	s.LogInfo(ctx, "Budget removed", slog.Int64("budget_id", budgetID))
	return nil
}

// ListBudgetsForPeriod returns the month's budgets with their consumption.
func (s *budgetService) ListBudgetsForPeriod(ctx context.Context, period domain.Period) ([]domain.BudgetProgress, error) {
	if err := period.Validate(); err != nil {
		return nil, err
	}
	return s.reporting.BudgetProgress(ctx, period)
}
