package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/fin_assist/internal/core/domain"
	portsrepo "github.com/SscSPs/fin_assist/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fin_assist/internal/core/ports/services"
	"github.com/SscSPs/fin_assist/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// reportingService implements the ReportingService interface. It keeps no
// state; every call re-reads the stores.
type reportingService struct {
	BaseService
	txnRepo      portsrepo.TransactionReader
	categoryRepo portsrepo.CategoryReader
	budgetRepo   portsrepo.BudgetReader
	goalRepo     portsrepo.GoalReader
}

// NewReportingService creates a new reporting service over the given stores
func NewReportingService(
	txnRepo portsrepo.TransactionReader,
	categoryRepo portsrepo.CategoryReader,
	budgetRepo portsrepo.BudgetReader,
	goalRepo portsrepo.GoalReader,
) portssvc.ReportingService {
	return &reportingService{
		txnRepo:      txnRepo,
		categoryRepo: categoryRepo,
		budgetRepo:   budgetRepo,
		goalRepo:     goalRepo,
	}
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

func periodFilter(period domain.Period) domain.TransactionFilter {
	return domain.TransactionFilter{
		DateFrom: domain.Ptr(period.FirstDay()),
		DateTo:   domain.Ptr(period.LastDay()),
	}
}

// PeriodSummary totals the income and expenses of one month.
func (s *reportingService) PeriodSummary(ctx context.Context, period domain.Period) (*domain.PeriodSummary, error) {
	if err := period.Validate(); err != nil {
		return nil, err
	}

	txns, err := s.txnRepo.ListTransactions(ctx, periodFilter(period))
	if err != nil {
		s.LogError(ctx, err, "Failed to get ledger for period summary",
			slog.Int("month", period.Month),
			slog.Int("year", period.Year))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to get categories for period summary")
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	summary := accounting.SummarizePeriod(period, txns, accounting.KnownCategories(categories))
	s.LogDebug(ctx, "Period summary computed",
		slog.Int("transaction_count", len(txns)),
		slog.String("balance", summary.Balance.String()))
	return &summary, nil
}

// LedgerTotals totals income and expense over every transaction.
func (s *reportingService) LedgerTotals(ctx context.Context) (*domain.LedgerTotals, error) {
	txns, err := s.txnRepo.ListTransactions(ctx, domain.TransactionFilter{})
	if err != nil {
		s.LogError(ctx, err, "Failed to get ledger for totals")
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	totals := accounting.SummarizeLedger(txns)
	return &totals, nil
}

// CategoryStatistics counts and sums the whole ledger per known category.
func (s *reportingService) CategoryStatistics(ctx context.Context) ([]domain.CategoryStat, error) {
	txns, err := s.txnRepo.ListTransactions(ctx, domain.TransactionFilter{})
	if err != nil {
		s.LogError(ctx, err, "Failed to get ledger for category statistics")
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to get categories for category statistics")
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return accounting.CategoryStatistics(txns, categories), nil
}

// BudgetProgress joins the month's budgets with the month's expenses.
func (s *reportingService) BudgetProgress(ctx context.Context, period domain.Period) ([]domain.BudgetProgress, error) {
	if err := period.Validate(); err != nil {
		return nil, err
	}

	budgets, err := s.budgetRepo.FindBudgetsByPeriod(ctx, period)
	if err != nil {
		s.LogError(ctx, err, "Failed to get budgets",
			slog.Int("month", period.Month),
			slog.Int("year", period.Year))
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	if len(budgets) == 0 {
		return []domain.BudgetProgress{}, nil
	}

	filter := periodFilter(period)
	filter.Kind = domain.Ptr(domain.Expense)
	expenses, err := s.txnRepo.ListTransactions(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to get expenses for budget progress")
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return accounting.ComputeBudgetProgress(budgets, expenses), nil
}

// GoalProgress returns the clamped completion percent of goal.
func (s *reportingService) GoalProgress(goal domain.Goal) decimal.Decimal {
	return accounting.ComputeGoalProgress(goal)
}

// Dashboard gathers the summary, budgets, goals and latest transactions of a
// month. The reads run concurrently.
func (s *reportingService) Dashboard(ctx context.Context, period domain.Period, recent int) (*domain.Dashboard, error) {
	if err := period.Validate(); err != nil {
		return nil, err
	}

	var (
		dashboard domain.Dashboard
		summary   *domain.PeriodSummary
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		summary, err = s.PeriodSummary(gctx, period)
		return err
	})
	g.Go(func() error {
		var err error
		dashboard.Budgets, err = s.BudgetProgress(gctx, period)
		return err
	})
	g.Go(func() error {
		goals, err := s.goalRepo.ListGoals(gctx)
		if err != nil {
			return fmt.Errorf("failed to list goals: %w", err)
		}
		dashboard.Goals = toGoalProgress(goals)
		return nil
	})
	g.Go(func() error {
		if recent <= 0 {
			dashboard.Recent = []domain.Transaction{}
			return nil
		}
		txns, err := s.txnRepo.ListTransactions(gctx, domain.TransactionFilter{Limit: recent})
		if err != nil {
			return fmt.Errorf("failed to list recent transactions: %w", err)
		}
		dashboard.Recent = txns
		return nil
	})

	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to build dashboard",
			slog.Int("month", period.Month),
			slog.Int("year", period.Year))
		return nil, err
	}

	dashboard.Summary = *summary
	return &dashboard, nil
}
