package services

import (
	portsrepo "github.com/SscSPs/fin_assist/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fin_assist/internal/core/ports/services"
	"github.com/SscSPs/fin_assist/internal/platform/metrics"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, m *metrics.Metrics) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Reporting reads every store; budgets delegate consumption to it
	container.Reporting = NewReportingService(
		repos.TransactionRepo,
		repos.CategoryRepo,
		repos.BudgetRepo,
		repos.GoalRepo,
	)

	container.Ledger = NewLedgerService(repos.TransactionRepo, repos.CategoryRepo, WithLedgerMetrics(m))
	container.Category = NewCategoryService(repos.CategoryRepo, WithCategoryMetrics(m))
	container.Budget = NewBudgetService(repos.BudgetRepo, repos.CategoryRepo, container.Reporting)
	container.Goal = NewGoalService(repos.GoalRepo)

	return container
}
