package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// Every backend (postgres, sqlite, memory) builds one of these.
type RepositoryProvider struct {
	TransactionRepo TransactionRepositoryFacade
	CategoryRepo    CategoryRepositoryFacade
	BudgetRepo      BudgetRepositoryFacade
	GoalRepo        GoalRepositoryFacade
	Health          HealthChecker
}
