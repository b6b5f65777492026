package services

import (
	"context"
)

// ServiceContainer holds instances of all the application services.
// It is built once at startup and handed to the HTTP handlers.
type ServiceContainer struct {
	Ledger    LedgerSvcFacade
	Category  CategorySvcFacade
	Budget    BudgetSvcFacade
	Goal      GoalSvcFacade
	Reporting ReportingService
}

// StaticDataService seeds reference data on first initialization.
type StaticDataService interface {
	InitializeStaticData(ctx context.Context) error
}
