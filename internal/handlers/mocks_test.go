package handlers_test

import (
	"context"

	"github.com/SscSPs/fin_assist/internal/core/domain"
	portssvc "github.com/SscSPs/fin_assist/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockLedgerService) RecentTransactions(ctx context.Context, n int) ([]domain.Transaction, error) {
	args := m.Called(ctx, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockLedgerService) AddTransaction(ctx context.Context, txn domain.NewTransaction) (*domain.Transaction, error) {
	args := m.Called(ctx, txn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockLedgerService) RemoveTransaction(ctx context.Context, transactionID int64) error {
	return m.Called(ctx, transactionID).Error(0)
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Mock CategoryService ---
type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) ListCategories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCategoryService) AddCategory(ctx context.Context, name string) error {
	return m.Called(ctx, name).Error(0)
}

func (m *MockCategoryService) RenameCategory(ctx context.Context, oldName, newName string) error {
	return m.Called(ctx, oldName, newName).Error(0)
}

func (m *MockCategoryService) RemoveCategory(ctx context.Context, name string) error {
	return m.Called(ctx, name).Error(0)
}

func (m *MockCategoryService) InitializeStaticData(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

var _ portssvc.CategorySvcFacade = (*MockCategoryService)(nil)

// --- Mock BudgetService ---
type MockBudgetService struct {
	mock.Mock
}

func (m *MockBudgetService) ListBudgetsForPeriod(ctx context.Context, period domain.Period) ([]domain.BudgetProgress, error) {
	args := m.Called(ctx, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BudgetProgress), args.Error(1)
}

func (m *MockBudgetService) UpsertBudget(ctx context.Context, category string, limit decimal.Decimal, period domain.Period) (*domain.Budget, error) {
	args := m.Called(ctx, category, limit, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

func (m *MockBudgetService) RemoveBudget(ctx context.Context, budgetID int64) error {
	return m.Called(ctx, budgetID).Error(0)
}

var _ portssvc.BudgetSvcFacade = (*MockBudgetService)(nil)

// --- Mock GoalService ---
type MockGoalService struct {
	mock.Mock
}

func (m *MockGoalService) GetGoal(ctx context.Context, goalID int64) (*domain.Goal, error) {
	args := m.Called(ctx, goalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Goal), args.Error(1)
}

func (m *MockGoalService) ListGoals(ctx context.Context) ([]domain.GoalProgress, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GoalProgress), args.Error(1)
}

func (m *MockGoalService) AddGoal(ctx context.Context, goal domain.NewGoal) (*domain.Goal, error) {
	args := m.Called(ctx, goal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Goal), args.Error(1)
}

func (m *MockGoalService) ReplaceGoal(ctx context.Context, goalID int64, update domain.GoalUpdate) (*domain.Goal, error) {
	args := m.Called(ctx, goalID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Goal), args.Error(1)
}

func (m *MockGoalService) ApplyProgress(ctx context.Context, goalID int64, currentAmount decimal.Decimal) (*domain.Goal, error) {
	args := m.Called(ctx, goalID, currentAmount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Goal), args.Error(1)
}

func (m *MockGoalService) RemoveGoal(ctx context.Context, goalID int64) error {
	return m.Called(ctx, goalID).Error(0)
}

var _ portssvc.GoalSvcFacade = (*MockGoalService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) PeriodSummary(ctx context.Context, period domain.Period) (*domain.PeriodSummary, error) {
	args := m.Called(ctx, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PeriodSummary), args.Error(1)
}

func (m *MockReportingService) LedgerTotals(ctx context.Context) (*domain.LedgerTotals, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerTotals), args.Error(1)
}

func (m *MockReportingService) CategoryStatistics(ctx context.Context) ([]domain.CategoryStat, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryStat), args.Error(1)
}

func (m *MockReportingService) BudgetProgress(ctx context.Context, period domain.Period) ([]domain.BudgetProgress, error) {
	args := m.Called(ctx, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BudgetProgress), args.Error(1)
}

func (m *MockReportingService) GoalProgress(goal domain.Goal) decimal.Decimal {
	return m.Called(goal).Get(0).(decimal.Decimal)
}

func (m *MockReportingService) Dashboard(ctx context.Context, period domain.Period, recent int) (*domain.Dashboard, error) {
	args := m.Called(ctx, period, recent)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dashboard), args.Error(1)
}

var _ portssvc.ReportingService = (*MockReportingService)(nil)
