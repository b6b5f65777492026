package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/fin_assist/internal/apperrors"
	"github.com/SscSPs/fin_assist/internal/core/domain"
	portssvc "github.com/SscSPs/fin_assist/internal/core/ports/services"
	"github.com/SscSPs/fin_assist/internal/core/services"
	"github.com/SscSPs/fin_assist/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// EngineTestSuite drives the full service container over the in-memory store.
type EngineTestSuite struct {
	suite.Suite
	ctx context.Context
	svc *portssvc.ServiceContainer
}

func (suite *EngineTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.svc = services.NewServiceContainer(memory.NewRepositoryProvider(memory.NewStore()), nil)
	suite.Require().NoError(suite.svc.Category.InitializeStaticData(suite.ctx))
}

func (suite *EngineTestSuite) add(kind domain.TransactionKind, amount string, on time.Time, category string) *domain.Transaction {
	txn, err := suite.svc.Ledger.AddTransaction(suite.ctx, domain.NewTransaction{
		Kind:       kind,
		Amount:     decimal.RequireFromString(amount),
		OccurredOn: on,
		Category:   category,
	})
	suite.Require().NoError(err)
	return txn
}

func (suite *EngineTestSuite) TestPeriodSummaryScenario() {
	suite.add(domain.Income, "1000.00", domain.NewDate(2024, time.March, 5), "Salary")
	suite.add(domain.Expense, "150.00", domain.NewDate(2024, time.March, 10), "Food")
	suite.add(domain.Expense, "50.00", domain.NewDate(2024, time.April, 1), "Transport")

	summary, err := suite.svc.Reporting.PeriodSummary(suite.ctx, domain.Period{Month: 3, Year: 2024})

	suite.Require().NoError(err)
	suite.True(summary.IncomeTotal.Equal(decimal.RequireFromString("1000.00")))
	suite.True(summary.ExpenseTotal.Equal(decimal.RequireFromString("150.00")))
	suite.True(summary.Balance.Equal(decimal.RequireFromString("850.00")))
	suite.Require().Len(summary.ExpenseByCategory, 1)
	suite.True(summary.ExpenseByCategory["Food"].Equal(decimal.RequireFromString("150.00")))
}

func (suite *EngineTestSuite) TestBudgetUpsertScenario() {
	period := domain.Period{Month: 3, Year: 2024}

	first, err := suite.svc.Budget.UpsertBudget(suite.ctx, "Food", decimal.RequireFromString("200.00"), period)
	suite.Require().NoError(err)
	second, err := suite.svc.Budget.UpsertBudget(suite.ctx, "Food", decimal.RequireFromString("300.00"), period)
	suite.Require().NoError(err)

	suite.Equal(first.BudgetID, second.BudgetID)
	budgets, err := suite.svc.Budget.ListBudgetsForPeriod(suite.ctx, period)
	suite.Require().NoError(err)
	suite.Require().Len(budgets, 1)
	suite.True(budgets[0].Budget.Limit.Equal(decimal.RequireFromString("300.00")))
}

func (suite *EngineTestSuite) TestGoalCompletionScenario() {
	goal, err := suite.svc.Goal.AddGoal(suite.ctx, domain.NewGoal{
		Description:  "Emergency fund",
		TargetAmount: decimal.RequireFromString("1000.00"),
		StartDate:    domain.NewDate(2024, time.January, 1),
		EndDate:      domain.NewDate(2024, time.December, 31),
	})
	suite.Require().NoError(err)
	suite.Equal(domain.GoalInProgress, goal.Status)

	updated, err := suite.svc.Goal.ApplyProgress(suite.ctx, goal.GoalID, decimal.RequireFromString("1000.00"))

	suite.Require().NoError(err)
	suite.Equal(domain.GoalCompleted, updated.Status)
	suite.True(suite.svc.Reporting.GoalProgress(*updated).Equal(decimal.NewFromInt(100)))
}

func (suite *EngineTestSuite) TestRenameCascadesAndKeepsTotals() {
	period := domain.Period{Month: 3, Year: 2024}
	suite.add(domain.Expense, "80.00", domain.NewDate(2024, time.March, 2), "Food")
	suite.add(domain.Expense, "20.00", domain.NewDate(2024, time.March, 3), "Food")
	_, err := suite.svc.Budget.UpsertBudget(suite.ctx, "Food", decimal.NewFromInt(200), period)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.svc.Category.RenameCategory(suite.ctx, "Food", "Groceries"))

	food := "Food"
	left, err := suite.svc.Ledger.ListTransactions(suite.ctx, domain.TransactionFilter{Category: &food})
	suite.Require().NoError(err)
	suite.Empty(left)

	budgets, err := suite.svc.Budget.ListBudgetsForPeriod(suite.ctx, period)
	suite.Require().NoError(err)
	suite.Require().Len(budgets, 1)
	suite.Equal("Groceries", budgets[0].Budget.Category)
	suite.True(budgets[0].Consumed.Equal(decimal.NewFromInt(100)))

	summary, err := suite.svc.Reporting.PeriodSummary(suite.ctx, period)
	suite.Require().NoError(err)
	suite.True(summary.ExpenseByCategory["Groceries"].Equal(decimal.NewFromInt(100)))

	err = suite.svc.Category.RenameCategory(suite.ctx, "Groceries", "Transport")
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *EngineTestSuite) TestRemovedCategoryFallsIntoUnknownBucket() {
	suite.add(domain.Expense, "42.00", domain.NewDate(2024, time.May, 3), "Leisure")
	suite.Require().NoError(suite.svc.Category.RemoveCategory(suite.ctx, "Leisure"))

	summary, err := suite.svc.Reporting.PeriodSummary(suite.ctx, domain.Period{Month: 5, Year: 2024})
	suite.Require().NoError(err)
	suite.True(summary.ExpenseByCategory[domain.UnknownCategory].Equal(decimal.NewFromInt(42)))

	stats, err := suite.svc.Reporting.CategoryStatistics(suite.ctx)
	suite.Require().NoError(err)
	last := stats[len(stats)-1]
	suite.Equal(domain.UnknownCategory, last.Category)
	suite.Equal(int64(1), last.TransactionCount)
}

func (suite *EngineTestSuite) TestDashboard() {
	suite.add(domain.Income, "1000.00", domain.NewDate(2024, time.March, 5), "Salary")
	newest := suite.add(domain.Expense, "150.00", domain.NewDate(2024, time.March, 10), "Food")
	_, err := suite.svc.Budget.UpsertBudget(suite.ctx, "Food", decimal.NewFromInt(100), domain.Period{Month: 3, Year: 2024})
	suite.Require().NoError(err)

	dashboard, err := suite.svc.Reporting.Dashboard(suite.ctx, domain.Period{Month: 3, Year: 2024}, 1)

	suite.Require().NoError(err)
	suite.True(dashboard.Summary.Balance.Equal(decimal.NewFromInt(850)))
	suite.Require().Len(dashboard.Budgets, 1)
	suite.True(dashboard.Budgets[0].Overspent())
	suite.True(dashboard.Budgets[0].Percent.Equal(decimal.NewFromInt(100)))
	suite.Empty(dashboard.Goals)
	suite.Require().Len(dashboard.Recent, 1)
	suite.Equal(newest.TransactionID, dashboard.Recent[0].TransactionID)
}

func TestEngine(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}
