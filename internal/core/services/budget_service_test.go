package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/fin_assist/internal/apperrors"
	"github.com/SscSPs/fin_assist/internal/core/domain"
	portssvc "github.com/SscSPs/fin_assist/internal/core/ports/services"
	"github.com/SscSPs/fin_assist/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type BudgetServiceTestSuite struct {
	suite.Suite
	mockBudgetRepo   *MockBudgetRepository
	mockCategoryRepo *MockCategoryRepository
	mockReporting    *MockReportingService
	service          portssvc.BudgetSvcFacade
}

func (suite *BudgetServiceTestSuite) SetupTest() {
	suite.mockBudgetRepo = new(MockBudgetRepository)
	suite.mockCategoryRepo = new(MockCategoryRepository)
	suite.mockReporting = new(MockReportingService)
	suite.service = services.NewBudgetService(suite.mockBudgetRepo, suite.mockCategoryRepo, suite.mockReporting)
}

func (suite *BudgetServiceTestSuite) TestUpsertBudget_Success() {
	ctx := context.Background()
	limit := decimal.RequireFromString("200.00")
	expected := domain.Budget{Category: "Food", Limit: limit, Month: 3, Year: 2024}
	saved := expected
	saved.BudgetID = 7

	suite.mockCategoryRepo.On("CategoryExists", ctx, "Food").Return(true, nil).Once()
	suite.mockBudgetRepo.On("UpsertBudget", ctx, expected).Return(&saved, nil).Once()

	budget, err := suite.service.UpsertBudget(ctx, " Food", limit, domain.Period{Month: 3, Year: 2024})

	suite.Require().NoError(err)
	suite.Equal(int64(7), budget.BudgetID)
	suite.mockBudgetRepo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestUpsertBudget_Validation() {
	ctx := context.Background()

	_, err := suite.service.UpsertBudget(ctx, "Food", decimal.Zero, domain.Period{Month: 3, Year: 2024})
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Equal("limit", apperrors.FieldOf(err))

	_, err = suite.service.UpsertBudget(ctx, "Food", decimal.NewFromInt(10), domain.Period{Month: 13, Year: 2024})
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Equal("month", apperrors.FieldOf(err))

	suite.mockBudgetRepo.AssertNotCalled(suite.T(), "UpsertBudget", mock.Anything, mock.Anything)
}

func (suite *BudgetServiceTestSuite) TestUpsertBudget_UnknownCategory() {
	ctx := context.Background()
	suite.mockCategoryRepo.On("CategoryExists", ctx, "Pets").Return(false, nil).Once()

	_, err := suite.service.UpsertBudget(ctx, "Pets", decimal.NewFromInt(10), domain.Period{Month: 1, Year: 2024})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Equal("category", apperrors.FieldOf(err))
}

func (suite *BudgetServiceTestSuite) TestUpsertBudget_StorageError() {
	ctx := context.Background()
	suite.mockCategoryRepo.On("CategoryExists", ctx, "Food").Return(true, nil).Once()
	suite.mockBudgetRepo.On("UpsertBudget", ctx, mock.AnythingOfType("domain.Budget")).Return(nil, assert.AnError).Once()

	budget, err := suite.service.UpsertBudget(ctx, "Food", decimal.NewFromInt(10), domain.Period{Month: 1, Year: 2024})

	suite.Nil(budget)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *BudgetServiceTestSuite) TestRemoveBudget() {
	ctx := context.Background()
	suite.mockBudgetRepo.On("DeleteBudget", ctx, int64(3)).Return(nil).Once()

	suite.NoError(suite.service.RemoveBudget(ctx, 3))
	suite.mockBudgetRepo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestListBudgetsForPeriod_DelegatesToReporting() {
	ctx := context.Background()
	period := domain.Period{Month: 3, Year: 2024}
	expected := []domain.BudgetProgress{{
		Budget:   domain.Budget{BudgetID: 1, Category: "Food", Limit: decimal.NewFromInt(200), Month: 3, Year: 2024},
		Consumed: decimal.NewFromInt(150),
		Percent:  decimal.NewFromInt(75),
	}}
	suite.mockReporting.On("BudgetProgress", ctx, period).Return(expected, nil).Once()

	progress, err := suite.service.ListBudgetsForPeriod(ctx, period)

	suite.Require().NoError(err)
	suite.Equal(expected, progress)
	suite.mockReporting.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestListBudgetsForPeriod_InvalidMonth() {
	_, err := suite.service.ListBudgetsForPeriod(context.Background(), domain.Period{Month: 0, Year: 2024})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockReporting.AssertNotCalled(suite.T(), "BudgetProgress", mock.Anything, mock.Anything)
}

func TestBudgetService(t *testing.T) {
	suite.Run(t, new(BudgetServiceTestSuite))
}
