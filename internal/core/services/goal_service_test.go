package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/fin_assist/internal/apperrors"
	"github.com/SscSPs/fin_assist/internal/core/domain"
	portssvc "github.com/SscSPs/fin_assist/internal/core/ports/services"
	"github.com/SscSPs/fin_assist/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type GoalServiceTestSuite struct {
	suite.Suite
	mockRepo *MockGoalRepository
	service  portssvc.GoalSvcFacade
}

func (suite *GoalServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockGoalRepository)
	suite.service = services.NewGoalService(suite.mockRepo)
}

func (suite *GoalServiceTestSuite) existingGoal() *domain.Goal {
	return &domain.Goal{
		GoalID:        1,
		Description:   "Emergency fund",
		TargetAmount:  decimal.RequireFromString("1000.00"),
		CurrentAmount: decimal.RequireFromString("250.00"),
		StartDate:     domain.NewDate(2024, time.January, 1),
		EndDate:       domain.NewDate(2024, time.December, 31),
		Status:        domain.GoalInProgress,
		AuditFields: domain.AuditFields{
			CreatedAt:     time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC),
			LastUpdatedAt: time.Date(2024, time.February, 1, 9, 0, 0, 0, time.UTC),
		},
	}
}

func (suite *GoalServiceTestSuite) TestAddGoal_StartsInProgressWithZeroProgress() {
	ctx := context.Background()
	input := domain.NewGoal{
		Description:  " Trip ",
		TargetAmount: decimal.NewFromInt(5000),
		StartDate:    domain.NewDate(2024, time.January, 1),
		EndDate:      domain.NewDate(2024, time.June, 30),
	}
	suite.mockRepo.On("SaveGoal", ctx, mock.MatchedBy(func(g domain.Goal) bool {
		return g.Description == "Trip" && g.CurrentAmount.IsZero() && g.Status == domain.GoalInProgress
	})).Return(&domain.Goal{GoalID: 4, Description: "Trip", Status: domain.GoalInProgress}, nil).Once()

	goal, err := suite.service.AddGoal(ctx, input)

	suite.Require().NoError(err)
	suite.Equal(int64(4), goal.GoalID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *GoalServiceTestSuite) TestAddGoal_EndBeforeStartIsTolerated() {
	ctx := context.Background()
	input := domain.NewGoal{
		Description:  "Backwards",
		TargetAmount: decimal.NewFromInt(100),
		StartDate:    domain.NewDate(2024, time.June, 1),
		EndDate:      domain.NewDate(2024, time.January, 1),
	}
	suite.mockRepo.On("SaveGoal", ctx, mock.AnythingOfType("domain.Goal")).Return(&domain.Goal{GoalID: 2}, nil).Once()

	_, err := suite.service.AddGoal(ctx, input)

	suite.NoError(err)
}

func (suite *GoalServiceTestSuite) TestAddGoal_InvalidTarget() {
	_, err := suite.service.AddGoal(context.Background(), domain.NewGoal{
		Description:  "Nothing",
		TargetAmount: decimal.Zero,
		StartDate:    domain.NewDate(2024, time.January, 1),
		EndDate:      domain.NewDate(2024, time.June, 30),
	})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Equal("targetAmount", apperrors.FieldOf(err))
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveGoal", mock.Anything, mock.Anything)
}

func (suite *GoalServiceTestSuite) TestApplyProgress_CompletesGoal() {
	ctx := context.Background()
	suite.mockRepo.On("FindGoalByID", ctx, int64(1)).Return(suite.existingGoal(), nil).Once()
	suite.mockRepo.On("UpdateGoal", ctx, mock.MatchedBy(func(g domain.Goal) bool {
		return g.CurrentAmount.Equal(decimal.NewFromInt(1000)) && g.Status == domain.GoalCompleted
	})).Return(nil).Once()

	goal, err := suite.service.ApplyProgress(ctx, 1, decimal.NewFromInt(1000))

	suite.Require().NoError(err)
	suite.Equal(domain.GoalCompleted, goal.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *GoalServiceTestSuite) TestApplyProgress_DropsBackToInProgress() {
	ctx := context.Background()
	completed := suite.existingGoal()
	completed.CurrentAmount = decimal.NewFromInt(1200)
	completed.Status = domain.GoalCompleted
	suite.mockRepo.On("FindGoalByID", ctx, int64(1)).Return(completed, nil).Once()
	suite.mockRepo.On("UpdateGoal", ctx, mock.AnythingOfType("domain.Goal")).Return(nil).Once()

	goal, err := suite.service.ApplyProgress(ctx, 1, decimal.NewFromInt(10))

	suite.Require().NoError(err)
	suite.Equal(domain.GoalInProgress, goal.Status)
}

func (suite *GoalServiceTestSuite) TestApplyProgress_Errors() {
	ctx := context.Background()

	_, err := suite.service.ApplyProgress(ctx, 1, decimal.NewFromInt(-1))
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Equal("currentAmount", apperrors.FieldOf(err))

	_, err = suite.service.ApplyProgress(ctx, 1, decimal.RequireFromString("100.001"))
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Equal("currentAmount", apperrors.FieldOf(err))

	suite.mockRepo.On("FindGoalByID", ctx, int64(99)).Return(nil, apperrors.NewNotFoundError("goalID", int64(99))).Once()
	_, err = suite.service.ApplyProgress(ctx, 99, decimal.NewFromInt(1))
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *GoalServiceTestSuite) TestReplaceGoal_IgnoresStatusOverride() {
	ctx := context.Background()
	existing := suite.existingGoal()
	override := domain.GoalCompleted
	update := domain.GoalUpdate{
		Description:    "Bigger fund",
		TargetAmount:   decimal.NewFromInt(2000),
		CurrentAmount:  decimal.NewFromInt(300),
		StartDate:      domain.NewDate(2024, time.January, 1),
		EndDate:        domain.NewDate(2025, time.December, 31),
		StatusOverride: &override,
	}
	suite.mockRepo.On("FindGoalByID", ctx, int64(1)).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateGoal", ctx, mock.MatchedBy(func(g domain.Goal) bool {
		return g.GoalID == 1 && g.Status == domain.GoalInProgress && g.CreatedAt.Equal(existing.CreatedAt)
	})).Return(nil).Once()

	goal, err := suite.service.ReplaceGoal(ctx, 1, update)

	suite.Require().NoError(err)
	suite.Equal(domain.GoalInProgress, goal.Status)
	suite.Equal("Bigger fund", goal.Description)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *GoalServiceTestSuite) TestReplaceGoal_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindGoalByID", ctx, int64(5)).Return(nil, apperrors.NewNotFoundError("goalID", int64(5))).Once()

	_, err := suite.service.ReplaceGoal(ctx, 5, domain.GoalUpdate{
		Description:  "Ghost",
		TargetAmount: decimal.NewFromInt(10),
		StartDate:    domain.NewDate(2024, time.January, 1),
		EndDate:      domain.NewDate(2024, time.February, 1),
	})

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateGoal", mock.Anything, mock.Anything)
}

func (suite *GoalServiceTestSuite) TestListGoals_WithProgress() {
	ctx := context.Background()
	over := suite.existingGoal()
	over.GoalID = 2
	over.CurrentAmount = decimal.NewFromInt(1500)
	suite.mockRepo.On("ListGoals", ctx).Return([]domain.Goal{*suite.existingGoal(), *over}, nil).Once()

	goals, err := suite.service.ListGoals(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(goals, 2)
	suite.True(goals[0].Percent.Equal(decimal.NewFromInt(25)))
	suite.True(goals[1].Percent.Equal(decimal.NewFromInt(100)))
}

func (suite *GoalServiceTestSuite) TestRemoveGoal() {
	ctx := context.Background()
	suite.mockRepo.On("DeleteGoal", ctx, int64(1)).Return(nil).Once()
	suite.mockRepo.On("DeleteGoal", ctx, int64(2)).Return(assert.AnError).Once()

	suite.NoError(suite.service.RemoveGoal(ctx, 1))
	suite.ErrorIs(suite.service.RemoveGoal(ctx, 2), assert.AnError)
}

func TestGoalService(t *testing.T) {
	suite.Run(t, new(GoalServiceTestSuite))
}
