package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/fin_assist/internal/apperrors"
	"github.com/SscSPs/fin_assist/internal/core/domain"
	portssvc "github.com/SscSPs/fin_assist/internal/core/ports/services"
	"github.com/SscSPs/fin_assist/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CategoryServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCategoryRepository
	service  portssvc.CategorySvcFacade
}

func (suite *CategoryServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCategoryRepository)
	suite.service = services.NewCategoryService(suite.mockRepo)
}

func (suite *CategoryServiceTestSuite) TestAddCategory_Success() {
	ctx := context.Background()
	suite.mockRepo.On("SaveCategory", ctx, "Pets").Return(nil).Once()

	suite.NoError(suite.service.AddCategory(ctx, "  Pets "))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestAddCategory_Duplicate() {
	ctx := context.Background()
	suite.mockRepo.On("SaveCategory", ctx, "Food").Return(apperrors.NewDuplicateError("name", "Food")).Once()

	err := suite.service.AddCategory(ctx, "Food")

	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *CategoryServiceTestSuite) TestAddCategory_BadFormat() {
	err := suite.service.AddCategory(context.Background(), "Food#1")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCategory", mock.Anything, mock.Anything)
}

func (suite *CategoryServiceTestSuite) TestRenameCategory_Success() {
	ctx := context.Background()
	suite.mockRepo.On("RenameCategory", ctx, "Food", "Groceries").Return(nil).Once()

	suite.NoError(suite.service.RenameCategory(ctx, "Food", "Groceries"))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestRenameCategory_PropagatesKinds() {
	ctx := context.Background()
	suite.mockRepo.On("RenameCategory", ctx, "Missing", "Groceries").Return(apperrors.NewNotFoundError("name", "Missing")).Once()
	suite.mockRepo.On("RenameCategory", ctx, "Food", "Transport").Return(apperrors.NewDuplicateError("name", "Transport")).Once()
	suite.mockRepo.On("RenameCategory", ctx, "Leisure", "Fun").Return(apperrors.NewStorageError("rename", assert.AnError)).Once()

	suite.ErrorIs(suite.service.RenameCategory(ctx, "Missing", "Groceries"), apperrors.ErrNotFound)
	suite.ErrorIs(suite.service.RenameCategory(ctx, "Food", "Transport"), apperrors.ErrDuplicate)
	suite.ErrorIs(suite.service.RenameCategory(ctx, "Leisure", "Fun"), apperrors.ErrStorage)
}

func (suite *CategoryServiceTestSuite) TestRenameCategory_SameNameIsNoop() {
	ctx := context.Background()
	suite.mockRepo.On("CategoryExists", ctx, "Food").Return(true, nil).Once()
	suite.mockRepo.On("CategoryExists", ctx, "Ghost").Return(false, nil).Once()

	suite.NoError(suite.service.RenameCategory(ctx, "Food", "Food"))
	suite.ErrorIs(suite.service.RenameCategory(ctx, "Ghost", "Ghost"), apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "RenameCategory", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CategoryServiceTestSuite) TestRenameCategory_InvalidNewName() {
	err := suite.service.RenameCategory(context.Background(), "Food", "")

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CategoryServiceTestSuite) TestRemoveCategory() {
	ctx := context.Background()
	suite.mockRepo.On("DeleteCategory", ctx, "Food").Return(nil).Once()

	suite.NoError(suite.service.RemoveCategory(ctx, "Food"))
	suite.ErrorIs(suite.service.RemoveCategory(ctx, "  "), apperrors.ErrValidation)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestListCategories_Empty() {
	ctx := context.Background()
	suite.mockRepo.On("ListCategories", ctx).Return(nil, nil).Once()

	names, err := suite.service.ListCategories(ctx)

	suite.Require().NoError(err)
	suite.NotNil(names)
	suite.Empty(names)
}

func (suite *CategoryServiceTestSuite) TestInitializeStaticData_SeedsEmptyRegistry() {
	ctx := context.Background()
	suite.mockRepo.On("ListCategories", ctx).Return([]string{}, nil).Once()
	suite.mockRepo.On("SaveCategories", ctx, domain.DefaultCategories).Return(nil).Once()

	suite.NoError(suite.service.InitializeStaticData(ctx))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestInitializeStaticData_SkipsPopulatedRegistry() {
	ctx := context.Background()
	suite.mockRepo.On("ListCategories", ctx).Return([]string{"Custom"}, nil).Once()

	suite.NoError(suite.service.InitializeStaticData(ctx))
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCategories", mock.Anything, mock.Anything)
}

func TestCategoryService(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}
