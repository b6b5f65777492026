package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/fin_assist/internal/apperrors"
	"github.com/SscSPs/fin_assist/internal/core/domain"
	portssvc "github.com/SscSPs/fin_assist/internal/core/ports/services"
	"github.com/SscSPs/fin_assist/internal/core/services"
	"github.com/SscSPs/fin_assist/internal/platform/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	mockTxnRepo      *MockTransactionRepository
	mockCategoryRepo *MockCategoryRepository
	metrics          *metrics.Metrics
	service          portssvc.LedgerSvcFacade
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockCategoryRepo = new(MockCategoryRepository)
	suite.metrics = metrics.New(prometheus.NewRegistry())
	suite.service = services.NewLedgerService(suite.mockTxnRepo, suite.mockCategoryRepo, services.WithLedgerMetrics(suite.metrics))
}

func (suite *LedgerServiceTestSuite) TestAddTransaction_Success() {
	ctx := context.Background()
	input := domain.NewTransaction{
		Kind:       domain.Expense,
		Amount:     decimal.RequireFromString("150.00"),
		OccurredOn: time.Date(2024, time.March, 10, 15, 30, 0, 0, time.UTC),
		Category:   " Food ",
		Note:       domain.Ptr("lunch"),
	}
	saved := &domain.Transaction{TransactionID: 1, Kind: domain.Expense, Amount: input.Amount, OccurredOn: domain.NewDate(2024, time.March, 10), Category: "Food"}

	suite.mockCategoryRepo.On("CategoryExists", ctx, "Food").Return(true, nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(n domain.NewTransaction) bool {
		return n.Category == "Food" && n.OccurredOn.Equal(domain.NewDate(2024, time.March, 10)) && n.Amount.Equal(input.Amount)
	})).Return(saved, nil).Once()

	txn, err := suite.service.AddTransaction(ctx, input)

	suite.Require().NoError(err)
	suite.Equal(int64(1), txn.TransactionID)
	suite.Equal(1.0, testutil.ToFloat64(suite.metrics.TransactionsRecorded.WithLabelValues("EXPENSE")))
	suite.mockCategoryRepo.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestAddTransaction_ValidationFailsFast() {
	ctx := context.Background()
	input := domain.NewTransaction{
		Kind:       domain.Income,
		Amount:     decimal.Zero,
		OccurredOn: domain.NewDate(2024, time.March, 10),
		Category:   "Salary",
	}

	txn, err := suite.service.AddTransaction(ctx, input)

	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Equal("amount", apperrors.FieldOf(err))
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestAddTransaction_UnknownCategory() {
	ctx := context.Background()
	input := domain.NewTransaction{
		Kind:       domain.Expense,
		Amount:     decimal.NewFromInt(10),
		OccurredOn: domain.NewDate(2024, time.March, 10),
		Category:   "Nope",
	}
	suite.mockCategoryRepo.On("CategoryExists", ctx, "Nope").Return(false, nil).Once()

	_, err := suite.service.AddTransaction(ctx, input)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Equal("category", apperrors.FieldOf(err))
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestAddTransaction_StorageError() {
	ctx := context.Background()
	input := domain.NewTransaction{
		Kind:       domain.Expense,
		Amount:     decimal.NewFromInt(10),
		OccurredOn: domain.NewDate(2024, time.March, 10),
		Category:   "Food",
	}
	suite.mockCategoryRepo.On("CategoryExists", ctx, "Food").Return(true, nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.NewTransaction")).Return(nil, assert.AnError).Once()

	txn, err := suite.service.AddTransaction(ctx, input)

	suite.Nil(txn)
	suite.ErrorIs(err, assert.AnError)
	suite.Equal(0.0, testutil.ToFloat64(suite.metrics.TransactionsRecorded.WithLabelValues("EXPENSE")))
}

func (suite *LedgerServiceTestSuite) TestRemoveTransaction() {
	ctx := context.Background()
	suite.mockTxnRepo.On("DeleteTransaction", ctx, int64(999)).Return(nil).Once()

	suite.NoError(suite.service.RemoveTransaction(ctx, 999))
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestListTransactions_NormalizesAndNeverReturnsNil() {
	ctx := context.Background()
	from := time.Date(2024, time.March, 1, 13, 0, 0, 0, time.UTC)
	suite.mockTxnRepo.On("ListTransactions", ctx, mock.MatchedBy(func(f domain.TransactionFilter) bool {
		return f.DateFrom != nil && f.DateFrom.Equal(domain.NewDate(2024, time.March, 1))
	})).Return(nil, nil).Once()

	txns, err := suite.service.ListTransactions(ctx, domain.TransactionFilter{DateFrom: &from})

	suite.Require().NoError(err)
	suite.NotNil(txns)
	suite.Empty(txns)
}

func (suite *LedgerServiceTestSuite) TestListTransactions_RejectsBadFilter() {
	ctx := context.Background()

	_, err := suite.service.ListTransactions(ctx, domain.TransactionFilter{Limit: -1})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.ListTransactions(ctx, domain.TransactionFilter{Kind: domain.Ptr(domain.TransactionKind("BOTH"))})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestRecentTransactions() {
	ctx := context.Background()
	expected := []domain.Transaction{{TransactionID: 3}, {TransactionID: 2}}
	suite.mockTxnRepo.On("ListTransactions", ctx, domain.TransactionFilter{Limit: 5}).Return(expected, nil).Once()

	txns, err := suite.service.RecentTransactions(ctx, 5)

	suite.Require().NoError(err)
	suite.Equal(expected, txns)

	none, err := suite.service.RecentTransactions(ctx, 0)
	suite.Require().NoError(err)
	suite.Empty(none)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func TestLedgerService(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
