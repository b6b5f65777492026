package dto_test

import (
	"testing"
	"time"

	"github.com/SscSPs/fin_assist/internal/apperrors"
	"github.com/SscSPs/fin_assist/internal/core/domain"
	"github.com/SscSPs/fin_assist/internal/dto"
	"github.com/SscSPs/fin_assist/internal/utils/pagination"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, time.March, 15, 22, 0, 0, 0, time.UTC)

func TestCreateTransactionRequest_ToDomain(t *testing.T) {
	req := dto.CreateTransactionRequest{Kind: "expense", Amount: "R$ 1.234,56", Date: "10/03/2024", Category: "Food"}

	txn, err := req.ToDomain(now)
	require.NoError(t, err)
	assert.Equal(t, domain.Expense, txn.Kind)
	assert.True(t, decimal.RequireFromString("1234.56").Equal(txn.Amount))
	assert.Equal(t, domain.NewDate(2024, time.March, 10), txn.OccurredOn)

	req.Date = "2024-03-15"
	_, err = req.ToDomain(now)
	assert.NoError(t, err, "today is not the future")

	req.Date = "16/03/2024"
	_, err = req.ToDomain(now)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Equal(t, "date", apperrors.FieldOf(err))

	req.Date = "03-10-2024"
	_, err = req.ToDomain(now)
	assert.Equal(t, "date", apperrors.FieldOf(err))
}

func TestListTransactionsParams_ToFilter(t *testing.T) {
	token := pagination.EncodeTransactionCursor(domain.TransactionCursor{OccurredOn: domain.NewDate(2024, time.March, 5), TransactionID: 7})
	params := dto.ListTransactionsParams{
		Kind:      "INCOME",
		Category:  "Salary",
		DateFrom:  "01/03/2024",
		DateTo:    "2024-03-31",
		Limit:     10,
		NextToken: token,
	}

	filter, err := params.ToFilter()
	require.NoError(t, err)
	assert.Equal(t, domain.Income, *filter.Kind)
	assert.Equal(t, "Salary", *filter.Category)
	assert.Equal(t, domain.NewDate(2024, time.March, 1), *filter.DateFrom)
	assert.Equal(t, domain.NewDate(2024, time.March, 31), *filter.DateTo)
	assert.Equal(t, 11, filter.Limit)
	require.NotNil(t, filter.After)
	assert.Equal(t, int64(7), filter.After.TransactionID)

	_, err = dto.ListTransactionsParams{NextToken: "@@@"}.ToFilter()
	assert.Equal(t, "nextToken", apperrors.FieldOf(err))

	empty, err := dto.ListTransactionsParams{}.ToFilter()
	require.NoError(t, err)
	assert.Zero(t, empty.Limit)
	assert.Nil(t, empty.Kind)
}

func TestToListTransactionsResponse(t *testing.T) {
	txns := []domain.Transaction{
		{TransactionID: 3, Kind: domain.Expense, Amount: decimal.RequireFromString("10"), OccurredOn: domain.NewDate(2024, time.March, 10), Category: "Food"},
		{TransactionID: 2, Kind: domain.Expense, Amount: decimal.RequireFromString("20"), OccurredOn: domain.NewDate(2024, time.March, 9), Category: "Food"},
		{TransactionID: 1, Kind: domain.Income, Amount: decimal.RequireFromString("30"), OccurredOn: domain.NewDate(2024, time.March, 8), Category: "Salary"},
	}

	page := dto.ToListTransactionsResponse(txns, 2)
	require.Len(t, page.Transactions, 2)
	require.NotEmpty(t, page.NextToken)
	cursor, err := pagination.DecodeTransactionCursor(page.NextToken)
	require.NoError(t, err)
	assert.Equal(t, int64(2), cursor.TransactionID)
	assert.Equal(t, "R$ 10,00", page.Transactions[0].AmountFormatted)
	assert.Equal(t, "10/03/2024", page.Transactions[0].DateFormatted)
	assert.Equal(t, "#FF6B6B", page.Transactions[0].CategoryColor)

	last := dto.ToListTransactionsResponse(txns, 3)
	assert.Len(t, last.Transactions, 3)
	assert.Empty(t, last.NextToken)

	unlimited := dto.ToListTransactionsResponse(txns, 0)
	assert.Len(t, unlimited.Transactions, 3)
	assert.Empty(t, unlimited.NextToken)
}

func TestUpdateGoalRequest_ToDomain(t *testing.T) {
	req := dto.UpdateGoalRequest{
		Description:   "Trip",
		TargetAmount:  "5.000,00",
		CurrentAmount: "0",
		StartDate:     "01/01/2024",
		EndDate:       "31/12/2024",
		Status:        domain.Ptr("COMPLETED"),
	}

	update, err := req.ToDomain()
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("5000").Equal(update.TargetAmount))
	assert.True(t, update.CurrentAmount.IsZero())
	require.NotNil(t, update.StatusOverride)
	assert.Equal(t, domain.GoalCompleted, *update.StatusOverride)

	req.EndDate = "someday"
	_, err = req.ToDomain()
	assert.Equal(t, "endDate", apperrors.FieldOf(err))
}

func TestToBudgetProgressResponses_Overspent(t *testing.T) {
	progress := []domain.BudgetProgress{{
		Budget:   domain.Budget{BudgetID: 1, Category: "Food", Limit: decimal.RequireFromString("200"), Month: 3, Year: 2024},
		Consumed: decimal.RequireFromString("250"),
		Percent:  decimal.NewFromInt(100),
	}}

	res := dto.ToBudgetProgressResponses(progress)
	require.Len(t, res, 1)
	assert.True(t, res[0].Overspent)
	assert.Equal(t, "R$ 250,00", res[0].ConsumedFormatted)
	assert.Equal(t, "R$ 200,00", res[0].LimitFormatted)
}

func TestToPeriodSummaryResponse_BreakdownOrder(t *testing.T) {
	summary := domain.PeriodSummary{
		Period:       domain.Period{Month: 3, Year: 2024},
		IncomeTotal:  decimal.RequireFromString("1000"),
		ExpenseTotal: decimal.RequireFromString("200"),
		Balance:      decimal.RequireFromString("800"),
		ExpenseByCategory: map[string]decimal.Decimal{
			"Transport":            decimal.RequireFromString("50"),
			"Food":                 decimal.RequireFromString("100"),
			domain.UnknownCategory: decimal.RequireFromString("50"),
		},
	}

	res := dto.ToPeriodSummaryResponse(summary)
	require.Len(t, res.ExpenseByCategory, 3)
	assert.Equal(t, "Food", res.ExpenseByCategory[0].Category)
	assert.Equal(t, "Transport", res.ExpenseByCategory[1].Category)
	assert.Equal(t, domain.UnknownCategory, res.ExpenseByCategory[2].Category)
	assert.Equal(t, "#808080", res.ExpenseByCategory[2].Color)
	assert.True(t, decimal.NewFromInt(50).Equal(res.ExpenseByCategory[0].Share))
	assert.True(t, decimal.NewFromInt(25).Equal(res.ExpenseByCategory[2].Share))
	assert.Equal(t, "R$ 800,00", res.BalanceFormatted)
}
