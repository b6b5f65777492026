package export_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/SscSPs/fin_assist/internal/core/domain"
	"github.com/SscSPs/fin_assist/internal/utils/export"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteTransactionsXLSX(t *testing.T) {
	txns := []domain.Transaction{
		{TransactionID: 2, Kind: domain.Expense, Amount: decimal.RequireFromString("150.00"), OccurredOn: domain.NewDate(2024, time.March, 10), Category: "Food", Note: domain.Ptr("lunch")},
		{TransactionID: 1, Kind: domain.Income, Amount: decimal.RequireFromString("1000.00"), OccurredOn: domain.NewDate(2024, time.March, 5), Category: "Salary"},
	}

	var buf bytes.Buffer
	require.NoError(t, export.WriteTransactionsXLSX(&buf, txns))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(export.TransactionsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"ID", "Date", "Kind", "Category", "Amount", "Note"}, rows[0])
	assert.Equal(t, "2", rows[1][0])
	assert.Equal(t, "2024-03-10", rows[1][1])
	assert.Equal(t, "Food", rows[1][3])
	assert.Equal(t, "lunch", rows[1][5])
	assert.Equal(t, "INCOME", rows[2][2])

	raw, err := f.GetCellValue(export.TransactionsSheet, "E3", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "1000", raw)
}

func TestWriteTransactionsXLSX_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteTransactionsXLSX(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(export.TransactionsSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
