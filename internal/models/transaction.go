package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind is stored as INCOME or EXPENSE.
type TransactionKind string

const (
	Income  TransactionKind = "INCOME"
	Expense TransactionKind = "EXPENSE"
)

// Transaction is a row of the transactions table.
type Transaction struct {
	TransactionID int64           `json:"transactionID" db:"transaction_id"`
	Kind          TransactionKind `json:"kind" db:"kind"`
	Amount        decimal.Decimal `json:"amount" db:"amount"` // NUMERIC(15,2), always positive
	OccurredOn    time.Time       `json:"occurredOn" db:"occurred_on"`
	Category      string          `json:"category" db:"category"` // not a foreign key; survives category removal
	Note          *string         `json:"note" db:"note"`
	AuditFields
}
