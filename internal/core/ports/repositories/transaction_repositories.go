package repositories

import (
	"context"

	"github.com/SscSPs/fin_assist/internal/core/domain"
)

// TransactionReader defines read operations for the ledger
type TransactionReader interface {
	// ListTransactions returns the ledger rows matching filter, ordered by
	// occurred_on descending then id descending.
	ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for the ledger
type TransactionWriter interface {
	// SaveTransaction appends a row and returns it with its assigned id.
	SaveTransaction(ctx context.Context, txn domain.NewTransaction) (*domain.Transaction, error)

	// DeleteTransaction removes a row. Deleting a missing id is not an error.
	DeleteTransaction(ctx context.Context, transactionID int64) error
}

// TransactionRepositoryFacade combines all ledger repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
