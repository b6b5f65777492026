package services

import (
	"context"

	"github.com/SscSPs/fin_assist/internal/core/domain"
)

// LedgerReaderSvc defines read operations on the ledger
type LedgerReaderSvc interface {
	// ListTransactions returns matching rows, newest first.
	ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error)

	// RecentTransactions returns the n newest rows.
	RecentTransactions(ctx context.Context, n int) ([]domain.Transaction, error)
}

// LedgerWriterSvc defines write operations on the ledger
type LedgerWriterSvc interface {
	// AddTransaction validates and appends a transaction.
	AddTransaction(ctx context.Context, txn domain.NewTransaction) (*domain.Transaction, error)

	// RemoveTransaction deletes a transaction; absent ids are a no-op.
	RemoveTransaction(ctx context.Context, transactionID int64) error
}

// LedgerSvcFacade combines all ledger service interfaces
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}
