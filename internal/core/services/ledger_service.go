package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/fin_assist/internal/apperrors"
	"github.com/SscSPs/fin_assist/internal/core/domain"
	portsrepo "github.com/SscSPs/fin_assist/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fin_assist/internal/core/ports/services"
	"github.com/SscSPs/fin_assist/internal/platform/metrics"
)

// ledgerService implements portssvc.LedgerSvcFacade
type ledgerService struct {
	BaseService
	txnRepo      portsrepo.TransactionRepositoryFacade
	categoryRepo portsrepo.CategoryReader
	metrics      *metrics.Metrics
}

// LedgerServiceOption is a functional option for configuring the ledger service
type LedgerServiceOption func(*ledgerService)

// WithLedgerMetrics records appended transactions in m.
func WithLedgerMetrics(m *metrics.Metrics) LedgerServiceOption {
	return func(s *ledgerService) {
		s.metrics = m
	}
}

// NewLedgerService creates a new ledger service with the provided options
func NewLedgerService(txnRepo portsrepo.TransactionRepositoryFacade, categoryRepo portsrepo.CategoryReader, options ...LedgerServiceOption) portssvc.LedgerSvcFacade {
	svc := &ledgerService{
		txnRepo:      txnRepo,
		categoryRepo: categoryRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// AddTransaction validates and appends a transaction to the ledger.
func (s *ledgerService) AddTransaction(ctx context.Context, txn domain.NewTransaction) (*domain.Transaction, error) {
	txn.Category = domain.NormalizeCategoryName(txn.Category)
	if !txn.OccurredOn.IsZero() {
		txn.OccurredOn = domain.ToDate(txn.OccurredOn)
	}
	if err := txn.Validate(); err != nil {
		s.LogDebug(ctx, "Rejected transaction", slog.String("error", err.Error()))
		return nil, err
	}

	exists, err := s.categoryRepo.CategoryExists(ctx, txn.Category)
	if err != nil {
		s.LogError(ctx, err, "Failed to check category", slog.String("category", txn.Category))
		return nil, fmt.Errorf("failed to check category: %w", err)
	}
	if !exists {
		return nil, apperrors.NewValidationError("category", "is not registered")
	}

	saved, err := s.txnRepo.SaveTransaction(ctx, txn)
	if err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("kind", string(txn.Kind)))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	s.metrics.IncTransactionsRecorded(string(saved.Kind))
	s.LogInfo(ctx, "Transaction recorded successfully",
		slog.Int64("transaction_id", saved.TransactionID),
		slog.String("kind", string(saved.Kind)))
	return saved, nil
}

// RemoveTransaction deletes a transaction. Absent ids are a no-op.
func (s *ledgerService) RemoveTransaction(ctx context.Context, transactionID int64) error {
	if err := s.txnRepo.DeleteTransaction(ctx, transactionID); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", slog.Int64("transaction_id", transactionID))
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	s.LogInfo(ctx, "Transaction removed", slog.Int64("transaction_id", transactionID))
	return nil
}

// ListTransactions returns the matching ledger rows, newest first.
func (s *ledgerService) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	if filter.Limit < 0 {
		return nil, apperrors.NewValidationError("limit", "must not be negative")
	}
	if filter.Kind != nil && !filter.Kind.IsValid() {
		return nil, apperrors.NewValidationError("kind", "must be INCOME or EXPENSE")
	}
	if filter.DateFrom != nil {
		filter.DateFrom = domain.Ptr(domain.ToDate(*filter.DateFrom))
	}
	if filter.DateTo != nil {
		filter.DateTo = domain.Ptr(domain.ToDate(*filter.DateTo))
	}

	txns, err := s.txnRepo.ListTransactions(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if txns == nil {
		return []domain.Transaction{}, nil
	}
	return txns, nil
}

// RecentTransactions returns the n newest ledger rows.
func (s *ledgerService) RecentTransactions(ctx context.Context, n int) ([]domain.Transaction, error) {
	if n <= 0 {
		return []domain.Transaction{}, nil
	}
	return s.ListTransactions(ctx, domain.TransactionFilter{Limit: n})
}
