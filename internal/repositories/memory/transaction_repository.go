package memory

import (
	"context"

	"github.com/SscSPs/fin_assist/internal/core/domain"
	portsrepo "github.com/SscSPs/fin_assist/internal/core/ports/repositories"
)

// TransactionRepository is the in-memory ledger.
type TransactionRepository struct {
	store *Store
}

var _ portsrepo.TransactionRepositoryFacade = (*TransactionRepository)(nil)

func (r *TransactionRepository) SaveTransaction(_ context.Context, txn domain.NewTransaction) (*domain.Transaction, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextTransactionID++
	now := s.now()
	saved := domain.Transaction{
		TransactionID: s.nextTransactionID,
		Kind:          txn.Kind,
		Amount:        txn.Amount,
		OccurredOn:    txn.OccurredOn,
		Category:      txn.Category,
		Note:          copyNote(txn.Note),
		AuditFields:   domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	s.transactions[saved.TransactionID] = saved
	return &saved, nil
}

func (r *TransactionRepository) DeleteTransaction(_ context.Context, transactionID int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.transactions, transactionID)
	return nil
}

func (r *TransactionRepository) ListTransactions(_ context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	txns := make([]domain.Transaction, 0, len(s.transactions))
	for _, txn := range s.transactions {
		if filter.Matches(txn) {
			txn.Note = copyNote(txn.Note)
			txns = append(txns, txn)
		}
	}
	domain.SortLedger(txns)
	if filter.Limit > 0 && len(txns) > filter.Limit {
		txns = txns[:filter.Limit]
	}
	return txns, nil
}
