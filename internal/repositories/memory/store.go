package memory

import (
	"context"
	"sync"
	"time"

	"github.com/SscSPs/fin_assist/internal/core/domain"
	portsrepo "github.com/SscSPs/fin_assist/internal/core/ports/repositories"
)

// Store keeps every collection behind one lock so that multi-collection
// writes such as a category rename are atomic.
type Store struct {
	mu sync.RWMutex

	nextTransactionID int64
	nextBudgetID      int64
	nextGoalID        int64

	transactions map[int64]domain.Transaction
	categories   map[string]struct{}
	budgets      map[int64]domain.Budget
	goals        map[int64]domain.Goal

	now func() time.Time
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		transactions: make(map[int64]domain.Transaction),
		categories:   make(map[string]struct{}),
		budgets:      make(map[int64]domain.Budget),
		goals:        make(map[int64]domain.Goal),
		now:          time.Now,
	}
}

// Ping always succeeds.
func (s *Store) Ping(_ context.Context) error {
	return nil
}

// NewRepositoryProvider exposes the store through the repository ports.
func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo: &TransactionRepository{store: store},
		CategoryRepo:    &CategoryRepository{store: store},
		BudgetRepo:      &BudgetRepository{store: store},
		GoalRepo:        &GoalRepository{store: store},
		Health:          store,
	}
}

func copyNote(note *string) *string {
	if note == nil {
		return nil
	}
	v := *note
	return &v
}
