package memory

import (
	"context"
	"sort"

	"github.com/SscSPs/fin_assist/internal/core/domain"
	portsrepo "github.com/SscSPs/fin_assist/internal/core/ports/repositories"
)

// BudgetRepository is the in-memory budget registry.
type BudgetRepository struct {
	store *Store
}

var _ portsrepo.BudgetRepositoryFacade = (*BudgetRepository)(nil)

func (r *BudgetRepository) UpsertBudget(_ context.Context, budget domain.Budget) (*domain.Budget, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for id, existing := range s.budgets {
		if existing.Category == budget.Category && existing.Month == budget.Month && existing.Year == budget.Year {
			existing.Limit = budget.Limit
			existing.LastUpdatedAt = now
			s.budgets[id] = existing
			return &existing, nil
		}
	}

	s.nextBudgetID++
	budget.BudgetID = s.nextBudgetID
	budget.AuditFields = domain.AuditFields{CreatedAt: now, LastUpdatedAt: now}
	s.budgets[budget.BudgetID] = budget
	return &budget, nil
}

func (r *BudgetRepository) DeleteBudget(_ context.Context, budgetID int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.budgets, budgetID)
	return nil
}

func (r *BudgetRepository) FindBudgetsByPeriod(_ context.Context, period domain.Period) ([]domain.Budget, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	budgets := make([]domain.Budget, 0)
	for _, b := range s.budgets {
		if b.Month == period.Month && b.Year == period.Year {
			budgets = append(budgets, b)
		}
	}
	sort.Slice(budgets, func(i, j int) bool {
		if budgets[i].Category == budgets[j].Category {
			return budgets[i].BudgetID < budgets[j].BudgetID
		}
		return budgets[i].Category < budgets[j].Category
	})
	return budgets, nil
}
