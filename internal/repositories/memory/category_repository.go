package memory

import (
	"context"
	"sort"

	"github.com/SscSPs/fin_assist/internal/apperrors"
	portsrepo "github.com/SscSPs/fin_assist/internal/core/ports/repositories"
)

// CategoryRepository is the in-memory category registry.
type CategoryRepository struct {
	store *Store
}

var _ portsrepo.CategoryRepositoryFacade = (*CategoryRepository)(nil)

func (r *CategoryRepository) ListCategories(_ context.Context) ([]string, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.categories))
	for name := range s.categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (r *CategoryRepository) CategoryExists(_ context.Context, name string) (bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.categories[name]
	return ok, nil
}

func (r *CategoryRepository) SaveCategory(_ context.Context, name string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.categories[name]; ok {
		return apperrors.NewDuplicateError("name", name)
	}
	s.categories[name] = struct{}{}
	return nil
}

func (r *CategoryRepository) SaveCategories(_ context.Context, names []string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, name := range names {
		s.categories[name] = struct{}{}
	}
	return nil
}

// RenameCategory checks every precondition before the first write, so a
// failure leaves all collections untouched.
func (r *CategoryRepository) RenameCategory(_ context.Context, oldName, newName string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[oldName]; !ok {
		return apperrors.NewNotFoundError("name", oldName)
	}
	if _, ok := s.categories[newName]; ok {
		return apperrors.NewDuplicateError("name", newName)
	}
	for _, b := range s.budgets {
		if b.Category != oldName {
			continue
		}
		for _, other := range s.budgets {
			if other.Category == newName && other.Month == b.Month && other.Year == b.Year {
				return apperrors.NewDuplicateError("budget", newName)
			}
		}
	}

	delete(s.categories, oldName)
	s.categories[newName] = struct{}{}
	for id, txn := range s.transactions {
		if txn.Category == oldName {
			txn.Category = newName
			s.transactions[id] = txn
		}
	}
	now := s.now()
	for id, b := range s.budgets {
		if b.Category == oldName {
			b.Category = newName
			b.LastUpdatedAt = now
			s.budgets[id] = b
		}
	}
	return nil
}

func (r *CategoryRepository) DeleteCategory(_ context.Context, name string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.categories, name)
	return nil
}
