package memory

import (
	"context"
	"sort"

	"github.com/SscSPs/fin_assist/internal/apperrors"
	"github.com/SscSPs/fin_assist/internal/core/domain"
	portsrepo "github.com/SscSPs/fin_assist/internal/core/ports/repositories"
)

// GoalRepository is the in-memory goal registry.
type GoalRepository struct {
	store *Store
}

var _ portsrepo.GoalRepositoryFacade = (*GoalRepository)(nil)

func (r *GoalRepository) SaveGoal(_ context.Context, goal domain.Goal) (*domain.Goal, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextGoalID++
	now := s.now()
	goal.GoalID = s.nextGoalID
	goal.AuditFields = domain.AuditFields{CreatedAt: now, LastUpdatedAt: now}
	s.goals[goal.GoalID] = goal
	return &goal, nil
}

func (r *GoalRepository) UpdateGoal(_ context.Context, goal domain.Goal) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.goals[goal.GoalID]
	if !ok {
		return apperrors.NewNotFoundError("goalID", goal.GoalID)
	}
	goal.CreatedAt = existing.CreatedAt
	goal.LastUpdatedAt = s.now()
	s.goals[goal.GoalID] = goal
	return nil
}

func (r *GoalRepository) DeleteGoal(_ context.Context, goalID int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.goals, goalID)
	return nil
}

func (r *GoalRepository) FindGoalByID(_ context.Context, goalID int64) (*domain.Goal, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	goal, ok := s.goals[goalID]
	if !ok {
		return nil, apperrors.NewNotFoundError("goalID", goalID)
	}
	return &goal, nil
}

func (r *GoalRepository) ListGoals(_ context.Context) ([]domain.Goal, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	goals := make([]domain.Goal, 0, len(s.goals))
	for _, g := range s.goals {
		goals = append(goals, g)
	}
	sort.Slice(goals, func(i, j int) bool {
		if goals[i].EndDate.Equal(goals[j].EndDate) {
			return goals[i].GoalID < goals[j].GoalID
		}
		return goals[i].EndDate.Before(goals[j].EndDate)
	})
	return goals, nil
}
