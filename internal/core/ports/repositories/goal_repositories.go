package repositories

import (
	"context"

	"github.com/SscSPs/fin_assist/internal/core/domain"
)

// GoalReader defines read operations for goals
type GoalReader interface {
	// FindGoalByID returns apperrors.ErrNotFound if the goal does not exist.
	FindGoalByID(ctx context.Context, goalID int64) (*domain.Goal, error)

	// ListGoals returns every goal ordered by end date ascending.
	ListGoals(ctx context.Context) ([]domain.Goal, error)
}

// GoalWriter defines write operations for goals
type GoalWriter interface {
	// SaveGoal inserts a goal and returns it with its assigned id.
	SaveGoal(ctx context.Context, goal domain.Goal) (*domain.Goal, error)

	// UpdateGoal overwrites every mutable field. Returns apperrors.ErrNotFound
	// if the goal does not exist.
	UpdateGoal(ctx context.Context, goal domain.Goal) error

	// DeleteGoal removes a goal. Missing ids are ignored.
	DeleteGoal(ctx context.Context, goalID int64) error
}

// GoalRepositoryFacade combines all goal repository interfaces
type GoalRepositoryFacade interface {
	GoalReader
	GoalWriter
}
