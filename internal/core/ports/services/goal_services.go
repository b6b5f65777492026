package services

import (
	"context"

	"github.com/SscSPs/fin_assist/internal/core/domain"
	"github.com/shopspring/decimal"
)

// GoalReaderSvc defines read operations on goals
type GoalReaderSvc interface {
	// GetGoal returns a single goal.
	GetGoal(ctx context.Context, goalID int64) (*domain.Goal, error)

	// ListGoals returns all goals, earliest deadline first, with their progress.
	ListGoals(ctx context.Context) ([]domain.GoalProgress, error)
}

// GoalWriterSvc defines write operations on goals
type GoalWriterSvc interface {
	// AddGoal creates a goal with no progress.
	AddGoal(ctx context.Context, goal domain.NewGoal) (*domain.Goal, error)

	// ReplaceGoal overwrites a goal; the status is recomputed from the amounts.
	ReplaceGoal(ctx context.Context, goalID int64, update domain.GoalUpdate) (*domain.Goal, error)

	// ApplyProgress sets the current amount and recomputes the status.
	ApplyProgress(ctx context.Context, goalID int64, currentAmount decimal.Decimal) (*domain.Goal, error)

	// RemoveGoal deletes a goal; absent ids are a no-op.
	RemoveGoal(ctx context.Context, goalID int64) error
}

// GoalSvcFacade combines all goal service interfaces
type GoalSvcFacade interface {
	GoalReaderSvc
	GoalWriterSvc
}
