package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/fin_assist/internal/apperrors"
	"github.com/SscSPs/fin_assist/internal/core/domain"
	portsrepo "github.com/SscSPs/fin_assist/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fin_assist/internal/core/ports/services"
	"github.com/SscSPs/fin_assist/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

type goalService struct {
	BaseService
	goalRepo portsrepo.GoalRepositoryFacade
}

// NewGoalService creates a new goal registry service
func NewGoalService(goalRepo portsrepo.GoalRepositoryFacade) portssvc.GoalSvcFacade {
	return &goalService{goalRepo: goalRepo}
}

var _ portssvc.GoalSvcFacade = (*goalService)(nil)

// AddGoal creates a goal with no progress yet.
func (s *goalService) AddGoal(ctx context.Context, newGoal domain.NewGoal) (*domain.Goal, error) {
	goal := domain.Goal{
		Description:   strings.TrimSpace(newGoal.Description),
		TargetAmount:  newGoal.TargetAmount,
		CurrentAmount: decimal.Zero,
		StartDate:     toDateOrZero(newGoal.StartDate),
		EndDate:       toDateOrZero(newGoal.EndDate),
	}
	goal.RecomputeStatus()
	if err := goal.Validate(); err != nil {
		return nil, err
	}

	saved, err := s.goalRepo.SaveGoal(ctx, goal)
	if err != nil {
		s.LogError(ctx, err, "Failed to save goal")
		return nil, fmt.Errorf("failed to add goal: %w", err)
	}
	s.LogInfo(ctx, "Goal created successfully", slog.Int64("goal_id", saved.GoalID))
	return saved, nil
}

// ReplaceGoal overwrites every field of a goal. The status override is
// ignored; status always follows the amounts.
func (s *goalService) ReplaceGoal(ctx context.Context, goalID int64, update domain.GoalUpdate) (*domain.Goal, error) {
	goal := domain.Goal{
		GoalID:        goalID,
		Description:   strings.TrimSpace(update.Description),
		TargetAmount:  update.TargetAmount,
		CurrentAmount: update.CurrentAmount,
		StartDate:     toDateOrZero(update.StartDate),
		EndDate:       toDateOrZero(update.EndDate),
	}
	goal.RecomputeStatus()
	if err := goal.Validate(); err != nil {
		return nil, err
	}
	if update.StatusOverride != nil && *update.StatusOverride != goal.Status {
		s.LogDebug(ctx, "Ignoring goal status override",
			slog.Int64("goal_id", goalID),
			slog.String("override", string(*update.StatusOverride)),
			slog.String("status", string(goal.Status)))
	}

	existing, err := s.findGoal(ctx, goalID)
	if err != nil {
		return nil, err
	}
	goal.AuditFields = existing.AuditFields

	return s.update(ctx, goal)
}

// ApplyProgress sets the current amount of a goal and recomputes its status.
func (s *goalService) ApplyProgress(ctx context.Context, goalID int64, currentAmount decimal.Decimal) (*domain.Goal, error) {
	if currentAmount.IsNegative() {
		return nil, apperrors.NewValidationError("currentAmount", "must not be negative")
	}
	if err := domain.ValidateMoney("currentAmount", currentAmount); err != nil {
		return nil, err
	}

	goal, err := s.findGoal(ctx, goalID)
	if err != nil {
		return nil, err
	}
	goal.CurrentAmount = currentAmount
	goal.RecomputeStatus()

	return s.update(ctx, *goal)
}

// RemoveGoal deletes a goal. Absent ids are a no-op.
func (s *goalService) RemoveGoal(ctx context.Context, goalID int64) error {
	if err := s.goalRepo.DeleteGoal(ctx, goalID); err != nil {
		s.LogError(ctx, err, "Failed to delete goal", slog.Int64("goal_id", goalID))
		return fmt.Errorf("failed to remove goal: %w", err)
	}
	s.LogInfo(ctx, "Goal removed", slog.Int64("goal_id", goalID))
	return nil
}

func (s *goalService) GetGoal(ctx context.Context, goalID int64) (*domain.Goal, error) {
	return s.findGoal(ctx, goalID)
}

// ListGoals returns every goal, earliest deadline first, with its progress.
func (s *goalService) ListGoals(ctx context.Context) ([]domain.GoalProgress, error) {
	goals, err := s.goalRepo.ListGoals(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list goals")
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	return toGoalProgress(goals), nil
}

func (s *goalService) findGoal(ctx context.Context, goalID int64) (*domain.Goal, error) {
	goal, err := s.goalRepo.FindGoalByID(ctx, goalID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find goal", slog.Int64("goal_id", goalID))
		}
		return nil, fmt.Errorf("failed to find goal %d: %w", goalID, err)
	}
	return goal, nil
}

func (s *goalService) update(ctx context.Context, goal domain.Goal) (*domain.Goal, error) {
	if err := s.goalRepo.UpdateGoal(ctx, goal); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update goal", slog.Int64("goal_id", goal.GoalID))
		}
		return nil, fmt.Errorf("failed to update goal %d: %w", goal.GoalID, err)
	}
	s.LogInfo(ctx, "Goal updated successfully",
		slog.Int64("goal_id", goal.GoalID),
		slog.String("status", string(goal.Status)))
	return &goal, nil
}

func toGoalProgress(goals []domain.Goal) []domain.GoalProgress {
	progress := make([]domain.GoalProgress, len(goals))
	for i, g := range goals {
		progress[i] = domain.GoalProgress{Goal: g, Percent: accounting.ComputeGoalProgress(g)}
	}
	return progress
}

func toDateOrZero(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return domain.ToDate(t)
}
