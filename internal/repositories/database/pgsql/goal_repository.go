package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/fin_assist/internal/apperrors"
	"github.com/SscSPs/fin_assist/internal/core/domain"
	portsrepo "github.com/SscSPs/fin_assist/internal/core/ports/repositories"
	"github.com/SscSPs/fin_assist/internal/models"
	"github.com/SscSPs/fin_assist/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const FULL_GOAL_SELECT_QUERY = `
SELECT
	g.goal_id, g.description, g.target_amount, g.current_amount, g.start_date, g.end_date, g.status,
	g.created_at, g.last_updated_at
FROM goals g
`

type PgxGoalRepository struct {
	BaseRepository
}

// newPgxGoalRepository creates a new repository for savings goals.
func newPgxGoalRepository(pool *pgxpool.Pool) portsrepo.GoalRepositoryFacade {
	return &PgxGoalRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.GoalRepositoryFacade = (*PgxGoalRepository)(nil)

// getGoals runs the full select with the given filter
func (r *PgxGoalRepository) getGoals(ctx context.Context, filterQuery string, args ...any) ([]domain.Goal, error) {
	rows, err := r.Pool.Query(ctx, FULL_GOAL_SELECT_QUERY+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewStorageError("query goals", err)
	}
	defer rows.Close()

	modelGoals, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Goal])
	if err != nil {
		return nil, apperrors.NewStorageError("collect goal rows", err)
	}
	return mapping.ToDomainGoalSlice(modelGoals), nil
}

func (r *PgxGoalRepository) SaveGoal(ctx context.Context, goal domain.Goal) (*domain.Goal, error) {
	modelGoal := mapping.ToModelGoal(goal)
	query := `
		INSERT INTO goals (description, target_amount, current_amount, start_date, end_date, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING goal_id, description, target_amount, current_amount, start_date, end_date, status, created_at, last_updated_at;
	`
	rows, err := r.Pool.Query(ctx, query,
		modelGoal.Description,
		modelGoal.TargetAmount,
		modelGoal.CurrentAmount,
		modelGoal.StartDate,
		modelGoal.EndDate,
		modelGoal.Status,
	)
	if err != nil {
		return nil, apperrors.NewStorageError("insert goal", err)
	}
	saved, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Goal])
	if err != nil {
		return nil, apperrors.NewStorageError("insert goal", err)
	}

	result := mapping.ToDomainGoal(saved)
	return &result, nil
}

// UpdateGoal overwrites every column of an existing goal.
func (r *PgxGoalRepository) UpdateGoal(ctx context.Context, goal domain.Goal) error {
	modelGoal := mapping.ToModelGoal(goal)
	query := `
		UPDATE goals SET
			description = $2,
			target_amount = $3,
			current_amount = $4,
			start_date = $5,
			end_date = $6,
			status = $7,
			last_updated_at = NOW()
		WHERE goal_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		modelGoal.GoalID,
		modelGoal.Description,
		modelGoal.TargetAmount,
		modelGoal.CurrentAmount,
		modelGoal.StartDate,
		modelGoal.EndDate,
		modelGoal.Status,
	)
	if err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("update goal %d", goal.GoalID), err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("goalID", goal.GoalID)
	}
	return nil
}

// DeleteGoal removes a goal. Missing ids are ignored.
func (r *PgxGoalRepository) DeleteGoal(ctx context.Context, goalID int64) error {
	if _, err := r.Pool.Exec(ctx, `DELETE FROM goals WHERE goal_id = $1;`, goalID); err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("delete goal %d", goalID), err)
	}
	return nil
}

func (r *PgxGoalRepository) FindGoalByID(ctx context.Context, goalID int64) (*domain.Goal, error) {
	rows, err := r.Pool.Query(ctx, FULL_GOAL_SELECT_QUERY+`WHERE g.goal_id = $1`, goalID)
	if err != nil {
		return nil, apperrors.NewStorageError("query goal", err)
	}
	modelGoal, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Goal])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("goalID", goalID)
		}
		return nil, apperrors.NewStorageError("collect goal row", err)
	}

	goal := mapping.ToDomainGoal(modelGoal)
	return &goal, nil
}

// ListGoals returns every goal, earliest deadline first.
func (r *PgxGoalRepository) ListGoals(ctx context.Context) ([]domain.Goal, error) {
	return r.getGoals(ctx, `ORDER BY g.end_date, g.goal_id`)
}
