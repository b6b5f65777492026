package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SscSPs/fin_assist/internal/apperrors"
	"github.com/SscSPs/fin_assist/internal/core/domain"
	portsrepo "github.com/SscSPs/fin_assist/internal/core/ports/repositories"
	"github.com/SscSPs/fin_assist/internal/models"
	"github.com/SscSPs/fin_assist/internal/utils/mapping"
)

const goalColumns = `goal_id, description, target_amount, current_amount, start_date, end_date, status, created_at, last_updated_at`

// GoalRepository is the SQLite goal registry.
type GoalRepository struct {
	baseRepository
}

var _ portsrepo.GoalRepositoryFacade = (*GoalRepository)(nil)

func scanGoal(row rowScanner) (models.Goal, error) {
	var (
		m                                 models.Goal
		start, end, created, lastUpdateAt string
	)
	if err := row.Scan(&m.GoalID, &m.Description, &m.TargetAmount, &m.CurrentAmount, &start, &end, &m.Status, &created, &lastUpdateAt); err != nil {
		return m, err
	}
	var err error
	if m.StartDate, err = parseDate(start); err != nil {
		return m, err
	}
	if m.EndDate, err = parseDate(end); err != nil {
		return m, err
	}
	audit, err := parseAudit(created, lastUpdateAt)
	if err != nil {
		return m, err
	}
	m.AuditFields = mapping.ToModelAuditFields(audit)
	return m, nil
}

func (r *GoalRepository) SaveGoal(ctx context.Context, goal domain.Goal) (*domain.Goal, error) {
	m := mapping.ToModelGoal(goal)
	now := r.timestamp()
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO goals (description, target_amount, current_amount, start_date, end_date, status, created_at, last_updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING `+goalColumns,
		m.Description, m.TargetAmount.StringFixed(2), m.CurrentAmount.StringFixed(2),
		formatDate(m.StartDate), formatDate(m.EndDate), m.Status, now, now,
	)
	saved, err := scanGoal(row)
	if err != nil {
		return nil, apperrors.NewStorageError("insert goal", err)
	}
	result := mapping.ToDomainGoal(saved)
	return &result, nil
}

func (r *GoalRepository) UpdateGoal(ctx context.Context, goal domain.Goal) error {
	m := mapping.ToModelGoal(goal)
	res, err := r.db.ExecContext(ctx, `
		UPDATE goals SET
			description = ?, target_amount = ?, current_amount = ?,
			start_date = ?, end_date = ?, status = ?, last_updated_at = ?
		WHERE goal_id = ?`,
		m.Description, m.TargetAmount.StringFixed(2), m.CurrentAmount.StringFixed(2),
		formatDate(m.StartDate), formatDate(m.EndDate), m.Status, r.timestamp(), m.GoalID,
	)
	if err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("update goal %d", goal.GoalID), err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("update goal %d", goal.GoalID), err)
	}
	if affected == 0 {
		return apperrors.NewNotFoundError("goalID", goal.GoalID)
	}
	return nil
}

func (r *GoalRepository) DeleteGoal(ctx context.Context, goalID int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM goals WHERE goal_id = ?`, goalID); err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("delete goal %d", goalID), err)
	}
	return nil
}

func (r *GoalRepository) FindGoalByID(ctx context.Context, goalID int64) (*domain.Goal, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+goalColumns+` FROM goals WHERE goal_id = ?`, goalID)
	m, err := scanGoal(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("goalID", goalID)
		}
		return nil, apperrors.NewStorageError("scan goal row", err)
	}
	goal := mapping.ToDomainGoal(m)
	return &goal, nil
}

func (r *GoalRepository) ListGoals(ctx context.Context) ([]domain.Goal, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+goalColumns+` FROM goals ORDER BY end_date, goal_id`)
	if err != nil {
		return nil, apperrors.NewStorageError("query goals", err)
	}
	defer rows.Close()

	goals := make([]domain.Goal, 0)
	for rows.Next() {
		m, err := scanGoal(rows)
		if err != nil {
			return nil, apperrors.NewStorageError("scan goal row", err)
		}
		goals = append(goals, mapping.ToDomainGoal(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStorageError("iterate goal rows", err)
	}
	return goals, nil
}
