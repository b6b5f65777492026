package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/fin_assist/internal/apperrors"
	"github.com/SscSPs/fin_assist/internal/core/domain"
	portsrepo "github.com/SscSPs/fin_assist/internal/core/ports/repositories"
	"github.com/SscSPs/fin_assist/internal/models"
	"github.com/SscSPs/fin_assist/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBudgetRepository struct {
	BaseRepository
}

// newPgxBudgetRepository creates a new repository for budgets.
func newPgxBudgetRepository(pool *pgxpool.Pool) portsrepo.BudgetRepositoryFacade {
	return &PgxBudgetRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.BudgetRepositoryFacade = (*PgxBudgetRepository)(nil)

// UpsertBudget relies on the (category, month, year) unique constraint so
// that concurrent upserts of the same key converge on one row.
func (r *PgxBudgetRepository) UpsertBudget(ctx context.Context, budget domain.Budget) (*domain.Budget, error) {
	modelBudget := mapping.ToModelBudget(budget)
	query := `
		INSERT INTO budgets (category, limit_amount, month, year)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (category, month, year) DO UPDATE SET
			limit_amount = EXCLUDED.limit_amount,
			last_updated_at = NOW()
		RETURNING budget_id, category, limit_amount, month, year, created_at, last_updated_at;
	`
	rows, err := r.Pool.Query(ctx, query,
		modelBudget.Category,
		modelBudget.LimitAmount,
		modelBudget.Month,
		modelBudget.Year,
	)
	if err != nil {
		return nil, apperrors.NewStorageError("upsert budget", err)
	}
	saved, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Budget])
	if err != nil {
		return nil, apperrors.NewStorageError("upsert budget", err)
	}

	result := mapping.ToDomainBudget(saved)
	return &result, nil
}

// DeleteBudget removes a budget. Missing ids are ignored.
func (r *PgxBudgetRepository) DeleteBudget(ctx context.Context, budgetID int64) error {
	if _, err := r.Pool.Exec(ctx, `DELETE FROM budgets WHERE budget_id = $1;`, budgetID); err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("delete budget %d", budgetID), err)
	}
	return nil
}

func (r *PgxBudgetRepository) FindBudgetsByPeriod(ctx context.Context, period domain.Period) ([]domain.Budget, error) {
	query := `
		SELECT budget_id, category, limit_amount, month, year, created_at, last_updated_at
		FROM budgets
		WHERE month = $1 AND year = $2
		ORDER BY category COLLATE "C", budget_id;
	`
	rows, err := r.Pool.Query(ctx, query, period.Month, period.Year)
	if err != nil {
		return nil, apperrors.NewStorageError("query budgets", err)
	}
	defer rows.Close()

	modelBudgets, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Budget])
	if err != nil {
		return nil, apperrors.NewStorageError("collect budget rows", err)
	}
	return mapping.ToDomainBudgetSlice(modelBudgets), nil
}
