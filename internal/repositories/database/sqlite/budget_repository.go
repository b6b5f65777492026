package sqlite

import (
	"context"
	"fmt"

	"github.com/SscSPs/fin_assist/internal/apperrors"
	"github.com/SscSPs/fin_assist/internal/core/domain"
	portsrepo "github.com/SscSPs/fin_assist/internal/core/ports/repositories"
	"github.com/SscSPs/fin_assist/internal/models"
	"github.com/SscSPs/fin_assist/internal/utils/mapping"
)

const budgetColumns = `budget_id, category, limit_amount, month, year, created_at, last_updated_at`

// BudgetRepository is the SQLite budget registry.
type BudgetRepository struct {
	baseRepository
}

var _ portsrepo.BudgetRepositoryFacade = (*BudgetRepository)(nil)

func scanBudget(row rowScanner) (models.Budget, error) {
	var (
		m                models.Budget
		created, updated string
	)
	if err := row.Scan(&m.BudgetID, &m.Category, &m.LimitAmount, &m.Month, &m.Year, &created, &updated); err != nil {
		return m, err
	}
	audit, err := parseAudit(created, updated)
	if err != nil {
		return m, err
	}
	m.AuditFields = mapping.ToModelAuditFields(audit)
	return m, nil
}

func (r *BudgetRepository) UpsertBudget(ctx context.Context, budget domain.Budget) (*domain.Budget, error) {
	m := mapping.ToModelBudget(budget)
	now := r.timestamp()
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO budgets (category, limit_amount, month, year, created_at, last_updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (category, month, year) DO UPDATE SET
			limit_amount = excluded.limit_amount,
			last_updated_at = excluded.last_updated_at
		RETURNING `+budgetColumns,
		m.Category, m.LimitAmount.StringFixed(2), m.Month, m.Year, now, now,
	)
	saved, err := scanBudget(row)
	if err != nil {
		return nil, apperrors.NewStorageError("upsert budget", err)
	}
	result := mapping.ToDomainBudget(saved)
	return &result, nil
}

func (r *BudgetRepository) DeleteBudget(ctx context.Context, budgetID int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM budgets WHERE budget_id = ?`, budgetID); err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("delete budget %d", budgetID), err)
	}
	return nil
}

func (r *BudgetRepository) FindBudgetsByPeriod(ctx context.Context, period domain.Period) ([]domain.Budget, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+budgetColumns+` FROM budgets WHERE month = ? AND year = ? ORDER BY category, budget_id`,
		period.Month, period.Year)
	if err != nil {
		return nil, apperrors.NewStorageError("query budgets", err)
	}
	defer rows.Close()

	budgets := make([]domain.Budget, 0)
	for rows.Next() {
		m, err := scanBudget(rows)
		if err != nil {
			return nil, apperrors.NewStorageError("scan budget row", err)
		}
		budgets = append(budgets, mapping.ToDomainBudget(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStorageError("iterate budget rows", err)
	}
	return budgets, nil
}
