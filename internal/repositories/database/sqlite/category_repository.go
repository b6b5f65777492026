package sqlite

import (
	"context"

	"github.com/SscSPs/fin_assist/internal/apperrors"
	portsrepo "github.com/SscSPs/fin_assist/internal/core/ports/repositories"
)

// CategoryRepository is the SQLite category registry.
type CategoryRepository struct {
	baseRepository
}

var _ portsrepo.CategoryRepositoryFacade = (*CategoryRepository)(nil)

func (r *CategoryRepository) ListCategories(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name FROM categories ORDER BY name`)
	if err != nil {
		return nil, apperrors.NewStorageError("query categories", err)
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, apperrors.NewStorageError("scan category row", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStorageError("iterate category rows", err)
	}
	return names, nil
}

func (r *CategoryRepository) CategoryExists(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM categories WHERE name = ?)`, name).Scan(&exists)
	if err != nil {
		return false, apperrors.NewStorageError("check category "+name, err)
	}
	return exists, nil
}

func (r *CategoryRepository) SaveCategory(ctx context.Context, name string) error {
	now := r.timestamp()
	_, err := r.db.ExecContext(ctx, `INSERT INTO categories (name, created_at, last_updated_at) VALUES (?, ?, ?)`, name, now, now)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewDuplicateError("name", name)
		}
		return apperrors.NewStorageError("insert category "+name, err)
	}
	return nil
}

func (r *CategoryRepository) SaveCategories(ctx context.Context, names []string) error {
	tx, err := r.begin(ctx)
	if err != nil {
		return err
	}
	defer r.rollback(tx)

	now := r.timestamp()
	for _, name := range names {
		_, err := tx.ExecContext(ctx, `INSERT INTO categories (name, created_at, last_updated_at) VALUES (?, ?, ?) ON CONFLICT (name) DO NOTHING`, name, now, now)
		if err != nil {
			return apperrors.NewStorageError("insert category "+name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return apperrors.NewStorageError("commit categories", err)
	}
	return nil
}

// RenameCategory rewrites the registry, the ledger and the budgets in one
// SQLite transaction. Preconditions are checked before the first write.
func (r *CategoryRepository) RenameCategory(ctx context.Context, oldName, newName string) error {
	tx, err := r.begin(ctx)
	if err != nil {
		return err
	}
	defer r.rollback(tx)

	var oldExists, newExists, budgetClash bool
	err = tx.QueryRowContext(ctx, `
		SELECT
			EXISTS (SELECT 1 FROM categories WHERE name = ?1),
			EXISTS (SELECT 1 FROM categories WHERE name = ?2),
			EXISTS (
				SELECT 1 FROM budgets o
				JOIN budgets n ON n.month = o.month AND n.year = o.year
				WHERE o.category = ?1 AND n.category = ?2
			)`, oldName, newName).Scan(&oldExists, &newExists, &budgetClash)
	if err != nil {
		return apperrors.NewStorageError("check rename preconditions", err)
	}
	switch {
	case !oldExists:
		return apperrors.NewNotFoundError("name", oldName)
	case newExists:
		return apperrors.NewDuplicateError("name", newName)
	case budgetClash:
		return apperrors.NewDuplicateError("budget", newName)
	}

	now := r.timestamp()
	statements := []string{
		`UPDATE categories SET name = ?2, last_updated_at = ?3 WHERE name = ?1`,
		`UPDATE transactions SET category = ?2, last_updated_at = ?3 WHERE category = ?1`,
		`UPDATE budgets SET category = ?2, last_updated_at = ?3 WHERE category = ?1`,
	}
	for _, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt, oldName, newName, now); err != nil {
			if isUniqueViolation(err) {
				return apperrors.NewDuplicateError("name", newName)
			}
			return apperrors.NewStorageError("rename category "+oldName, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return apperrors.NewStorageError("commit rename", err)
	}
	return nil
}

func (r *CategoryRepository) DeleteCategory(ctx context.Context, name string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE name = ?`, name); err != nil {
		return apperrors.NewStorageError("delete category "+name, err)
	}
	return nil
}
