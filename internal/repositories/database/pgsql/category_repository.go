package pgsql

import (
	"context"

	"github.com/SscSPs/fin_assist/internal/apperrors"
	portsrepo "github.com/SscSPs/fin_assist/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCategoryRepository struct {
	BaseRepository
}

// newPgxCategoryRepository creates a new repository for the category registry.
func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepositoryFacade {
	return &PgxCategoryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

func (r *PgxCategoryRepository) ListCategories(ctx context.Context) ([]string, error) {
	rows, err := r.Pool.Query(ctx, `SELECT name FROM categories ORDER BY name COLLATE "C";`)
	if err != nil {
		return nil, apperrors.NewStorageError("query categories", err)
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, apperrors.NewStorageError("collect category rows", err)
	}
	return names, nil
}

func (r *PgxCategoryRepository) CategoryExists(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM categories WHERE name = $1);`, name).Scan(&exists)
	if err != nil {
		return false, apperrors.NewStorageError("check category "+name, err)
	}
	return exists, nil
}

func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, name string) error {
	_, err := r.Pool.Exec(ctx, `INSERT INTO categories (name) VALUES ($1);`, name)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewDuplicateError("name", name)
		}
		return apperrors.NewStorageError("insert category "+name, err)
	}
	return nil
}

// SaveCategories inserts the names that are not registered yet.
func (r *PgxCategoryRepository) SaveCategories(ctx context.Context, names []string) error {
	batch := &pgx.Batch{}
	for _, name := range names {
		batch.Queue(`INSERT INTO categories (name) VALUES ($1) ON CONFLICT (name) DO NOTHING;`, name)
	}
	if err := r.Pool.SendBatch(ctx, batch).Close(); err != nil {
		return apperrors.NewStorageError("insert categories", err)
	}
	return nil
}

// RenameCategory renames the registry entry and rewrites every transaction
// and budget carrying the old name inside one database transaction.
func (r *PgxCategoryRepository) RenameCategory(ctx context.Context, oldName, newName string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	// Will be ignored if the transaction is committed
	defer r.Rollback(ctx, tx)

	var oldExists, newExists, budgetClash bool
	err = tx.QueryRow(ctx, `
		SELECT
			EXISTS (SELECT 1 FROM categories WHERE name = $1),
			EXISTS (SELECT 1 FROM categories WHERE name = $2),
			EXISTS (
				SELECT 1 FROM budgets o
				JOIN budgets n ON n.month = o.month AND n.year = o.year
				WHERE o.category = $1 AND n.category = $2
			);
	`, oldName, newName).Scan(&oldExists, &newExists, &budgetClash)
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

	statements := []string{
		`UPDATE categories SET name = $2, last_updated_at = NOW() WHERE name = $1;`,
		`UPDATE transactions SET category = $2, last_updated_at = NOW() WHERE category = $1;`,
		`UPDATE budgets SET category = $2, last_updated_at = NOW() WHERE category = $1;`,
	}
	for _, stmt := range statements {
		if _, err := tx.Exec(ctx, stmt, oldName, newName); err != nil {
			if isUniqueViolation(err) {
				return apperrors.NewDuplicateError("name", newName)
			}
			return apperrors.NewStorageError("rename category "+oldName, err)
		}
	}

	return r.Commit(ctx, tx)
}

// DeleteCategory removes the registry entry. Missing names are ignored.
func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, name string) error {
	if _, err := r.Pool.Exec(ctx, `DELETE FROM categories WHERE name = $1;`, name); err != nil {
		return apperrors.NewStorageError("delete category "+name, err)
	}
	return nil
}
