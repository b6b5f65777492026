package repositories

import (
	"context"
)

// CategoryReader defines read operations for the category registry
type CategoryReader interface {
	// ListCategories returns every category name in lexicographic order.
	ListCategories(ctx context.Context) ([]string, error)

	// CategoryExists reports whether name is registered (exact match).
	CategoryExists(ctx context.Context, name string) (bool, error)
}

// CategoryWriter defines write operations for the category registry
type CategoryWriter interface {
	// SaveCategory registers a name. Returns apperrors.ErrDuplicate if present.
	SaveCategory(ctx context.Context, name string) error

	// SaveCategories registers every name not yet present.
	SaveCategories(ctx context.Context, names []string) error

	// RenameCategory rewrites the registry row, every transaction and every
	// budget referencing oldName in a single atomic unit.
	RenameCategory(ctx context.Context, oldName, newName string) error

	// DeleteCategory removes the registry row only. Missing names are ignored.
	DeleteCategory(ctx context.Context, name string) error
}

// CategoryRepositoryFacade combines all category repository interfaces
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}
