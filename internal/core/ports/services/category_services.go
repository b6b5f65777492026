package services

import (
	"context"
)

// CategoryReaderSvc defines read operations on the category registry
type CategoryReaderSvc interface {
	// ListCategories returns all names lexicographically ordered.
	ListCategories(ctx context.Context) ([]string, error)
}

// CategoryWriterSvc defines write operations on the category registry
type CategoryWriterSvc interface {
	// AddCategory registers a new name.
	AddCategory(ctx context.Context, name string) error

	// RenameCategory renames a category and cascades into transactions and budgets.
	RenameCategory(ctx context.Context, oldName, newName string) error

	// RemoveCategory removes the registry entry only.
	RemoveCategory(ctx context.Context, name string) error
}

// CategorySvcFacade combines all category service interfaces
type CategorySvcFacade interface {
	CategoryReaderSvc
	CategoryWriterSvc
	StaticDataService
}
