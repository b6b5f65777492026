package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/fin_assist/internal/apperrors"
	"github.com/SscSPs/fin_assist/internal/core/domain"
	portsrepo "github.com/SscSPs/fin_assist/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fin_assist/internal/core/ports/services"
	"github.com/SscSPs/fin_assist/internal/platform/metrics"
)

type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryFacade
	metrics      *metrics.Metrics
}

// CategoryServiceOption is a functional option for configuring the category service
type CategoryServiceOption func(*categoryService)

// WithCategoryMetrics records committed renames in m.
func WithCategoryMetrics(m *metrics.Metrics) CategoryServiceOption {
	return func(s *categoryService) {
		s.metrics = m
	}
}

// NewCategoryService creates a new category registry service
func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade, options ...CategoryServiceOption) portssvc.CategorySvcFacade {
	svc := &categoryService{categoryRepo: categoryRepo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) AddCategory(ctx context.Context, name string) error {
	name = domain.NormalizeCategoryName(name)
	if err := domain.ValidateCategoryName(name); err != nil {
		return err
	}

	if err := s.categoryRepo.SaveCategory(ctx, name); err != nil {
		s.LogError(ctx, err, "Failed to save category", slog.String("category", name))
		return fmt.Errorf("failed to add category: %w", err)
	}
	s.LogInfo(ctx, "Category created successfully", slog.String("category", name))
	return nil
}

// RenameCategory renames oldName and rewrites every transaction and budget
// referencing it. Renaming a category to itself is a no-op.
func (s *categoryService) RenameCategory(ctx context.Context, oldName, newName string) error {
	oldName = domain.NormalizeCategoryName(oldName)
	newName = domain.NormalizeCategoryName(newName)
	if oldName == "" {
		return apperrors.NewValidationError("oldName", "is required")
	}
	if err := domain.ValidateCategoryName(newName); err != nil {
		return err
	}

	if oldName == newName {
		exists, err := s.categoryRepo.CategoryExists(ctx, oldName)
		if err != nil {
			return fmt.Errorf("failed to check category: %w", err)
		}
		if !exists {
			return apperrors.NewNotFoundError("name", oldName)
		}
		return nil
	}

	if err := s.categoryRepo.RenameCategory(ctx, oldName, newName); err != nil {
		s.LogError(ctx, err, "Failed to rename category",
			slog.String("old_name", oldName),
			slog.String("new_name", newName))
		return fmt.Errorf("failed to rename category: %w", err)
	}

	s.metrics.IncCategoryRenames()
	s.LogInfo(ctx, "Category renamed successfully",
		slog.String("old_name", oldName),
		slog.String("new_name", newName))
	return nil
}

// RemoveCategory removes the registry entry; transactions keep the name.
func (s *categoryService) RemoveCategory(ctx context.Context, name string) error {
	name = domain.NormalizeCategoryName(name)
	if name == "" {
		return apperrors.NewValidationError("name", "is required")
	}
	if err := s.categoryRepo.DeleteCategory(ctx, name); err != nil {
		s.LogError(ctx, err, "Failed to delete category", slog.String("category", name))
		return fmt.Errorf("failed to remove category: %w", err)
	}
	s.LogInfo(ctx, "Category removed", slog.String("category", name))
	return nil
}

func (s *categoryService) ListCategories(ctx context.Context) ([]string, error) {
	names, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories")
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	if names == nil {
		return []string{}, nil
	}
	return names, nil
}

// InitializeStaticData seeds the default categories when the registry is empty.
func (s *categoryService) InitializeStaticData(ctx context.Context) error {
	names, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		return fmt.Errorf("failed to read category registry: %w", err)
	}
	if len(names) > 0 {
		s.LogDebug(ctx, "Category registry already initialized", slog.Int("count", len(names)))
		return nil
	}

	if err := s.categoryRepo.SaveCategories(ctx, domain.DefaultCategories); err != nil {
		s.LogError(ctx, err, "Failed to seed default categories")
		return fmt.Errorf("failed to seed default categories: %w", err)
	}
	s.LogInfo(ctx, "Default categories seeded", slog.Int("count", len(domain.DefaultCategories)))
	return nil
}
