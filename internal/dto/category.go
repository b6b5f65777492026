package dto

import (
	"github.com/SscSPs/fin_assist/internal/core/domain"
	"github.com/SscSPs/fin_assist/internal/utils"
	"github.com/shopspring/decimal"
)

// CreateCategoryRequest defines the data needed to register a category.
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,max=50"`
}

// RenameCategoryRequest carries the new name of a category.
type RenameCategoryRequest struct {
	NewName string `json:"newName" binding:"required,max=50"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// CategoryStatResponse defines the per-category ledger statistics.
type CategoryStatResponse struct {
	Category             string          `json:"category"`
	Color                string          `json:"color"`
	TransactionCount     int64           `json:"transactionCount"`
	TotalAmount          decimal.Decimal `json:"totalAmount"`
	TotalAmountFormatted string          `json:"totalAmountFormatted"`
}

// ToCategoryResponse converts a category name, as accepted by the registry, to its DTO.
func ToCategoryResponse(name string) CategoryResponse {
	name = domain.NormalizeCategoryName(name)
	return CategoryResponse{Name: name, Color: utils.CategoryColor(name)}
}

// ToCategoryResponses converts registry names to DTOs.
func ToCategoryResponses(names []string) []CategoryResponse {
	res := make([]CategoryResponse, len(names))
	for i, n := range names {
		res[i] = CategoryResponse{Name: n, Color: utils.CategoryColor(n)}
	}
	return res
}

// ToCategoryStatResponses converts statistics rows to DTOs.
func ToCategoryStatResponses(stats []domain.CategoryStat) []CategoryStatResponse {
	res := make([]CategoryStatResponse, len(stats))
	for i, s := range stats {
		res[i] = CategoryStatResponse{
			Category:             s.Category,
			Color:                utils.CategoryColor(s.Category),
			TransactionCount:     s.TransactionCount,
			TotalAmount:          s.TotalAmount,
			TotalAmountFormatted: utils.FormatBRL(s.TotalAmount),
		}
	}
	return res
}
