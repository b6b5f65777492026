package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/SscSPs/fin_assist/internal/apperrors"
)

// MaxCategoryNameLength is the maximum number of characters in a category name.
const MaxCategoryNameLength = 50

// UnknownCategory is the aggregation bucket for transactions whose category
// is no longer in the registry. It can never pass ValidateCategoryName.
const UnknownCategory = "__unknown__"

// DefaultCategories is the registry content seeded on first initialization.
var DefaultCategories = []string{
	"Food",
	"Transport",
	"Housing",
	"Leisure",
	"Health",
	"Education",
	"Salary",
	"Investments",
	"Other",
}

// NormalizeCategoryName trims surrounding whitespace.
func NormalizeCategoryName(name string) string {
	return strings.TrimSpace(name)
}

// ValidateCategoryName checks that name is non-empty, short enough and made
// only of letters and spaces.
func ValidateCategoryName(name string) error {
	if strings.TrimSpace(name) == "" {
		return apperrors.NewValidationError("name", "is required")
	}
	if utf8.RuneCountInString(name) > MaxCategoryNameLength {
		return apperrors.NewValidationError("name", "must be at most 50 characters")
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && r != ' ' {
			return apperrors.NewValidationError("name", "must contain only letters and spaces")
		}
	}
	return nil
}
