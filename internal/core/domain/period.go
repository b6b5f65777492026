package domain

import (
	"time"

	"github.com/SscSPs/fin_assist/internal/apperrors"
)

// Period is one calendar month used to scope aggregation queries.
type Period struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// PeriodOf returns the period a calendar date falls in.
func PeriodOf(date time.Time) Period {
	return Period{Month: int(date.Month()), Year: date.Year()}
}

// Validate checks that the month is in 1..12.
func (p Period) Validate() error {
	if p.Month < 1 || p.Month > 12 {
		return apperrors.NewValidationError("month", "must be between 1 and 12")
	}
	return nil
}

// FirstDay is the first calendar date of the period.
func (p Period) FirstDay() time.Time {
	return NewDate(p.Year, time.Month(p.Month), 1)
}

// LastDay is the last calendar date of the period.
func (p Period) LastDay() time.Time {
	return p.FirstDay().AddDate(0, 1, -1)
}

// Contains reports whether date falls within the period.
func (p Period) Contains(date time.Time) bool {
	return date.Year() == p.Year && int(date.Month()) == p.Month
}
