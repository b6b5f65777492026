package domain

import "time"

// DateLayout is the ISO calendar date layout used for storage and the API.
const DateLayout = "2006-01-02"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// NewDate returns the calendar date year-month-day as UTC midnight.
func NewDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ToDate drops the clock part of t, keeping its calendar date as seen in t's location.
func ToDate(t time.Time) time.Time {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
