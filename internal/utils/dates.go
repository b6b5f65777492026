package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/fin_assist/internal/core/domain"
)

// BRDateLayout is the day-first layout used in forms and rendered output.
const BRDateLayout = "02/01/2006"

// ParseDate accepts "dd/mm/yyyy" or "yyyy-mm-dd" and returns the calendar
// date at UTC midnight.
func ParseDate(s string) (time.Time, error) {
	raw := strings.TrimSpace(s)
	for _, layout := range []string{BRDateLayout, domain.DateLayout} {
		if t, err := time.Parse(layout, raw); err == nil {
			return domain.ToDate(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q: expected dd/mm/yyyy or yyyy-mm-dd", s)
}

// FormatDateBR renders a calendar date as "dd/mm/yyyy".
func FormatDateBR(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(BRDateLayout)
}

// IsFutureDate reports whether date falls after today's date in now's location.
func IsFutureDate(date, now time.Time) bool {
	return date.After(domain.ToDate(now))
}
