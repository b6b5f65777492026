package domain

import (
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/SscSPs/fin_assist/internal/apperrors"
	"github.com/shopspring/decimal"
)

// TransactionKind tells whether money came in or went out. The sign of an
// amount is implied by its kind.
type TransactionKind string

const (
	Income  TransactionKind = "INCOME"
	Expense TransactionKind = "EXPENSE"
)

// MaxNoteLength is the maximum number of characters in a transaction note.
const MaxNoteLength = 100

// IsValid reports whether k is one of the two known kinds.
func (k TransactionKind) IsValid() bool {
	return k == Income || k == Expense
}

// ParseTransactionKind accepts a kind name in any letter case.
func ParseTransactionKind(s string) (TransactionKind, error) {
	kind := TransactionKind(strings.ToUpper(strings.TrimSpace(s)))
	if !kind.IsValid() {
		return "", apperrors.NewValidationError("kind", "must be INCOME or EXPENSE")
	}
	return kind, nil
}

// Transaction is one immutable ledger entry.
type Transaction struct {
	TransactionID int64           `json:"transactionID"`
	Kind          TransactionKind `json:"kind"`
	Amount        decimal.Decimal `json:"amount"` // always positive
	OccurredOn    time.Time       `json:"occurredOn"`
	Category      string          `json:"category"`
	Note          *string         `json:"note,omitempty"`
	AuditFields
}

// NewTransaction holds the fields supplied when appending to the ledger.
type NewTransaction struct {
	Kind       TransactionKind
	Amount     decimal.Decimal
	OccurredOn time.Time
	Category   string
	Note       *string
}

// Validate checks the invariants every ledger entry must satisfy.
func (n NewTransaction) Validate() error {
	if !n.Kind.IsValid() {
		return apperrors.NewValidationError("kind", "must be INCOME or EXPENSE")
	}
	if n.Amount.LessThanOrEqual(decimal.Zero) {
		return apperrors.NewValidationError("amount", "must be positive")
	}
	if err := ValidateMoney("amount", n.Amount); err != nil {
		return err
	}
	if n.OccurredOn.IsZero() {
		return apperrors.NewValidationError("occurredOn", "is required")
	}
	if strings.TrimSpace(n.Category) == "" {
		return apperrors.NewValidationError("category", "is required")
	}
	if n.Note != nil && utf8.RuneCountInString(*n.Note) > MaxNoteLength {
		return apperrors.NewValidationError("note", "must be at most 100 characters")
	}
	return nil
}

// TransactionCursor marks the last row of a page in ledger order.
type TransactionCursor struct {
	OccurredOn    time.Time
	TransactionID int64
}

// TransactionFilter narrows a ledger listing. Every non-nil field applies
// with AND semantics; date bounds are inclusive.
type TransactionFilter struct {
	Kind     *TransactionKind
	Category *string
	DateFrom *time.Time
	DateTo   *time.Time

	// Limit caps the number of rows returned; zero means no cap.
	Limit int
	// After resumes the listing strictly after the given row.
	After *TransactionCursor
}

// Matches reports whether t satisfies every predicate of the filter,
// including the cursor position.
func (f TransactionFilter) Matches(t Transaction) bool {
	if f.Kind != nil && t.Kind != *f.Kind {
		return false
	}
	if f.Category != nil && t.Category != *f.Category {
		return false
	}
	if f.DateFrom != nil && t.OccurredOn.Before(*f.DateFrom) {
		return false
	}
	if f.DateTo != nil && t.OccurredOn.After(*f.DateTo) {
		return false
	}
	if f.After != nil && !LedgerBefore(f.After.OccurredOn, f.After.TransactionID, t) {
		return false
	}
	return true
}

// LedgerBefore reports whether t comes after the (date, id) position in
// ledger order, i.e. it is older, or same-day with a smaller id.
func LedgerBefore(date time.Time, id int64, t Transaction) bool {
	if t.OccurredOn.Equal(date) {
		return t.TransactionID < id
	}
	return t.OccurredOn.Before(date)
}

// SortLedger orders transactions by occurred_on descending, ties broken by id
// descending.
func SortLedger(ts []Transaction) {
	sort.SliceStable(ts, func(i, j int) bool {
		if ts[i].OccurredOn.Equal(ts[j].OccurredOn) {
			return ts[i].TransactionID > ts[j].TransactionID
		}
		return ts[i].OccurredOn.After(ts[j].OccurredOn)
	})
}
