package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/SscSPs/fin_assist/internal/apperrors"
	"github.com/shopspring/decimal"
)

// GoalStatus is derived from the goal amounts, never set independently.
type GoalStatus string

const (
	GoalInProgress GoalStatus = "IN_PROGRESS"
	GoalCompleted  GoalStatus = "COMPLETED"
)

// MaxGoalDescriptionLength is the maximum number of characters in a goal description.
const MaxGoalDescriptionLength = 100

// Goal is a savings target with manually tracked progress.
type Goal struct {
	GoalID        int64           `json:"goalID"`
	Description   string          `json:"description"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	StartDate     time.Time       `json:"startDate"`
	EndDate       time.Time       `json:"endDate"`
	Status        GoalStatus      `json:"status"`
	AuditFields
}

// GoalStatusFor returns Completed iff current >= target.
func GoalStatusFor(current, target decimal.Decimal) GoalStatus {
	if current.GreaterThanOrEqual(target) {
		return GoalCompleted
	}
	return GoalInProgress
}

// RecomputeStatus derives Status from the amounts.
func (g *Goal) RecomputeStatus() {
	g.Status = GoalStatusFor(g.CurrentAmount, g.TargetAmount)
}

// Validate checks the amounts, dates and description. An end date before the
// start date is accepted.
func (g Goal) Validate() error {
	if strings.TrimSpace(g.Description) == "" {
		return apperrors.NewValidationError("description", "is required")
	}
	if utf8.RuneCountInString(g.Description) > MaxGoalDescriptionLength {
		return apperrors.NewValidationError("description", "must be at most 100 characters")
	}
	if g.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return apperrors.NewValidationError("targetAmount", "must be positive")
	}
	if err := ValidateMoney("targetAmount", g.TargetAmount); err != nil {
		return err
	}
	if g.CurrentAmount.IsNegative() {
		return apperrors.NewValidationError("currentAmount", "must not be negative")
	}
	if err := ValidateMoney("currentAmount", g.CurrentAmount); err != nil {
		return err
	}
	if g.StartDate.IsZero() {
		return apperrors.NewValidationError("startDate", "is required")
	}
	if g.EndDate.IsZero() {
		return apperrors.NewValidationError("endDate", "is required")
	}
	return nil
}

// NewGoal holds the fields supplied when creating a goal.
type NewGoal struct {
	Description  string
	TargetAmount decimal.Decimal
	StartDate    time.Time
	EndDate      time.Time
}

// GoalUpdate is a full overwrite of a goal. StatusOverride round-trips an
// edit form and is ignored; status is always recomputed from the amounts.
type GoalUpdate struct {
	Description    string
	TargetAmount   decimal.Decimal
	CurrentAmount  decimal.Decimal
	StartDate      time.Time
	EndDate        time.Time
	StatusOverride *GoalStatus
}
