package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Goal is a row of the goals table.
type Goal struct {
	GoalID        int64           `json:"goalID" db:"goal_id"`
	Description   string          `json:"description" db:"description"`
	TargetAmount  decimal.Decimal `json:"targetAmount" db:"target_amount"`
	CurrentAmount decimal.Decimal `json:"currentAmount" db:"current_amount"`
	StartDate     time.Time       `json:"startDate" db:"start_date"`
	EndDate       time.Time       `json:"endDate" db:"end_date"`
	Status        string          `json:"status" db:"status"`
	AuditFields
}
