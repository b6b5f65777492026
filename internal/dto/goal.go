package dto

import (
	"time"

	"github.com/SscSPs/fin_assist/internal/apperrors"
	"github.com/SscSPs/fin_assist/internal/core/domain"
	"github.com/SscSPs/fin_assist/internal/utils"
	"github.com/shopspring/decimal"
)

// CreateGoalRequest defines the data needed to create a savings goal.
type CreateGoalRequest struct {
	Description  string `json:"description" binding:"required,max=100"`
	TargetAmount string `json:"targetAmount" binding:"required,brlamount"`
	StartDate    string `json:"startDate" binding:"required"`
	EndDate      string `json:"endDate" binding:"required"`
}

// ToDomain parses the textual fields.
func (r CreateGoalRequest) ToDomain() (domain.NewGoal, error) {
	target, err := utils.ParseBRLAmount(r.TargetAmount)
	if err != nil {
		return domain.NewGoal{}, apperrors.NewValidationError("targetAmount", err.Error())
	}
	start, end, err := parseGoalDates(r.StartDate, r.EndDate)
	if err != nil {
		return domain.NewGoal{}, err
	}
	return domain.NewGoal{
		Description:  r.Description,
		TargetAmount: target,
		StartDate:    start,
		EndDate:      end,
	}, nil
}

// UpdateGoalRequest is a full overwrite of a goal. Status is accepted for
// form round-trips but the stored status always follows the amounts.
type UpdateGoalRequest struct {
	Description   string  `json:"description" binding:"required,max=100"`
	TargetAmount  string  `json:"targetAmount" binding:"required,brlamount"`
	CurrentAmount string  `json:"currentAmount" binding:"required"`
	StartDate     string  `json:"startDate" binding:"required"`
	EndDate       string  `json:"endDate" binding:"required"`
	Status        *string `json:"status,omitempty" binding:"omitempty,oneof=IN_PROGRESS COMPLETED"`
}

// ToDomain parses the textual fields.
func (r UpdateGoalRequest) ToDomain() (domain.GoalUpdate, error) {
	target, err := utils.ParseBRLAmount(r.TargetAmount)
	if err != nil {
		return domain.GoalUpdate{}, apperrors.NewValidationError("targetAmount", err.Error())
	}
	current, err := utils.ParseBRLAmount(r.CurrentAmount)
	if err != nil {
		return domain.GoalUpdate{}, apperrors.NewValidationError("currentAmount", err.Error())
	}
	start, end, err := parseGoalDates(r.StartDate, r.EndDate)
	if err != nil {
		return domain.GoalUpdate{}, err
	}
	update := domain.GoalUpdate{
		Description:   r.Description,
		TargetAmount:  target,
		CurrentAmount: current,
		StartDate:     start,
		EndDate:       end,
	}
	if r.Status != nil {
		update.StatusOverride = domain.Ptr(domain.GoalStatus(*r.Status))
	}
	return update, nil
}

// GoalProgressRequest sets the amount saved so far.
type GoalProgressRequest struct {
	CurrentAmount string `json:"currentAmount" binding:"required"`
}

// ToAmount parses the current amount. Zero is allowed.
func (r GoalProgressRequest) ToAmount() (decimal.Decimal, error) {
	amount, err := utils.ParseBRLAmount(r.CurrentAmount)
	if err != nil {
		return decimal.Zero, apperrors.NewValidationError("currentAmount", err.Error())
	}
	return amount, nil
}

func parseGoalDates(startRaw, endRaw string) (start, end time.Time, err error) {
	start, err = utils.ParseDate(startRaw)
	if err != nil {
		return start, end, apperrors.NewValidationError("startDate", err.Error())
	}
	end, err = utils.ParseDate(endRaw)
	if err != nil {
		return start, end, apperrors.NewValidationError("endDate", err.Error())
	}
	return start, end, nil
}

// GoalResponse defines the data returned for a goal.
type GoalResponse struct {
	GoalID                 int64           `json:"goalID"`
	Description            string          `json:"description"`
	TargetAmount           decimal.Decimal `json:"targetAmount"`
	TargetAmountFormatted  string          `json:"targetAmountFormatted"`
	CurrentAmount          decimal.Decimal `json:"currentAmount"`
	CurrentAmountFormatted string          `json:"currentAmountFormatted"`
	StartDate              string          `json:"startDate"`
	StartDateFormatted     string          `json:"startDateFormatted"`
	EndDate                string          `json:"endDate"`
	EndDateFormatted       string          `json:"endDateFormatted"`
	Status                 string          `json:"status"`
	Percent                decimal.Decimal `json:"percent"`
}

// ToGoalResponse converts a goal and its completion percent to a DTO.
func ToGoalResponse(g domain.Goal, percent decimal.Decimal) GoalResponse {
	return GoalResponse{
		GoalID:                 g.GoalID,
		Description:            g.Description,
		TargetAmount:           g.TargetAmount,
		TargetAmountFormatted:  utils.FormatBRL(g.TargetAmount),
		CurrentAmount:          g.CurrentAmount,
		CurrentAmountFormatted: utils.FormatBRL(g.CurrentAmount),
		StartDate:              g.StartDate.Format(domain.DateLayout),
		StartDateFormatted:     utils.FormatDateBR(g.StartDate),
		EndDate:                g.EndDate.Format(domain.DateLayout),
		EndDateFormatted:       utils.FormatDateBR(g.EndDate),
		Status:                 string(g.Status),
		Percent:                percent.Round(2),
	}
}

// ToGoalProgressResponses converts goal progress rows to DTOs.
func ToGoalProgressResponses(progress []domain.GoalProgress) []GoalResponse {
	res := make([]GoalResponse, len(progress))
	for i, p := range progress {
		res[i] = ToGoalResponse(p.Goal, p.Percent)
	}
	return res
}
