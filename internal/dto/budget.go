package dto

import (
	"github.com/SscSPs/fin_assist/internal/core/domain"
	"github.com/SscSPs/fin_assist/internal/utils"
	"github.com/shopspring/decimal"
)

// UpsertBudgetRequest defines the data needed to set a monthly budget.
type UpsertBudgetRequest struct {
	Category string `json:"category" binding:"required,max=50"`
	Limit    string `json:"limit" binding:"required,brlamount" example:"500,00"`
	Month    int    `json:"month" binding:"required,min=1,max=12"`
	Year     int    `json:"year" binding:"required,min=1900,max=9999"`
}

// PeriodQuery selects one calendar month.
type PeriodQuery struct {
	Month int `form:"month" binding:"required,min=1,max=12"`
	Year  int `form:"year" binding:"required,min=1900,max=9999"`
}

// ToPeriod converts the query into a domain.Period.
func (q PeriodQuery) ToPeriod() domain.Period {
	return domain.Period{Month: q.Month, Year: q.Year}
}

// BudgetResponse defines the data returned for a budget.
type BudgetResponse struct {
	BudgetID       int64           `json:"budgetID"`
	Category       string          `json:"category"`
	CategoryColor  string          `json:"categoryColor"`
	Limit          decimal.Decimal `json:"limit"`
	LimitFormatted string          `json:"limitFormatted"`
	Month          int             `json:"month"`
	Year           int             `json:"year"`
}

// BudgetProgressResponse pairs a budget with its consumption.
type BudgetProgressResponse struct {
	BudgetResponse
	Consumed          decimal.Decimal `json:"consumed"`
	ConsumedFormatted string          `json:"consumedFormatted"`
	Percent           decimal.Decimal `json:"percent"`
	Overspent         bool            `json:"overspent"`
}

// ToBudgetResponse converts a domain.Budget to its DTO.
func ToBudgetResponse(b domain.Budget) BudgetResponse {
	return BudgetResponse{
		BudgetID:       b.BudgetID,
		Category:       b.Category,
		CategoryColor:  utils.CategoryColor(b.Category),
		Limit:          b.Limit,
		LimitFormatted: utils.FormatBRL(b.Limit),
		Month:          b.Month,
		Year:           b.Year,
	}
}

// ToBudgetProgressResponses converts budget progress rows to DTOs.
func ToBudgetProgressResponses(progress []domain.BudgetProgress) []BudgetProgressResponse {
	res := make([]BudgetProgressResponse, len(progress))
	for i, p := range progress {
		res[i] = BudgetProgressResponse{
			BudgetResponse:    ToBudgetResponse(p.Budget),
			Consumed:          p.Consumed,
			ConsumedFormatted: utils.FormatBRL(p.Consumed),
			Percent:           p.Percent.Round(2),
			Overspent:         p.Overspent(),
		}
	}
	return res
}
