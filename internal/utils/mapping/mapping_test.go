package mapping_test

import (
	"testing"
	"time"

	"github.com/SscSPs/fin_assist/internal/core/domain"
	"github.com/SscSPs/fin_assist/internal/models"
	"github.com/SscSPs/fin_assist/internal/utils/mapping"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestToDomainTransaction_NormalizesDate(t *testing.T) {
	m := models.Transaction{
		TransactionID: 5,
		Kind:          models.Expense,
		Amount:        decimal.RequireFromString("12.30"),
		OccurredOn:    time.Date(2024, time.March, 10, 0, 0, 0, 0, time.FixedZone("BRT", -3*3600)),
		Category:      "Food",
	}

	d := mapping.ToDomainTransaction(m)

	assert.Equal(t, domain.Expense, d.Kind)
	assert.Equal(t, domain.NewDate(2024, time.March, 10), d.OccurredOn)
	assert.Nil(t, d.Note)
}

func TestToDomainGoal_RecomputesStatus(t *testing.T) {
	m := models.Goal{
		GoalID:        1,
		TargetAmount:  decimal.NewFromInt(100),
		CurrentAmount: decimal.NewFromInt(100),
		Status:        string(domain.GoalInProgress),
	}

	assert.Equal(t, domain.GoalCompleted, mapping.ToDomainGoal(m).Status)
}

func TestBudgetMapping(t *testing.T) {
	d := domain.Budget{BudgetID: 3, Category: "Food", Limit: decimal.NewFromInt(200), Month: 3, Year: 2024}

	m := mapping.ToModelBudget(d)
	assert.True(t, m.LimitAmount.Equal(d.Limit))
	assert.Equal(t, d, mapping.ToDomainBudget(m))
}
