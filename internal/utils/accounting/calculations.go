package accounting

import (
	"sort"

	"github.com/SscSPs/fin_assist/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// CalculatePercent returns value as a percentage of total, or zero when total is zero.
// The result is not clamped.
func CalculatePercent(value, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return value.Mul(hundred).Div(total)
}

// ClampedPercent returns min(100, part/whole*100), floored at zero.
// A non-positive whole yields zero.
func ClampedPercent(part, whole decimal.Decimal) decimal.Decimal {
	if whole.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	pct := part.Mul(hundred).Div(whole)
	if pct.GreaterThan(hundred) {
		return hundred
	}
	if pct.IsNegative() {
		return decimal.Zero
	}
	return pct
}

// KnownCategories builds a lookup set from registry names.
func KnownCategories(names []string) map[string]struct{} {
	known := make(map[string]struct{}, len(names))
	for _, n := range names {
		known[n] = struct{}{}
	}
	return known
}

// bucketFor maps a transaction category to its aggregation key. Names missing
// from the registry share the unknown bucket.
func bucketFor(category string, known map[string]struct{}) string {
	if _, ok := known[category]; ok {
		return category
	}
	return domain.UnknownCategory
}

// SummarizePeriod totals the transactions falling in period. Transactions
// outside the period are ignored.
func SummarizePeriod(period domain.Period, txns []domain.Transaction, known map[string]struct{}) domain.PeriodSummary {
	summary := domain.PeriodSummary{
		Period:            period,
		IncomeTotal:       decimal.Zero,
		ExpenseTotal:      decimal.Zero,
		ExpenseByCategory: make(map[string]decimal.Decimal),
	}

	for _, txn := range txns {
		if !period.Contains(txn.OccurredOn) {
			continue
		}
		switch txn.Kind {
		case domain.Income:
			summary.IncomeTotal = summary.IncomeTotal.Add(txn.Amount)
		case domain.Expense:
			summary.ExpenseTotal = summary.ExpenseTotal.Add(txn.Amount)
			key := bucketFor(txn.Category, known)
			current, ok := summary.ExpenseByCategory[key]
			if !ok {
				current = decimal.Zero
			}
			summary.ExpenseByCategory[key] = current.Add(txn.Amount)
		}
	}

	summary.Balance = summary.IncomeTotal.Sub(summary.ExpenseTotal)
	return summary
}

// SummarizeLedger totals every transaction regardless of date or category.
func SummarizeLedger(txns []domain.Transaction) domain.LedgerTotals {
	totals := domain.LedgerTotals{IncomeTotal: decimal.Zero, ExpenseTotal: decimal.Zero}
	for _, txn := range txns {
		switch txn.Kind {
		case domain.Income:
			totals.IncomeTotal = totals.IncomeTotal.Add(txn.Amount)
		case domain.Expense:
			totals.ExpenseTotal = totals.ExpenseTotal.Add(txn.Amount)
		}
		totals.TransactionCount++
	}
	totals.Balance = totals.IncomeTotal.Sub(totals.ExpenseTotal)
	return totals
}

// CategoryStatistics counts and sums the whole ledger per category. Every
// registry name appears, even with no transactions; the unknown bucket is
// appended only when dangling rows exist.
func CategoryStatistics(txns []domain.Transaction, categories []string) []domain.CategoryStat {
	known := KnownCategories(categories)
	byName := make(map[string]*domain.CategoryStat, len(categories)+1)
	for _, name := range categories {
		byName[name] = &domain.CategoryStat{Category: name, TotalAmount: decimal.Zero}
	}

	for _, txn := range txns {
		key := bucketFor(txn.Category, known)
		stat, ok := byName[key]
		if !ok {
			stat = &domain.CategoryStat{Category: key, TotalAmount: decimal.Zero}
			byName[key] = stat
		}
		stat.TransactionCount++
		stat.TotalAmount = stat.TotalAmount.Add(txn.Amount)
	}

	stats := make([]domain.CategoryStat, 0, len(byName))
	for _, name := range categories {
		stats = append(stats, *byName[name])
	}
	sort.SliceStable(stats, func(i, j int) bool { return stats[i].Category < stats[j].Category })
	if unknown, ok := byName[domain.UnknownCategory]; ok {
		stats = append(stats, *unknown)
	}
	return stats
}

// Consumption sums the expenses of budget's category within budget's month.
func Consumption(budget domain.Budget, txns []domain.Transaction) decimal.Decimal {
	period := budget.Period()
	consumed := decimal.Zero
	for _, txn := range txns {
		if txn.Kind != domain.Expense || txn.Category != budget.Category {
			continue
		}
		if period.Contains(txn.OccurredOn) {
			consumed = consumed.Add(txn.Amount)
		}
	}
	return consumed
}

// ComputeBudgetProgress pairs every budget with its consumption and clamped percent.
func ComputeBudgetProgress(budgets []domain.Budget, txns []domain.Transaction) []domain.BudgetProgress {
	progress := make([]domain.BudgetProgress, len(budgets))
	for i, b := range budgets {
		consumed := Consumption(b, txns)
		progress[i] = domain.BudgetProgress{
			Budget:   b,
			Consumed: consumed,
			Percent:  ClampedPercent(consumed, b.Limit),
		}
	}
	return progress
}

// ComputeGoalProgress returns the clamped completion percent of goal.
func ComputeGoalProgress(goal domain.Goal) decimal.Decimal {
	return ClampedPercent(goal.CurrentAmount, goal.TargetAmount)
}
