// Package budget holds the pure computations over budgets: deriving a
// summary from an item list and picking the "current" budget out of a
// collection. Nothing here touches the network or any shared state, so both
// the CLI and the HTTP facade reuse it on every refresh.
package budget

import (
	"time"

	"fabu/pkg/models"
)

// Summarize derives totals, balance and the per-category expense breakdown
// from a budget's items. Totals come from the items only; the budget's
// declared Income field is a planned figure and does not participate.
//
// Amounts are summed as float64, same as the store serves them. Category
// grouping is by exact string value, case-sensitive. An empty item list
// yields zero totals and an empty map; a category never appears with a zero
// sum.
func Summarize(b models.Budget) models.BudgetSummary {
	summary := models.BudgetSummary{
		ExpensesByCategory: map[string]float64{},
	}

	for _, item := range b.Items {
		if item.IsIncome {
			summary.TotalIncome += item.Amount
			continue
		}
		summary.TotalExpenses += item.Amount
		summary.ExpensesByCategory[item.Category] += item.Amount
	}

	summary.Balance = summary.TotalIncome - summary.TotalExpenses
	return summary
}

// SelectCurrent picks the budget whose month and year match now, falling
// back to the first budget in the given order when none does. The second
// return is false only for an empty collection.
func SelectCurrent(budgets []models.Budget, now time.Time) (models.Budget, bool) {
	if len(budgets) == 0 {
		return models.Budget{}, false
	}
	for _, b := range budgets {
		if b.Month == int(now.Month()) && b.Year == now.Year() {
			return b, true
		}
	}
	return budgets[0], true
}
