package main

import (
	"time"

	"fabu/pkg/csv"
	"fabu/pkg/models"
)

type filters struct {
	startDate   string
	endDate     string
	minAmount   float64
	maxAmount   float64
	category    string
	incomeOnly  bool
	expenseOnly bool
}

func (f *filters) toFilterFunc() csv.FilterFunc {
	return func(item models.BudgetItem) bool {
		if f.startDate != "" {
			start, _ := time.Parse("2006/01/02", f.startDate)
			if item.Date.Before(start) {
				return false
			}
		}
		if f.endDate != "" {
			end, _ := time.Parse("2006/01/02", f.endDate)
			if item.Date.After(end.Add(24*time.Hour - time.Nanosecond)) {
				return false
			}
		}
		if f.minAmount != 0 && item.Amount < f.minAmount {
			return false
		}
		if f.maxAmount != 0 && item.Amount > f.maxAmount {
			return false
		}
		if f.category != "" && item.Category != f.category {
			return false
		}
		if f.incomeOnly && !item.IsIncome {
			return false
		}
		if f.expenseOnly && item.IsIncome {
			return false
		}
		return true
	}
}
