package csv

import (
	"bytes"
	"fmt"

	"fabu/pkg/models"
)

type FilterFunc func(models.BudgetItem) bool

// Create renders budget items as CSV, keeping only those the filter accepts.
// A nil filter keeps everything.
func Create(items []models.BudgetItem, filter FilterFunc) []byte {
	var buf bytes.Buffer
	buf.WriteString("Date,Name,Category,Type,Amount\n")
	for _, item := range items {
		if filter != nil && !filter(item) {
			continue
		}
		kind := "expense"
		if item.IsIncome {
			kind = "income"
		}
		buf.WriteString(fmt.Sprintf("%s,%s,%s,%s,%.2f\n",
			item.Date.Format("2006/01/02"),
			item.Name,
			item.Category,
			kind,
			item.Amount))
	}
	return buf.Bytes()
}
