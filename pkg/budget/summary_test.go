package budget

import (
	"math"
	"reflect"
	"testing"
	"time"

	"fabu/pkg/models"
)

func item(name string, amount float64, category string, income bool) models.BudgetItem {
	return models.BudgetItem{
		ID:       name,
		Name:     name,
		Amount:   amount,
		Category: category,
		IsIncome: income,
		Date:     time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestSummarize(t *testing.T) {
	b := models.Budget{
		ID:    "b1",
		Month: 3,
		Year:  2024,
		Items: []models.BudgetItem{
			item("paycheck", 5000, "Salary", true),
			item("groceries", 1200, "Food", false),
			item("restaurant", 300, "Food", false),
			item("cinema", 200, "Entertainment", false),
		},
	}

	s := Summarize(b)

	if s.TotalIncome != 5000 {
		t.Errorf("expected totalIncome 5000, got %.2f", s.TotalIncome)
	}
	if s.TotalExpenses != 1700 {
		t.Errorf("expected totalExpenses 1700, got %.2f", s.TotalExpenses)
	}
	if s.Balance != 3300 {
		t.Errorf("expected balance 3300, got %.2f", s.Balance)
	}

	expected := map[string]float64{"Food": 1500, "Entertainment": 200}
	if !reflect.DeepEqual(s.ExpensesByCategory, expected) {
		t.Errorf("expected categories %v, got %v", expected, s.ExpensesByCategory)
	}
}

func TestSummarizeEmptyBudget(t *testing.T) {
	s := Summarize(models.Budget{ID: "b1", Month: 1, Year: 2024})

	if s.TotalIncome != 0 || s.TotalExpenses != 0 || s.Balance != 0 {
		t.Errorf("expected all-zero totals, got %+v", s)
	}
	if s.ExpensesByCategory == nil {
		t.Error("expected an empty map, got nil")
	}
	if len(s.ExpensesByCategory) != 0 {
		t.Errorf("expected no categories, got %v", s.ExpensesByCategory)
	}
}

func TestSummarizeInvariants(t *testing.T) {
	b := models.Budget{
		Items: []models.BudgetItem{
			item("a", 1234.56, "Housing", false),
			item("b", 0.01, "Food", false),
			item("c", 9999.99, "Salary", true),
			item("d", 42.42, "food", false), // lower case is a distinct group
			item("e", 100, "Bonus", true),
		},
	}

	s := Summarize(b)

	if got := s.TotalIncome - s.TotalExpenses; s.Balance != got {
		t.Errorf("balance %.2f != income-expenses %.2f", s.Balance, got)
	}

	var categoriesTotal float64
	for category, amount := range s.ExpensesByCategory {
		if amount <= 0 {
			t.Errorf("category %q has non-positive sum %.2f", category, amount)
		}
		categoriesTotal += amount
	}
	if math.Abs(categoriesTotal-s.TotalExpenses) > 1e-9 {
		t.Errorf("category sums %.2f != totalExpenses %.2f", categoriesTotal, s.TotalExpenses)
	}

	if _, ok := s.ExpensesByCategory["food"]; !ok {
		t.Error("case-sensitive grouping lost the lower-case category")
	}
	if s.ExpensesByCategory["Food"] == s.ExpensesByCategory["food"] {
		t.Error("differently-cased categories were merged")
	}
}

func TestSummarizeIgnoresDeclaredIncome(t *testing.T) {
	b := models.Budget{
		Income: 99999, // planned figure, not derived from items
		Items:  []models.BudgetItem{item("paycheck", 5000, "Salary", true)},
	}
	if s := Summarize(b); s.TotalIncome != 5000 {
		t.Errorf("expected totalIncome from items only (5000), got %.2f", s.TotalIncome)
	}
}

func TestSummarizeIsPure(t *testing.T) {
	b := models.Budget{
		Items: []models.BudgetItem{
			item("paycheck", 5000, "Salary", true),
			item("rent", 1800, "Housing", false),
		},
	}
	first := Summarize(b)
	second := Summarize(b)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated summarize differed: %+v vs %+v", first, second)
	}
}

func TestSelectCurrent(t *testing.T) {
	jan := models.Budget{ID: "jan", Month: 1, Year: 2024}
	mar := models.Budget{ID: "mar", Month: 3, Year: 2024}
	budgets := []models.Budget{jan, mar}

	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	got, ok := SelectCurrent(budgets, now)
	if !ok || got.ID != "mar" {
		t.Errorf("expected mar budget, got %+v ok=%v", got, ok)
	}

	// No match for now falls back to the first in order.
	later := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	got, ok = SelectCurrent(budgets, later)
	if !ok || got.ID != "jan" {
		t.Errorf("expected fallback to first budget, got %+v ok=%v", got, ok)
	}

	if _, ok := SelectCurrent(nil, now); ok {
		t.Error("expected ok=false for an empty collection")
	}
}
