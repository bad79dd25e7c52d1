package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// BudgetItem is a single dated income or expense entry inside a budget.
// Amounts are plain float64 in a single implied currency, matching the
// numbers the remote store serves.
type BudgetItem struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Amount   float64   `json:"amount"`
	Category string    `json:"category"`
	IsIncome bool      `json:"isIncome"`
	Date     time.Time `json:"date"`
}

// Budget is a month/year scoped aggregate of items plus a declared income
// figure. It is owned by the remote store; the client never persists it.
type Budget struct {
	ID        string       `json:"id"`
	UserID    string       `json:"userId"`
	Month     int          `json:"month"`
	Year      int          `json:"year"`
	Income    float64      `json:"income"`
	Expenses  float64      `json:"expenses"`
	Items     []BudgetItem `json:"items"`
	CreatedAt time.Time    `json:"createdAt,omitzero"`
	UpdatedAt time.Time    `json:"updatedAt,omitzero"`
}

// BudgetSummary is derived from a budget's items, never stored.
type BudgetSummary struct {
	TotalIncome        float64            `json:"totalIncome"`
	TotalExpenses      float64            `json:"totalExpenses"`
	Balance            float64            `json:"balance"`
	ExpensesByCategory map[string]float64 `json:"expensesByCategory"`
}

// User mirrors the store's user records. Not used by the budget math, kept
// for the /users surface.
type User struct {
	ID            string  `json:"id"`
	Email         string  `json:"email"`
	Name          string  `json:"name"`
	MonthlyIncome float64 `json:"monthlyIncome"`
}

// The store is inconsistent about identifier keys: depending on the backing
// collection a record arrives with "id" or "_id". Unmarshalling accepts
// both, preferring "id" when present.

func (b *Budget) UnmarshalJSON(data []byte) error {
	type alias Budget
	aux := struct {
		*alias
		AltID string `json:"_id"`
	}{alias: (*alias)(b)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if b.ID == "" {
		b.ID = aux.AltID
	}
	return nil
}

func (i *BudgetItem) UnmarshalJSON(data []byte) error {
	type alias BudgetItem
	aux := struct {
		*alias
		AltID string `json:"_id"`
	}{alias: (*alias)(i)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if i.ID == "" {
		i.ID = aux.AltID
	}
	return nil
}

func (u *User) UnmarshalJSON(data []byte) error {
	type alias User
	aux := struct {
		*alias
		AltID string `json:"_id"`
	}{alias: (*alias)(u)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if u.ID == "" {
		u.ID = aux.AltID
	}
	return nil
}

// NormalizeBudget verifies that a decoded budget and every one of its items
// ended up with a non-empty identifier. A record without an id is not
// addressable for update or removal, so it is rejected at the boundary
// instead of surfacing later as a broken mutation.
func NormalizeBudget(b *Budget) error {
	if b.ID == "" {
		return NewValidationError("id", "budget record has no id or _id")
	}
	for _, item := range b.Items {
		if item.ID == "" {
			return NewValidationError("items", fmt.Sprintf("item %q has no id or _id", item.Name))
		}
	}
	return nil
}

// NormalizeBudgets applies NormalizeBudget element-wise.
func NormalizeBudgets(budgets []Budget) error {
	for i := range budgets {
		if err := NormalizeBudget(&budgets[i]); err != nil {
			return err
		}
	}
	return nil
}
