package models

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// ExpenseCategories and IncomeCategories are the fixed sets the store
// accepts. Which set applies depends on the item's declared type.
var (
	ExpenseCategories = []string{
		"Housing",
		"Food",
		"Transportation",
		"Utilities",
		"Entertainment",
		"Health",
		"Education",
		"Shopping",
		"Personal",
		"Debt",
		"Savings",
		"Other",
	}

	IncomeCategories = []string{
		"Salary",
		"Bonus",
		"Gift",
		"Investment",
		"Other",
	}
)

// ValidationError reports every invalid field at once, keyed by field name,
// so a caller can surface all problems in a single pass.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

func (e *ValidationError) add(field, msg string) {
	if e.Fields == nil {
		e.Fields = map[string]string{}
	}
	e.Fields[field] = msg
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ItemInput carries the raw values of the add-transaction form. Amount stays
// a string until validation so a bad number is reported as a field error
// rather than a parse failure upstream.
type ItemInput struct {
	Name     string `json:"name"`
	Amount   string `json:"amount"`
	Category string `json:"category"`
	IsIncome bool   `json:"isIncome"`
}

// Validate checks every field and collects all failures before returning.
// On success it yields the item payload to send to the store; the store
// assigns the id, the caller stamps the date.
func (in ItemInput) Validate() (BudgetItem, error) {
	verr := &ValidationError{}

	if strings.TrimSpace(in.Name) == "" {
		verr.add("name", "name is required")
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(in.Amount), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		verr.add("amount", "a valid positive amount is required")
	}

	categories := ExpenseCategories
	kind := "expense"
	if in.IsIncome {
		categories = IncomeCategories
		kind = "income"
	}
	switch {
	case in.Category == "":
		verr.add("category", "category is required")
	case !contains(categories, in.Category):
		verr.add("category", fmt.Sprintf("%q is not a known %s category", in.Category, kind))
	}

	if len(verr.Fields) > 0 {
		return BudgetItem{}, verr
	}

	return BudgetItem{
		Name:     in.Name,
		Amount:   amount,
		Category: in.Category,
		IsIncome: in.IsIncome,
	}, nil
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
