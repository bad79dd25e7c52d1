package models

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestBudgetUnmarshalPrefersID(t *testing.T) {
	var b Budget
	data := []byte(`{"id": "primary", "_id": "fallback", "month": 3, "year": 2024}`)
	if err := json.Unmarshal(data, &b); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if b.ID != "primary" {
		t.Errorf("expected id %q, got %q", "primary", b.ID)
	}
}

func TestBudgetUnmarshalFallsBackToAltID(t *testing.T) {
	var b Budget
	data := []byte(`{"_id": "x", "month": 3, "year": 2024, "income": 5000}`)
	if err := json.Unmarshal(data, &b); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if b.ID != "x" {
		t.Errorf("expected id %q, got %q", "x", b.ID)
	}
	if b.Month != 3 || b.Year != 2024 || b.Income != 5000 {
		t.Errorf("other fields not passed through: %+v", b)
	}
}

func TestItemUnmarshalFallsBackToAltID(t *testing.T) {
	var item BudgetItem
	data := []byte(`{"_id": "x", "name": "n", "amount": 12.5, "category": "Food"}`)
	if err := json.Unmarshal(data, &item); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if item.ID != "x" || item.Name != "n" || item.Amount != 12.5 {
		t.Errorf("unexpected item: %+v", item)
	}
}

func TestNormalizeBudgetRejectsEmptyID(t *testing.T) {
	var b Budget
	data := []byte(`{"id": "", "_id": "", "month": 1, "year": 2024}`)
	if err := json.Unmarshal(data, &b); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	err := NormalizeBudget(&b)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if _, ok := verr.Fields["id"]; !ok {
		t.Errorf("expected error keyed by id, got %v", verr.Fields)
	}
}

func TestNormalizeBudgetRejectsItemWithoutID(t *testing.T) {
	b := Budget{
		ID:    "b1",
		Items: []BudgetItem{{Name: "orphan", Amount: 5, Category: "Food"}},
	}
	var verr *ValidationError
	if err := NormalizeBudget(&b); !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
}

func TestNormalizeBudgetsElementWise(t *testing.T) {
	budgets := []Budget{
		{ID: "a"},
		{ID: ""},
	}
	if err := NormalizeBudgets(budgets); err == nil {
		t.Error("expected error for a budget with no id")
	}

	budgets[1].ID = "b"
	if err := NormalizeBudgets(budgets); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}
