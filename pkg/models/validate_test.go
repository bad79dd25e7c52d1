package models

import (
	"errors"
	"testing"
)

func TestValidateAcceptsGoodInput(t *testing.T) {
	in := ItemInput{Name: "groceries", Amount: "123.45", Category: "Food"}
	item, err := in.Validate()
	if err != nil {
		t.Fatalf("expected valid input, got %v", err)
	}
	if item.Name != "groceries" || item.Amount != 123.45 || item.Category != "Food" || item.IsIncome {
		t.Errorf("unexpected item: %+v", item)
	}
}

func TestValidateRejectsNegativeAmount(t *testing.T) {
	in := ItemInput{Name: "groceries", Amount: "-5", Category: "Food"}
	_, err := in.Validate()

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if _, ok := verr.Fields["amount"]; !ok {
		t.Errorf("expected failure keyed by amount, got %v", verr.Fields)
	}
	if len(verr.Fields) != 1 {
		t.Errorf("expected only amount to fail, got %v", verr.Fields)
	}
}

func TestValidateCollectsAllFailures(t *testing.T) {
	in := ItemInput{Name: "   ", Amount: "abc", Category: ""}
	_, err := in.Validate()

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	for _, field := range []string{"name", "amount", "category"} {
		if _, ok := verr.Fields[field]; !ok {
			t.Errorf("expected failure on %q, got %v", field, verr.Fields)
		}
	}
}

func TestValidateCategorySetDependsOnType(t *testing.T) {
	// Salary is an income category only.
	if _, err := (ItemInput{Name: "pay", Amount: "100", Category: "Salary", IsIncome: true}).Validate(); err != nil {
		t.Errorf("Salary should be a valid income category: %v", err)
	}
	if _, err := (ItemInput{Name: "pay", Amount: "100", Category: "Salary"}).Validate(); err == nil {
		t.Error("Salary should not be a valid expense category")
	}

	// Housing is an expense category only.
	if _, err := (ItemInput{Name: "rent", Amount: "100", Category: "Housing"}).Validate(); err != nil {
		t.Errorf("Housing should be a valid expense category: %v", err)
	}
	if _, err := (ItemInput{Name: "rent", Amount: "100", Category: "Housing", IsIncome: true}).Validate(); err == nil {
		t.Error("Housing should not be a valid income category")
	}

	// Other exists in both sets.
	if _, err := (ItemInput{Name: "misc", Amount: "1", Category: "Other"}).Validate(); err != nil {
		t.Errorf("Other should be valid for expenses: %v", err)
	}
	if _, err := (ItemInput{Name: "misc", Amount: "1", Category: "Other", IsIncome: true}).Validate(); err != nil {
		t.Errorf("Other should be valid for income: %v", err)
	}
}

func TestValidateRejectsNonFiniteAmounts(t *testing.T) {
	for _, amount := range []string{"NaN", "+Inf", "Inf", "0", ""} {
		in := ItemInput{Name: "x", Amount: amount, Category: "Food"}
		if _, err := in.Validate(); err == nil {
			t.Errorf("amount %q should be rejected", amount)
		}
	}
}

func TestValidationErrorMessage(t *testing.T) {
	verr := &ValidationError{Fields: map[string]string{
		"name":   "name is required",
		"amount": "a valid positive amount is required",
	}}
	got := verr.Error()
	want := "validation failed: amount: a valid positive amount is required; name: name is required"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
