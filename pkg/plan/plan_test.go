package plan

import (
	"os"
	"path/filepath"
	"testing"
)

func writePlan(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write plan file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writePlan(t, `
user_id: u1
budgets:
  - month: 3
    year: 2024
    income: 8000
    items:
      - name: paycheck
        amount: 5000
        category: Salary
        income: true
      - name: rent
        amount: 1800
        category: Housing
`)

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if p.UserID != "u1" {
		t.Errorf("expected user u1, got %q", p.UserID)
	}
	if len(p.Budgets) != 1 {
		t.Fatalf("expected 1 budget, got %d", len(p.Budgets))
	}

	b := p.Budgets[0]
	if b.Month != 3 || b.Year != 2024 || b.Income != 8000 {
		t.Errorf("unexpected budget: %+v", b)
	}
	if len(b.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(b.Items))
	}
	if !b.Items[0].Income || b.Items[1].Income {
		t.Errorf("income flags wrong: %+v", b.Items)
	}
}

func TestLoadRejectsEmptyPlan(t *testing.T) {
	path := writePlan(t, "user_id: u1\nbudgets: []\n")
	if _, err := Load(path); err == nil {
		t.Error("expected error for a plan with no budgets")
	}
}

func TestLoadRejectsBadMonth(t *testing.T) {
	path := writePlan(t, "budgets:\n  - month: 13\n    year: 2024\n")
	if _, err := Load(path); err == nil {
		t.Error("expected error for month 13")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for a missing file")
	}
}
