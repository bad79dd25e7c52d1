// Package plan loads YAML seed manifests describing budgets and their
// opening transactions. A plan is previewed with the executor's dry-run and
// created through the service so every item passes the usual validation.
package plan

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Plan struct {
	UserID  string       `yaml:"user_id"`
	Budgets []BudgetSpec `yaml:"budgets"`
}

type BudgetSpec struct {
	Month  int        `yaml:"month"`
	Year   int        `yaml:"year"`
	Income float64    `yaml:"income"`
	Items  []ItemSpec `yaml:"items"`
}

type ItemSpec struct {
	Name     string  `yaml:"name"`
	Amount   float64 `yaml:"amount"`
	Category string  `yaml:"category"`
	Income   bool    `yaml:"income"`
}

func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file: %w", err)
	}

	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}

	if len(p.Budgets) == 0 {
		return nil, fmt.Errorf("plan has no budgets")
	}
	for i, b := range p.Budgets {
		if b.Month < 1 || b.Month > 12 {
			return nil, fmt.Errorf("budget %d has invalid month %d", i+1, b.Month)
		}
		if b.Year == 0 {
			return nil, fmt.Errorf("budget %d is missing a year", i+1)
		}
	}
	return &p, nil
}

func (p *Plan) Print() {
	fmt.Printf("Seed plan for user %s\n", p.UserID)
	for i, b := range p.Budgets {
		fmt.Printf("[%d] %d/%02d income=%.2f items=%d\n", i+1, b.Year, b.Month, b.Income, len(b.Items))
	}
}
