package executors

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"fabu/pkg/plan"
)

// Change is one planned action for a seed budget.
type Change struct {
	Month  int
	Year   int
	Exists bool
	Items  int
}

// Plan diffs a seed plan against the store and prints a human-readable
// preview. No mutation happens here; Apply performs the same walk for real.
func (e *Executor) Plan(ctx context.Context, p *plan.Plan) ([]Change, error) {
	e.logger.Debug("planning seed", "budgets", len(p.Budgets))

	existing, err := e.service.Budgets(ctx)
	if err != nil {
		return nil, err
	}
	taken := make(map[[2]int]bool, len(existing))
	for _, b := range existing {
		taken[[2]int{b.Year, b.Month}] = true
	}

	existsStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))  // gray
	createStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // green

	changes := make([]Change, 0, len(p.Budgets))
	for _, spec := range p.Budgets {
		exists := taken[[2]int{spec.Year, spec.Month}]
		changes = append(changes, Change{Month: spec.Month, Year: spec.Year, Exists: exists, Items: len(spec.Items)})

		line := fmt.Sprintf("%d/%02d | income %.2f | %d item(s)", spec.Year, spec.Month, spec.Income, len(spec.Items))
		if exists {
			fmt.Println(existsStyle.Render("= " + line + " (already in store)"))
			continue
		}
		fmt.Println(createStyle.Render("+ " + line))
	}

	return changes, nil
}
