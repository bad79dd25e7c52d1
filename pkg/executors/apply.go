package executors

import (
	"context"
	"fmt"
	"strconv"

	"fabu/pkg/models"
	"fabu/pkg/plan"
)

// Apply creates every budget in the seed plan that the store does not have
// yet, then posts its opening items through the service. Items go one by one
// so each passes the form validation and triggers the usual summary refresh.
func (e *Executor) Apply(ctx context.Context, p *plan.Plan) error {
	e.logger.Debug("applying seed", "budgets", len(p.Budgets))

	existing, err := e.service.Budgets(ctx)
	if err != nil {
		return err
	}
	taken := make(map[[2]int]bool, len(existing))
	for _, b := range existing {
		taken[[2]int{b.Year, b.Month}] = true
	}

	for _, spec := range p.Budgets {
		if taken[[2]int{spec.Year, spec.Month}] {
			e.logger.Info("budget already exists, skipping", "month", spec.Month, "year", spec.Year)
			continue
		}

		view, err := e.service.CreateBudget(ctx, models.Budget{
			UserID: p.UserID,
			Month:  spec.Month,
			Year:   spec.Year,
			Income: spec.Income,
		})
		if err != nil {
			return fmt.Errorf("failed to create budget %d/%02d: %w", spec.Year, spec.Month, err)
		}

		for _, item := range spec.Items {
			in := models.ItemInput{
				Name:     item.Name,
				Amount:   strconv.FormatFloat(item.Amount, 'f', -1, 64),
				Category: item.Category,
				IsIncome: item.Income,
			}
			if view, err = e.service.AddItem(ctx, view.Budget.ID, in); err != nil {
				return fmt.Errorf("failed to add item %q to budget %d/%02d: %w", item.Name, spec.Year, spec.Month, err)
			}
		}

		e.logger.Info("budget seeded",
			"budget_id", view.Budget.ID,
			"month", spec.Month,
			"year", spec.Year,
			"items", len(spec.Items),
			"balance", view.Summary.Balance)
	}

	return nil
}
