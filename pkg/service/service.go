// Package service sequences mutations against the budget store and keeps the
// budget/summary pair consistent: every successful mutation is followed by a
// fresh local recompute, and a failed one returns an error without touching
// anything the caller already holds.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"

	"fabu/pkg/api"
	"fabu/pkg/budget"
	"fabu/pkg/models"
)

// ErrNoBudgets is returned by Overview when the store has no budgets at all.
var ErrNoBudgets = errors.New("no budgets available")

// View is the atomic budget/summary pair handed to callers. The summary is
// always derived from exactly the budget next to it.
type View struct {
	Budget  models.Budget
	Summary models.BudgetSummary
}

// Overview is the dashboard entry point: all budgets plus the current one
// with its summary.
type Overview struct {
	Budgets []models.Budget
	Current models.Budget
	Summary models.BudgetSummary
}

type Service struct {
	api    *api.Client
	logger *log.Logger
}

func New(client *api.Client, logger *log.Logger) *Service {
	return &Service{api: client, logger: logger}
}

// Budget fetches one budget and summarizes it.
func (s *Service) Budget(ctx context.Context, id string) (View, error) {
	b, err := s.api.Budget(ctx, id)
	if err != nil {
		return View{}, err
	}
	return s.view(b), nil
}

// Budgets is a plain listing passthrough.
func (s *Service) Budgets(ctx context.Context) ([]models.Budget, error) {
	return s.api.Budgets(ctx)
}

// Overview fetches every budget, selects the one for now's month/year (or
// the first as fallback) and summarizes it.
func (s *Service) Overview(ctx context.Context, now time.Time) (Overview, error) {
	budgets, err := s.api.Budgets(ctx)
	if err != nil {
		return Overview{}, err
	}
	current, ok := budget.SelectCurrent(budgets, now)
	if !ok {
		return Overview{}, ErrNoBudgets
	}
	return Overview{
		Budgets: budgets,
		Current: current,
		Summary: budget.Summarize(current),
	}, nil
}

// AddItem validates the form input, stamps the date, posts the item and
// returns the updated budget with a freshly computed summary. Validation
// failures never reach the network.
func (s *Service) AddItem(ctx context.Context, budgetID string, in models.ItemInput) (View, error) {
	item, err := in.Validate()
	if err != nil {
		return View{}, err
	}
	item.Date = time.Now().UTC()

	updated, err := s.api.AddItem(ctx, budgetID, item)
	if err != nil {
		return View{}, err
	}
	s.logger.Info("item added", "budget_id", updated.ID, "name", item.Name, "amount", item.Amount, "income", item.IsIncome)
	return s.view(updated), nil
}

// RemoveItem deletes an item by id. Whether the item existed is the store's
// business; the budget it returns is displayed as-is.
func (s *Service) RemoveItem(ctx context.Context, budgetID, itemID string) (View, error) {
	updated, err := s.api.RemoveItem(ctx, budgetID, itemID)
	if err != nil {
		return View{}, err
	}
	s.logger.Info("item removed", "budget_id", updated.ID, "item_id", itemID)
	return s.view(updated), nil
}

// CreateBudget creates a budget and returns it summarized (all zeros until
// items arrive).
func (s *Service) CreateBudget(ctx context.Context, b models.Budget) (View, error) {
	created, err := s.api.CreateBudget(ctx, b)
	if err != nil {
		return View{}, err
	}
	s.logger.Info("budget created", "budget_id", created.ID, "month", created.Month, "year", created.Year)
	return s.view(created), nil
}

// DeleteBudget removes a budget from the store.
func (s *Service) DeleteBudget(ctx context.Context, id string) error {
	if err := s.api.DeleteBudget(ctx, id); err != nil {
		return err
	}
	s.logger.Info("budget deleted", "budget_id", id)
	return nil
}

// RemoteSummary fetches the store's own summary computation, for comparing
// against the local engine before trusting one over the other.
func (s *Service) RemoteSummary(ctx context.Context, id string) (models.BudgetSummary, error) {
	return s.api.Summary(ctx, id)
}

func (s *Service) view(b models.Budget) View {
	return View{Budget: b, Summary: budget.Summarize(b)}
}
