package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"fabu/pkg/executors"
	"fabu/pkg/models"
	"fabu/pkg/plan"
)

var addCmd = &cobra.Command{
	Use:   "add <budget-id>",
	Short: "Add a transaction to a budget",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := buildService(cmd)
		if err != nil {
			return err
		}

		in := models.ItemInput{}
		in.Name, _ = cmd.Flags().GetString("name")
		in.Amount, _ = cmd.Flags().GetString("amount")
		in.Category, _ = cmd.Flags().GetString("cat")
		in.IsIncome, _ = cmd.Flags().GetBool("income")

		view, err := svc.AddItem(cmd.Context(), args[0], in)
		if err != nil {
			return err
		}

		fmt.Printf("Added %q to %s %d\n", in.Name, time.Month(view.Budget.Month), view.Budget.Year)
		printSummary(view.Summary)
		return nil
	},
}

var removeCmd = &cobra.Command{
	Use:   "remove <budget-id> <item-id>",
	Short: "Remove a transaction from a budget",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := buildService(cmd)
		if err != nil {
			return err
		}

		view, err := svc.RemoveItem(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}

		fmt.Printf("Budget now has %d item(s)\n", len(view.Budget.Items))
		printSummary(view.Summary)
		return nil
	},
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a budget for a month",
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc, _, err := buildService(cmd)
		if err != nil {
			return err
		}

		month, _ := cmd.Flags().GetInt("month")
		year, _ := cmd.Flags().GetInt("year")
		income, _ := cmd.Flags().GetFloat64("income")
		userID, _ := cmd.Flags().GetString("user")

		if month < 1 || month > 12 {
			return models.NewValidationError("month", "month must be between 1 and 12")
		}
		if year == 0 {
			return models.NewValidationError("year", "year is required")
		}

		view, err := svc.CreateBudget(cmd.Context(), models.Budget{
			UserID: userID,
			Month:  month,
			Year:   year,
			Income: income,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Created budget %s for %s %d\n", view.Budget.ID, time.Month(view.Budget.Month), view.Budget.Year)
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <budget-id>",
	Short: "Delete a budget",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := buildService(cmd)
		if err != nil {
			return err
		}

		if err := svc.DeleteBudget(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted budget %s\n", args[0])
		return nil
	},
}

var planCmd = &cobra.Command{
	Use:   "plan <plan-file>",
	Short: "Preview a YAML seed plan (dry-run)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, logger, err := buildService(cmd)
		if err != nil {
			return err
		}

		p, err := plan.Load(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Plan preview for %s\n", args[0])
		p.Print()

		exec := executors.New(logger, svc)
		changes, err := exec.Plan(cmd.Context(), p)
		if err != nil {
			return err
		}

		toCreate := 0
		for _, c := range changes {
			if !c.Exists {
				toCreate++
			}
		}
		fmt.Printf("\nPlan: %d budget(s) will be created, %d already in store\n", toCreate, len(changes)-toCreate)
		return nil
	},
}

var applyCmd = &cobra.Command{
	Use:   "apply <plan-file>",
	Short: "Create the budgets and items described by a YAML seed plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, logger, err := buildService(cmd)
		if err != nil {
			return err
		}

		p, err := plan.Load(args[0])
		if err != nil {
			return err
		}

		exec := executors.New(logger, svc)
		return exec.Apply(cmd.Context(), p)
	},
}

func init() {
	addCmd.Flags().String("name", "", "Transaction name")
	addCmd.Flags().String("amount", "", "Transaction amount")
	addCmd.Flags().String("cat", "", "Transaction category")
	addCmd.Flags().Bool("income", false, "Mark the transaction as income")

	createCmd.Flags().Int("month", 0, "Budget month (1-12)")
	createCmd.Flags().Int("year", 0, "Budget year")
	createCmd.Flags().Float64("income", 0, "Planned income")
}
