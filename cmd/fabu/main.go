package main

import (
	"fmt"
	"net/http"
	"os"
	"sort"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"fabu/pkg/api"
	"fabu/pkg/config"
	"fabu/pkg/csv"
	"fabu/pkg/models"
	"fabu/pkg/service"
)

var (
	cliFilters filters
	cfgFile    string
)

var rootCmd = &cobra.Command{
	Use:   "fabu",
	Short: "Family budget command-line interface",
	RunE: func(cmd *cobra.Command, _ []string) error {
		// Show help when no subcommand is provided
		return cmd.Help()
	},
}

// buildService wires config, API client and logger for a command run.
func buildService(cmd *cobra.Command) (*service.Service, *log.Logger, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "fabu",
	})

	cfg, err := config.Build(cfgFile, cmd.Flags())
	if err != nil {
		return nil, nil, err
	}

	client := api.New(cfg.APIURL, &http.Client{Timeout: cfg.Timeout})
	return service.New(client, logger), logger, nil
}

var budgetsCmd = &cobra.Command{
	Use:   "budgets",
	Short: "List all budgets in the store",
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc, _, err := buildService(cmd)
		if err != nil {
			return err
		}

		budgets, err := svc.Budgets(cmd.Context())
		if err != nil {
			return err
		}
		if len(budgets) == 0 {
			fmt.Println("No budgets found")
			return nil
		}
		for _, b := range budgets {
			fmt.Printf("%s %d | id=%s | planned income %.2f | %d item(s)\n",
				time.Month(b.Month), b.Year, b.ID, b.Income, len(b.Items))
		}
		return nil
	},
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the current month's budget summary",
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc, _, err := buildService(cmd)
		if err != nil {
			return err
		}

		overview, err := svc.Overview(cmd.Context(), time.Now())
		if err != nil {
			return err
		}

		title := fmt.Sprintf("Budget for %s %d", time.Month(overview.Current.Month), overview.Current.Year)
		fmt.Println(titleStyle.Render(title))
		fmt.Printf("Planned income: %.2f\n\n", overview.Current.Income)
		printSummary(overview.Summary)
		return nil
	},
}

var getCmd = &cobra.Command{
	Use:   "get <budget-id>",
	Short: "Show a single budget",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := buildService(cmd)
		if err != nil {
			return err
		}

		view, err := svc.Budget(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		if dump, _ := cmd.Flags().GetBool("dump"); dump {
			pp.Println(view.Budget)
			return nil
		}

		fmt.Printf("%s %d | id=%s | planned income %.2f\n",
			time.Month(view.Budget.Month), view.Budget.Year, view.Budget.ID, view.Budget.Income)
		printSummary(view.Summary)
		return nil
	},
}

var summaryCmd = &cobra.Command{
	Use:   "summary <budget-id>",
	Short: "Show a budget's summary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := buildService(cmd)
		if err != nil {
			return err
		}

		var summary models.BudgetSummary
		if remote, _ := cmd.Flags().GetBool("remote"); remote {
			// Store-side computation, for diffing against the local engine.
			if summary, err = svc.RemoteSummary(cmd.Context(), args[0]); err != nil {
				return err
			}
		} else {
			view, err := svc.Budget(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			summary = view.Summary
		}

		printSummary(summary)
		return nil
	},
}

var transactionsCmd = &cobra.Command{
	Use:   "transactions <budget-id>",
	Short: "List a budget's transactions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := buildService(cmd)
		if err != nil {
			return err
		}

		view, err := svc.Budget(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		match := cliFilters.toFilterFunc()
		for _, item := range view.Budget.Items {
			if !match(item) {
				continue
			}
			sign := "-"
			if item.IsIncome {
				sign = "+"
			}
			fmt.Printf("%s | %-30s | %-15s | %s%.2f | %s\n",
				item.Date.Format("2006/01/02"), item.Name, item.Category, sign, item.Amount, item.ID)
		}
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export <budget-id>",
	Short: "Export a budget's transactions as CSV",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := buildService(cmd)
		if err != nil {
			return err
		}

		view, err := svc.Budget(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		items := append([]models.BudgetItem(nil), view.Budget.Items...)
		sort.Slice(items, func(i, j int) bool { return items[i].Date.Before(items[j].Date) })

		fmt.Print(string(csv.Create(items, cliFilters.toFilterFunc())))
		return nil
	},
}

var titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))

func printSummary(s models.BudgetSummary) {
	incomeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	expenseStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	fmt.Println(incomeStyle.Render(fmt.Sprintf("Total income:   %10.2f", s.TotalIncome)))
	fmt.Println(expenseStyle.Render(fmt.Sprintf("Total expenses: %10.2f", s.TotalExpenses)))
	fmt.Printf("Balance:        %10.2f\n", s.Balance)

	if len(s.ExpensesByCategory) == 0 {
		return
	}
	categories := make([]string, 0, len(s.ExpensesByCategory))
	for category := range s.ExpensesByCategory {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool {
		return s.ExpensesByCategory[categories[i]] > s.ExpensesByCategory[categories[j]]
	})

	fmt.Println("\nExpenses by category:")
	for _, category := range categories {
		fmt.Printf("  %-15s %10.2f\n", category, s.ExpensesByCategory[category])
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Config file (default is config.yaml)")
	rootCmd.PersistentFlags().String("api-url", "", "Budget store base URL")
	rootCmd.PersistentFlags().String("user", "", "User id for created budgets")

	// Filter flags (global)
	rootCmd.PersistentFlags().StringVar(&cliFilters.startDate, "start", "", "Start date (YYYY/MM/DD)")
	rootCmd.PersistentFlags().StringVar(&cliFilters.endDate, "end", "", "End date (YYYY/MM/DD)")
	rootCmd.PersistentFlags().Float64Var(&cliFilters.minAmount, "min", 0, "Minimum amount")
	rootCmd.PersistentFlags().Float64Var(&cliFilters.maxAmount, "max", 0, "Maximum amount")
	rootCmd.PersistentFlags().StringVar(&cliFilters.category, "category", "", "Filter by category (exact match)")
	rootCmd.PersistentFlags().BoolVar(&cliFilters.incomeOnly, "income-only", false, "Only income transactions")
	rootCmd.PersistentFlags().BoolVar(&cliFilters.expenseOnly, "expense-only", false, "Only expense transactions")

	getCmd.Flags().Bool("dump", false, "Pretty-print the raw budget record")
	summaryCmd.Flags().Bool("remote", false, "Use the store's summary endpoint instead of computing locally")

	rootCmd.AddCommand(budgetsCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(transactionsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(applyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
