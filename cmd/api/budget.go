package main

import (
	"encoding/json"
	"time"

	"nyumbanii_maintenance/internal/adapter/http/dto/response"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	budgetYear  int
	budgetMonth int
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Print the maintenance spend of a month against the budget",
	RunE: withApp(func(cmd *cobra.Command, a *app) error {
		period, err := a.budgetUC.MonthlySummary(cmd.Context(), budgetYear, budgetMonth)
		if err != nil {
			return errors.Wrap(err, "monthly summary")
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(response.FromBudgetPeriod(period))
	}),
}

func init() {
	rootCmd.AddCommand(budgetCmd)
	now := time.Now().UTC()
	budgetCmd.Flags().IntVar(&budgetYear, "year", now.Year(), "Calendar year")
	budgetCmd.Flags().IntVar(&budgetMonth, "month", int(now.Month()), "Calendar month (1-12)")
}
