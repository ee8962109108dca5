package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saadjs/dayledger/internal/service"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List archived days, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnv(func(e *env) error {
			report := service.SummarizeHistory(e.ledger.History())
			out := cmd.OutOrStdout()
			if len(report.Days) == 0 {
				fmt.Fprintln(out, "No archived days")
				return nil
			}
			fmt.Fprintln(out, "DATE\tENTRIES\tKCAL\tP\tC\tF")
			for _, d := range report.Days {
				fmt.Fprintf(out, "%s\t%d\t%s\t%.1f\t%.1f\t%.1f\n", d.Date, d.Entries, formatNumber(d.Totals.Calories), d.Totals.Protein, d.Totals.Carbs, d.Totals.Fat)
			}
			fmt.Fprintf(out, "Average: %s kcal | P %.1fg | C %.1fg | F %.1fg over %d days\n",
				formatNumber(report.Average.Calories), report.Average.Protein, report.Average.Carbs, report.Average.Fat, len(report.Days))
			fmt.Fprintf(out, "Lowest: %s (%s kcal) | Highest: %s (%s kcal)\n",
				report.Lowest.Date, formatNumber(report.Lowest.Totals.Calories), report.Highest.Date, formatNumber(report.Highest.Totals.Calories))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
