package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saadjs/dayledger/internal/service"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show the active day's totals, goal progress, and meals",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnv(func(e *env) error {
			status, err := service.DaySummary(e.db, e.ledger)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Date: %s\n", status.Date)
			if status.Date != e.ledger.Today() {
				fmt.Fprintf(out, "(viewing a past day; today is %s)\n", e.ledger.Today())
			}
			fmt.Fprintf(out, "Intake: %s kcal\n", formatNumber(status.Totals.Calories))
			fmt.Fprintf(out, "Macros: P %.1fg | C %.1fg | F %.1fg\n", status.Totals.Protein, status.Totals.Carbs, status.Totals.Fat)
			if status.HasGoal {
				fmt.Fprintf(out, "Goal: %s kcal | P %.1fg | C %.1fg | F %.1fg\n", formatNumber(status.Goal.Calories), status.Goal.Protein, status.Goal.Carbs, status.Goal.Fat)
				fmt.Fprintf(out, "Remaining: %s kcal | P %.1fg | C %.1fg | F %.1fg\n", formatNumber(status.Remaining.Calories), status.Remaining.Protein, status.Remaining.Carbs, status.Remaining.Fat)
			} else {
				fmt.Fprintln(out, "Goal: not set")
			}
			for _, m := range status.Meals {
				names := "-"
				if len(m.Names) > 0 {
					names = strings.Join(m.Names, ", ")
				}
				fmt.Fprintf(out, "%s: %s kcal (%s)\n", m.Meal, formatNumber(m.Totals.Calories), names)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
}
