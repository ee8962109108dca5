package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saadjs/dayledger/internal/service"
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Manage daily calorie and macro goals",
}

var (
	goalCalories float64
	goalProtein  float64
	goalCarbs    float64
	goalFat      float64
	goalDate     string
)

var goalSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set daily goals with an effective date",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := service.SetGoalInput{
			Calories:      goalCalories,
			Protein:       goalProtein,
			Carbs:         goalCarbs,
			Fat:           goalFat,
			EffectiveDate: goalDate,
		}
		return withEnv(func(e *env) error {
			if in.EffectiveDate == "" {
				in.EffectiveDate = e.ledger.Today()
			}
			if err := service.SetGoal(e.db, in); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set goal effective %s\n", in.EffectiveDate)
			return nil
		})
	},
}

var goalShowDate string

var goalShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the goal in effect for the active day",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnv(func(e *env) error {
			date := goalShowDate
			if date == "" {
				date = e.ledger.Current().Date
			}
			goal, err := service.CurrentGoal(e.db, date)
			if err != nil {
				return err
			}
			if goal == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No goal configured")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Effective: %s\n", goal.EffectiveDate)
			fmt.Fprintf(cmd.OutOrStdout(), "Calories: %s\n", formatNumber(goal.Calories))
			fmt.Fprintf(cmd.OutOrStdout(), "Protein: %.1f\nCarbs: %.1f\nFat: %.1f\n", goal.Protein, goal.Carbs, goal.Fat)
			return nil
		})
	},
}

var goalHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show goal history",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnv(func(e *env) error {
			goals, err := service.GoalHistory(e.db)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "EFFECTIVE\tKCAL\tP\tC\tF")
			for _, g := range goals {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%.1f\t%.1f\t%.1f\n", g.EffectiveDate, formatNumber(g.Calories), g.Protein, g.Carbs, g.Fat)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(goalCmd)
	goalCmd.AddCommand(goalSetCmd, goalShowCmd, goalHistoryCmd)

	goalSetCmd.Flags().Float64Var(&goalCalories, "calories", 0, "Calories goal")
	goalSetCmd.Flags().Float64Var(&goalProtein, "protein", 0, "Protein goal grams")
	goalSetCmd.Flags().Float64Var(&goalCarbs, "carbs", 0, "Carbs goal grams")
	goalSetCmd.Flags().Float64Var(&goalFat, "fat", 0, "Fat goal grams")
	goalSetCmd.Flags().StringVar(&goalDate, "effective-date", "", "Effective date YYYY-MM-DD (default today)")
	_ = goalSetCmd.MarkFlagRequired("calories")

	goalShowCmd.Flags().StringVar(&goalShowDate, "date", "", "Date YYYY-MM-DD (default active day)")
}
