package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saadjs/dayledger/internal/ledger"
	"github.com/saadjs/dayledger/internal/model"
)

var (
	addName     string
	addMeal     string
	addCalories float64
	addProtein  float64
	addCarbs    float64
	addFat      float64
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a food on the active day",
	RunE: func(cmd *cobra.Command, args []string) error {
		meal, err := model.ParseMealCategory(addMeal)
		if err != nil {
			return err
		}
		return withEnv(func(e *env) error {
			entry, err := e.ledger.AddFood(ledger.NewFood{
				Name:     addName,
				Meal:     meal,
				Calories: addCalories,
				Protein:  addProtein,
				Carbs:    addCarbs,
				Fat:      addFat,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s to %s on %s (id %s)\n", entry.Name, entry.Meal, e.ledger.Current().Date, entry.ID)
			return nil
		})
	},
}

var removeCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a food from the active day",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := strings.TrimSpace(args[0])
		return withEnv(func(e *env) error {
			if !e.ledger.RemoveFood(id) {
				fmt.Fprintf(cmd.OutOrStdout(), "No entry %s on %s\n", id, e.ledger.Current().Date)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed entry %s\n", id)
			return nil
		})
	},
}

var recentLimit int

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List the most recently logged foods on the active day",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnv(func(e *env) error {
			entries := e.ledger.RecentEntries(recentLimit)
			fmt.Fprintln(cmd.OutOrStdout(), "TIME\tMEAL\tNAME\tKCAL\tP\tC\tF\tID")
			for _, r := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\t%.1f\t%.1f\t%.1f\t%s\n",
					r.TimeOfDay, r.Meal, r.Name, formatNumber(r.Calories), r.Protein, r.Carbs, r.Fat, r.ID)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(addCmd, removeCmd, recentCmd)

	addCmd.Flags().StringVar(&addName, "name", "", "Food name")
	addCmd.Flags().StringVar(&addMeal, "meal", "", "Meal: breakfast, lunch, dinner, or snack")
	addCmd.Flags().Float64Var(&addCalories, "calories", 0, "Calories")
	addCmd.Flags().Float64Var(&addProtein, "protein", 0, "Protein grams")
	addCmd.Flags().Float64Var(&addCarbs, "carbs", 0, "Carbs grams")
	addCmd.Flags().Float64Var(&addFat, "fat", 0, "Fat grams")
	_ = addCmd.MarkFlagRequired("name")
	_ = addCmd.MarkFlagRequired("meal")

	recentCmd.Flags().IntVar(&recentLimit, "limit", 5, "Number of entries to show (0 for all)")
}
