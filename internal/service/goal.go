package service

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/saadjs/dayledger/internal/model"
)

type SetGoalInput struct {
	Calories      float64
	Protein       float64
	Carbs         float64
	Fat           float64
	EffectiveDate string
}

// SetGoal stores daily targets starting at EffectiveDate, which callers
// resolve against their own clock.
// Setting a goal for an existing effective date replaces it.
func SetGoal(db *sql.DB, in SetGoalInput) error {
	if err := validateNonNegativeFloat("calories", in.Calories); err != nil {
		return err
	}
	if err := validateNonNegativeFloat("protein", in.Protein); err != nil {
		return err
	}
	if err := validateNonNegativeFloat("carbs", in.Carbs); err != nil {
		return err
	}
	if err := validateNonNegativeFloat("fat", in.Fat); err != nil {
		return err
	}
	date, err := normalizeDate(in.EffectiveDate)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
INSERT INTO goals(calories, protein_g, carbs_g, fat_g, effective_date)
VALUES(?, ?, ?, ?, ?)
ON CONFLICT(effective_date) DO UPDATE SET
  calories=excluded.calories,
  protein_g=excluded.protein_g,
  carbs_g=excluded.carbs_g,
  fat_g=excluded.fat_g
`, in.Calories, in.Protein, in.Carbs, in.Fat, date)
	if err != nil {
		return fmt.Errorf("set goal: %w", err)
	}
	return nil
}

// CurrentGoal returns the goal in effect on date, or nil when none is set.
func CurrentGoal(db *sql.DB, date string) (*model.Goal, error) {
	date, err := normalizeDate(date)
	if err != nil {
		return nil, err
	}

	var g model.Goal
	err = db.QueryRow(`
SELECT id, calories, protein_g, carbs_g, fat_g, effective_date, created_at
FROM goals
WHERE effective_date <= ?
ORDER BY effective_date DESC
LIMIT 1
`, date).Scan(&g.ID, &g.Calories, &g.Protein, &g.Carbs, &g.Fat, &g.EffectiveDate, &g.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("current goal for %s: %w", date, err)
	}
	return &g, nil
}

func GoalHistory(db *sql.DB) ([]model.Goal, error) {
	rows, err := db.Query(`
SELECT id, calories, protein_g, carbs_g, fat_g, effective_date, created_at
FROM goals
ORDER BY effective_date DESC
`)
	if err != nil {
		return nil, fmt.Errorf("list goal history: %w", err)
	}
	defer rows.Close()

	goals := make([]model.Goal, 0)
	for rows.Next() {
		var g model.Goal
		if err := rows.Scan(&g.ID, &g.Calories, &g.Protein, &g.Carbs, &g.Fat, &g.EffectiveDate, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan goal history: %w", err)
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate goal history: %w", err)
	}
	return goals, nil
}

func AdherenceWithin(actual float64, target float64, tolerance float64) bool {
	if target == 0 {
		return actual == 0
	}
	lower := target * (1 - tolerance)
	upper := target * (1 + tolerance)
	return actual >= lower && actual <= upper
}
