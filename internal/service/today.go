package service

import (
	"database/sql"

	"github.com/saadjs/dayledger/internal/model"
)

// DayReader is the read side of *ledger.Ledger used for summaries.
type DayReader interface {
	Current() model.DailyLedger
	MealBreakdownOrdered() []model.MealSummary
}

type DayStatus struct {
	Date      string              `json:"date"`
	Totals    model.Totals        `json:"totals"`
	Entries   int                 `json:"entries"`
	Meals     []model.MealSummary `json:"meals"`
	Goal      *model.Totals       `json:"goal,omitempty"`
	Remaining *model.Totals       `json:"remaining,omitempty"`
	OnTarget  bool                `json:"on_target"`
	HasGoal   bool                `json:"has_goal"`
}

// DaySummary reports the active day against the goal in effect for its date.
func DaySummary(db *sql.DB, day DayReader) (*DayStatus, error) {
	current := day.Current()
	status := &DayStatus{
		Date:    current.Date,
		Totals:  current.Totals(),
		Entries: len(current.Foods),
		Meals:   day.MealBreakdownOrdered(),
	}

	goal, err := CurrentGoal(db, current.Date)
	if err != nil {
		return nil, err
	}
	if goal != nil {
		target := model.Totals{Calories: goal.Calories, Protein: goal.Protein, Carbs: goal.Carbs, Fat: goal.Fat}
		remaining := target.Sub(status.Totals)
		status.HasGoal = true
		status.Goal = &target
		status.Remaining = &remaining
		status.OnTarget = AdherenceWithin(status.Totals.Calories, target.Calories, 0.10)
	}
	return status, nil
}
