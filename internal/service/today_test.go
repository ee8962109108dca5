package service_test

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saadjs/dayledger/internal/devicetime"
	"github.com/saadjs/dayledger/internal/kvstore"
	"github.com/saadjs/dayledger/internal/ledger"
	"github.com/saadjs/dayledger/internal/model"
	"github.com/saadjs/dayledger/internal/service"
)

func TestDaySummaryWithGoal(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()

	clock := clockwork.NewFakeClockAt(time.Date(2026, 2, 20, 8, 0, 0, 0, time.UTC))
	l := ledger.New(kvstore.NewSQLite(db), devicetime.New(clock, "UTC", "en-US", nil), nil)

	_, err := l.AddFood(ledger.NewFood{Name: "Chicken bowl", Meal: model.Dinner, Calories: 550, Protein: 45, Carbs: 40, Fat: 18})
	require.NoError(t, err)
	_, err = l.AddFood(ledger.NewFood{Name: "Protein shake", Meal: model.Snack, Calories: 250, Protein: 35, Carbs: 10, Fat: 5})
	require.NoError(t, err)

	status, err := service.DaySummary(db, l)
	require.NoError(t, err)
	assert.Equal(t, "2026-02-20", status.Date)
	assert.False(t, status.HasGoal)
	assert.Nil(t, status.Remaining)
	assert.Equal(t, 2, status.Entries)
	require.Len(t, status.Meals, 4)
	assert.Equal(t, float64(550), status.Meals[2].Totals.Calories)

	require.NoError(t, service.SetGoal(db, service.SetGoalInput{Calories: 2000, Protein: 150, Carbs: 200, Fat: 70, EffectiveDate: "2026-02-01"}))
	status, err = service.DaySummary(db, l)
	require.NoError(t, err)
	require.True(t, status.HasGoal)
	assert.Equal(t, model.Totals{Calories: 800, Protein: 80, Carbs: 50, Fat: 23}, status.Totals)
	assert.Equal(t, model.Totals{Calories: 1200, Protein: 70, Carbs: 150, Fat: 47}, *status.Remaining)
	assert.False(t, status.OnTarget)
}

func TestSummarizeHistory(t *testing.T) {
	report := service.SummarizeHistory(nil)
	assert.Empty(t, report.Days)
	assert.Nil(t, report.Lowest)

	history := []model.HistoryEntry{
		{Date: "2026-02-03", TotalCalories: 2400, TotalProtein: 120, TotalCarbs: 300, TotalFat: 80, Foods: make([]model.FoodEntry, 3)},
		{Date: "2026-02-02", TotalCalories: 1600, TotalProtein: 100, TotalCarbs: 150, TotalFat: 50, Foods: make([]model.FoodEntry, 2)},
		{Date: "2026-02-01", TotalCalories: 2000, TotalProtein: 110, TotalCarbs: 210, TotalFat: 65, Foods: make([]model.FoodEntry, 4)},
	}
	report = service.SummarizeHistory(history)
	require.Len(t, report.Days, 3)
	assert.Equal(t, "2026-02-03", report.Days[0].Date)
	assert.Equal(t, 3, report.Days[0].Entries)
	assert.Equal(t, model.Totals{Calories: 2000, Protein: 110, Carbs: 220, Fat: 65}, report.Average)
	assert.Equal(t, "2026-02-02", report.Lowest.Date)
	assert.Equal(t, "2026-02-03", report.Highest.Date)
}
