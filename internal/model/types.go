package model

import (
	"fmt"
	"strings"
	"time"
)

type MealCategory string

const (
	Breakfast MealCategory = "breakfast"
	Lunch     MealCategory = "lunch"
	Dinner    MealCategory = "dinner"
	Snack     MealCategory = "snack"
)

// MealCategories is the fixed set of meal categories in display order.
var MealCategories = []MealCategory{Breakfast, Lunch, Dinner, Snack}

func ParseMealCategory(value string) (MealCategory, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "breakfast":
		return Breakfast, nil
	case "lunch":
		return Lunch, nil
	case "dinner":
		return Dinner, nil
	case "snack", "snacks":
		return Snack, nil
	}
	return "", fmt.Errorf("invalid meal category %q (expected breakfast, lunch, dinner, or snack)", value)
}

type Totals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

func (t Totals) Add(o Totals) Totals {
	return Totals{
		Calories: t.Calories + o.Calories,
		Protein:  t.Protein + o.Protein,
		Carbs:    t.Carbs + o.Carbs,
		Fat:      t.Fat + o.Fat,
	}
}

func (t Totals) Sub(o Totals) Totals {
	return Totals{
		Calories: t.Calories - o.Calories,
		Protein:  t.Protein - o.Protein,
		Carbs:    t.Carbs - o.Carbs,
		Fat:      t.Fat - o.Fat,
	}
}

// SumTotals adds up the nutrients of foods in order.
func SumTotals(foods []FoodEntry) Totals {
	var sum Totals
	for _, e := range foods {
		sum = sum.Add(e.Totals())
	}
	return sum
}

func (t Totals) IsZero() bool {
	return t.Calories == 0 && t.Protein == 0 && t.Carbs == 0 && t.Fat == 0
}

type FoodEntry struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Meal      MealCategory `json:"mealType"`
	Calories  float64      `json:"calories"`
	Protein   float64      `json:"protein"`
	Carbs     float64      `json:"carbs"`
	Fat       float64      `json:"fat"`
	CreatedAt time.Time    `json:"timestamp"`
}

func (e FoodEntry) Totals() Totals {
	return Totals{Calories: e.Calories, Protein: e.Protein, Carbs: e.Carbs, Fat: e.Fat}
}

// DailyLedger is the food log for one local calendar day. The four totals
// always equal the sums over Foods.
type DailyLedger struct {
	Date          string      `json:"date"`
	TotalCalories float64     `json:"totalCalories"`
	TotalProtein  float64     `json:"totalProtein"`
	TotalCarbs    float64     `json:"totalCarbs"`
	TotalFat      float64     `json:"totalFat"`
	Foods         []FoodEntry `json:"foods"`
}

// HistoryEntry is an archived DailyLedger.
type HistoryEntry = DailyLedger

func NewDailyLedger(date string) DailyLedger {
	return DailyLedger{Date: date, Foods: []FoodEntry{}}
}

func (d DailyLedger) Totals() Totals {
	return Totals{
		Calories: d.TotalCalories,
		Protein:  d.TotalProtein,
		Carbs:    d.TotalCarbs,
		Fat:      d.TotalFat,
	}
}

func (d *DailyLedger) SetTotals(t Totals) {
	d.TotalCalories = t.Calories
	d.TotalProtein = t.Protein
	d.TotalCarbs = t.Carbs
	d.TotalFat = t.Fat
}

// HasActivity reports whether the day holds anything worth archiving.
func (d DailyLedger) HasActivity() bool {
	return len(d.Foods) > 0 || !d.Totals().IsZero()
}

func (d DailyLedger) Clone() DailyLedger {
	out := d
	out.Foods = make([]FoodEntry, len(d.Foods))
	copy(out.Foods, d.Foods)
	return out
}

type MealSummary struct {
	Meal   MealCategory `json:"meal"`
	Totals Totals       `json:"totals"`
	Names  []string     `json:"names"`
}

type RecentEntry struct {
	FoodEntry
	TimeOfDay string `json:"time"`
}

type Goal struct {
	ID            int64
	Calories      float64
	Protein       float64
	Carbs         float64
	Fat           float64
	EffectiveDate string
	CreatedAt     time.Time
}
