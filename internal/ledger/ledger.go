// Package ledger keeps the active day of food logging, rolls it over at
// local midnight, and archives finished days into a bounded history.
package ledger

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/saadjs/dayledger/internal/devicetime"
	"github.com/saadjs/dayledger/internal/kvstore"
	"github.com/saadjs/dayledger/internal/model"
)

const (
	CurrentKey = "dayledger.current"
	HistoryKey = "dayledger.history"

	DefaultHistoryLimit = 30
)

type Option func(*Ledger)

// WithHistoryLimit bounds the archive to the n most recent dates.
func WithHistoryLimit(n int) Option {
	return func(l *Ledger) {
		if n > 0 {
			l.historyLimit = n
		}
	}
}

// WithIDGenerator replaces the uuid-based entry id generator.
func WithIDGenerator(fn func() string) Option {
	return func(l *Ledger) {
		if fn != nil {
			l.newID = fn
		}
	}
}

type NewFood struct {
	Name     string
	Meal     model.MealCategory
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
}

// Ledger is safe for concurrent use; every operation runs under one lock.
type Ledger struct {
	mu           sync.Mutex
	store        kvstore.Store
	clock        devicetime.Provider
	logger       *zap.Logger
	historyLimit int
	newID        func() string

	current model.DailyLedger
}

// New loads the active day from store. Missing or unreadable state starts an
// empty day dated today.
func New(store kvstore.Store, clock devicetime.Provider, logger *zap.Logger, opts ...Option) *Ledger {
	if logger == nil {
		logger = zap.NewNop()
	}
	l := &Ledger{
		store:        store,
		clock:        clock,
		logger:       logger,
		historyLimit: DefaultHistoryLimit,
		newID:        uuid.NewString,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.current = l.loadCurrent()
	return l
}

func (l *Ledger) Today() string {
	return l.clock.Today()
}

// Current returns a copy of the active day.
func (l *Ledger) Current() model.DailyLedger {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.refresh()
	return l.current.Clone()
}

func (l *Ledger) AddFood(in NewFood) (model.FoodEntry, error) {
	entry, err := l.buildEntry(in)
	if err != nil {
		return model.FoodEntry{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.refresh()
	l.current.Foods = append(l.current.Foods, entry)
	l.current.SetTotals(l.current.Totals().Add(entry.Totals()))
	l.saveCurrent()
	l.logger.Debug("food added",
		zap.String("date", l.current.Date),
		zap.String("id", entry.ID),
		zap.String("meal", string(entry.Meal)),
		zap.Float64("calories", entry.Calories))
	return entry, nil
}

// RemoveFood deletes an entry from the active day. It reports false and
// changes nothing when id is not present.
func (l *Ledger) RemoveFood(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.refresh()
	for i, e := range l.current.Foods {
		if e.ID != id {
			continue
		}
		l.current.Foods = append(l.current.Foods[:i:i], l.current.Foods[i+1:]...)
		// Totals equal the sum over Foods; an emptied day is exactly zero.
		l.current.SetTotals(model.SumTotals(l.current.Foods))
		l.saveCurrent()
		l.logger.Debug("food removed", zap.String("date", l.current.Date), zap.String("id", id))
		return true
	}
	return false
}

// MealBreakdown partitions the active day by meal. Every category is
// present; unused ones have zero totals and no names.
func (l *Ledger) MealBreakdown() map[model.MealCategory]model.MealSummary {
	out := make(map[model.MealCategory]model.MealSummary, len(model.MealCategories))
	for _, s := range l.MealBreakdownOrdered() {
		out[s.Meal] = s
	}
	return out
}

// MealBreakdownOrdered is MealBreakdown in model.MealCategories order.
func (l *Ledger) MealBreakdownOrdered() []model.MealSummary {
	l.mu.Lock()
	l.refresh()
	foods := l.current.Clone().Foods
	l.mu.Unlock()

	idx := make(map[model.MealCategory]int, len(model.MealCategories))
	out := make([]model.MealSummary, len(model.MealCategories))
	for i, m := range model.MealCategories {
		idx[m] = i
		out[i] = model.MealSummary{Meal: m, Names: []string{}}
	}
	for _, e := range foods {
		i, ok := idx[e.Meal]
		if !ok {
			continue
		}
		out[i].Totals = out[i].Totals.Add(e.Totals())
		out[i].Names = append(out[i].Names, e.Name)
	}
	return out
}

// RecentEntries returns up to limit entries, newest first. A limit <= 0
// returns every entry.
func (l *Ledger) RecentEntries(limit int) []model.RecentEntry {
	l.mu.Lock()
	l.refresh()
	foods := l.current.Clone().Foods
	l.mu.Unlock()

	sort.SliceStable(foods, func(i, j int) bool {
		return foods[i].CreatedAt.After(foods[j].CreatedAt)
	})
	if limit > 0 && len(foods) > limit {
		foods = foods[:limit]
	}
	loc := l.clock.Location()
	locale := l.clock.Locale()
	out := make([]model.RecentEntry, 0, len(foods))
	for _, e := range foods {
		out = append(out, model.RecentEntry{
			FoodEntry: e,
			TimeOfDay: devicetime.FormatTimeOfDay(e.CreatedAt.In(loc), locale),
		})
	}
	return out
}

func (l *Ledger) buildEntry(in NewFood) (model.FoodEntry, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return model.FoodEntry{}, fmt.Errorf("food name is required")
	}
	meal, err := model.ParseMealCategory(string(in.Meal))
	if err != nil {
		return model.FoodEntry{}, err
	}
	if err := validateNonNegative("calories", in.Calories); err != nil {
		return model.FoodEntry{}, err
	}
	if err := validateNonNegative("protein", in.Protein); err != nil {
		return model.FoodEntry{}, err
	}
	if err := validateNonNegative("carbs", in.Carbs); err != nil {
		return model.FoodEntry{}, err
	}
	if err := validateNonNegative("fat", in.Fat); err != nil {
		return model.FoodEntry{}, err
	}
	return model.FoodEntry{
		ID:        l.newID(),
		Name:      name,
		Meal:      meal,
		Calories:  in.Calories,
		Protein:   in.Protein,
		Carbs:     in.Carbs,
		Fat:       in.Fat,
		CreatedAt: l.clock.Now(),
	}, nil
}

func validateNonNegative(name string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%s must be a finite number", name)
	}
	if value < 0 {
		return fmt.Errorf("%s must be >= 0", name)
	}
	return nil
}
