package ledger

import (
	"go.uber.org/zap"

	"github.com/saadjs/dayledger/internal/kvstore"
	"github.com/saadjs/dayledger/internal/model"
)

// Persistence is a best-effort local cache: read problems degrade to empty
// state and write problems are logged, never returned.

func (l *Ledger) loadCurrent() model.DailyLedger {
	var day model.DailyLedger
	ok, err := kvstore.GetJSON(l.store, CurrentKey, &day)
	if err != nil {
		l.logger.Warn("discarding unreadable active day", zap.Error(err))
	}
	if err != nil || !ok || day.Date == "" {
		return model.NewDailyLedger(l.clock.Today())
	}
	if day.Foods == nil {
		day.Foods = []model.FoodEntry{}
	}
	return day
}

// refresh adopts the stored active day so that other ledgers sharing the
// store see each other's writes. Absent or unreadable state keeps the
// in-memory day. Callers hold mu.
func (l *Ledger) refresh() {
	var day model.DailyLedger
	ok, err := kvstore.GetJSON(l.store, CurrentKey, &day)
	if err != nil {
		l.logger.Warn("reload active day failed", zap.Error(err))
		return
	}
	if !ok || day.Date == "" {
		return
	}
	if day.Foods == nil {
		day.Foods = []model.FoodEntry{}
	}
	l.current = day
}

func (l *Ledger) saveCurrent() {
	if err := kvstore.SetJSON(l.store, CurrentKey, l.current); err != nil {
		l.logger.Warn("persist active day failed", zap.String("date", l.current.Date), zap.Error(err))
	}
}

func (l *Ledger) loadHistory() []model.HistoryEntry {
	var history []model.HistoryEntry
	ok, err := kvstore.GetJSON(l.store, HistoryKey, &history)
	if err != nil {
		l.logger.Warn("discarding unreadable history", zap.Error(err))
		return []model.HistoryEntry{}
	}
	if !ok || history == nil {
		return []model.HistoryEntry{}
	}
	return history
}

func (l *Ledger) saveHistory(history []model.HistoryEntry) {
	if err := kvstore.SetJSON(l.store, HistoryKey, history); err != nil {
		l.logger.Warn("persist history failed", zap.Int("entries", len(history)), zap.Error(err))
	}
}
