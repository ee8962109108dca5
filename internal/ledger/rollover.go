package ledger

import (
	"sort"

	"go.uber.org/zap"

	"github.com/saadjs/dayledger/internal/devicetime"
	"github.com/saadjs/dayledger/internal/model"
)

// CheckAndRollover starts a fresh day when the local date has moved past the
// active one, archiving the outgoing day first if it has any activity. It
// reports whether the active date changed.
func (l *Ledger) CheckAndRollover() bool {
	today := l.clock.Today()

	l.mu.Lock()
	defer l.mu.Unlock()
	l.refresh()
	if l.current.Date == today {
		return false
	}
	outgoing := l.current
	if outgoing.HasActivity() {
		l.archive(outgoing)
	}
	l.current = model.NewDailyLedger(today)
	l.saveCurrent()
	l.logger.Info("day rolled over",
		zap.String("from", outgoing.Date),
		zap.String("to", today),
		zap.Bool("archived", outgoing.HasActivity()))
	return true
}

// ChangeDate makes date the active day. The outgoing day is archived if it
// has activity; an archived snapshot for date is restored verbatim, otherwise
// an empty day is started.
func (l *Ledger) ChangeDate(date string) error {
	parsed, err := devicetime.ParseDate(date, l.clock.Location())
	if err != nil {
		return err
	}
	date = devicetime.FormatDate(parsed)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.refresh()
	if l.current.HasActivity() {
		l.archive(l.current)
	}

	next := model.NewDailyLedger(date)
	restored := false
	for _, h := range l.loadHistory() {
		if h.Date == date {
			next = h.Clone()
			if next.Foods == nil {
				next.Foods = []model.FoodEntry{}
			}
			restored = true
			break
		}
	}
	from := l.current.Date
	l.current = next
	l.saveCurrent()
	l.logger.Info("active date changed",
		zap.String("from", from),
		zap.String("to", date),
		zap.Bool("restored", restored))
	return nil
}

// History returns archived days, newest date first.
func (l *Ledger) History() []model.HistoryEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	history := l.loadHistory()
	sort.Slice(history, func(i, j int) bool { return history[i].Date > history[j].Date })
	return history
}

// archive writes day into the history, replacing any snapshot for the same
// date and keeping only the historyLimit most recent dates. Callers hold mu.
func (l *Ledger) archive(day model.DailyLedger) {
	history := l.loadHistory()
	kept := make([]model.HistoryEntry, 0, len(history)+1)
	for _, h := range history {
		if h.Date != day.Date {
			kept = append(kept, h)
		}
	}
	kept = append(kept, day.Clone())
	// YYYY-MM-DD sorts chronologically as a string.
	sort.SliceStable(kept, func(i, j int) bool { return kept[i].Date < kept[j].Date })
	if len(kept) > l.historyLimit {
		evicted := len(kept) - l.historyLimit
		l.logger.Debug("history trimmed", zap.Int("evicted", evicted))
		kept = kept[evicted:]
	}
	l.saveHistory(kept)
}
