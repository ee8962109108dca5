// Package rollover runs the ledger's day-boundary check on a timer.
package rollover

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
)

const DefaultInterval = 30 * time.Second

// Checker is satisfied by *ledger.Ledger.
type Checker interface {
	CheckAndRollover() bool
	Today() string
}

type Watcher struct {
	checker    Checker
	interval   time.Duration
	logger     *zap.Logger
	onRollover func(today string)

	mu        sync.Mutex
	scheduler gocron.Scheduler
}

type Option func(*Watcher)

func WithInterval(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.interval = d
		}
	}
}

// OnRollover registers fn to run after each check that changed the day.
func OnRollover(fn func(today string)) Option {
	return func(w *Watcher) { w.onRollover = fn }
}

func New(checker Checker, logger *zap.Logger, opts ...Option) *Watcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	w := &Watcher{checker: checker, interval: DefaultInterval, logger: logger}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Start checks once immediately and then every interval until Stop.
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.scheduler != nil {
		return fmt.Errorf("rollover watcher already started")
	}

	s, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("create scheduler: %w", err)
	}
	_, err = s.NewJob(
		gocron.DurationJob(w.interval),
		gocron.NewTask(w.check),
		gocron.WithName("day-rollover"),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		_ = s.Shutdown()
		return fmt.Errorf("schedule rollover check: %w", err)
	}
	s.Start()
	w.scheduler = s
	w.logger.Info("rollover watcher started", zap.Duration("interval", w.interval))
	return nil
}

func (w *Watcher) Stop() error {
	w.mu.Lock()
	s := w.scheduler
	w.scheduler = nil
	w.mu.Unlock()
	if s == nil {
		return nil
	}
	if err := s.Shutdown(); err != nil {
		return fmt.Errorf("stop scheduler: %w", err)
	}
	w.logger.Info("rollover watcher stopped")
	return nil
}

func (w *Watcher) check() {
	if !w.checker.CheckAndRollover() {
		return
	}
	today := w.checker.Today()
	w.logger.Debug("rollover check changed the active day", zap.String("today", today))
	if w.onRollover != nil {
		w.onRollover(today)
	}
}
