package rollover_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saadjs/dayledger/internal/devicetime"
	"github.com/saadjs/dayledger/internal/kvstore"
	"github.com/saadjs/dayledger/internal/ledger"
	"github.com/saadjs/dayledger/internal/model"
	"github.com/saadjs/dayledger/internal/rollover"
)

func TestWatcherChecksImmediatelyAndOnInterval(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2024, 1, 15, 23, 0, 0, 0, time.UTC))
	l := ledger.New(kvstore.NewMemory(), devicetime.New(clock, "UTC", "en-US", nil), nil)
	_, err := l.AddFood(ledger.NewFood{Name: "Late snack", Meal: model.Snack, Calories: 150})
	require.NoError(t, err)

	// The app was closed overnight; starting the watcher must catch up.
	clock.Advance(2 * time.Hour)

	var rollovers atomic.Int32
	w := rollover.New(l, nil,
		rollover.WithInterval(20*time.Millisecond),
		rollover.OnRollover(func(string) { rollovers.Add(1) }),
	)
	require.NoError(t, w.Start())
	defer w.Stop()

	require.Eventually(t, func() bool { return l.Current().Date == "2024-01-16" }, 2*time.Second, 5*time.Millisecond)
	require.Len(t, l.History(), 1)

	// Session left open across the next midnight.
	clock.Advance(24 * time.Hour)
	require.Eventually(t, func() bool { return l.Current().Date == "2024-01-17" }, 2*time.Second, 5*time.Millisecond)
	require.Eventually(t, func() bool { return rollovers.Load() == 2 }, time.Second, 5*time.Millisecond)
	// 2024-01-16 had no activity, so nothing new was archived.
	assert.Len(t, l.History(), 1)
}

func TestWatcherStartStop(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC))
	l := ledger.New(kvstore.NewMemory(), devicetime.New(clock, "UTC", "en-US", nil), nil)
	w := rollover.New(l, nil)

	require.NoError(t, w.Start())
	assert.Error(t, w.Start())
	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())
	require.NoError(t, w.Start())
	require.NoError(t, w.Stop())
}
