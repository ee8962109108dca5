package devicetime_test

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saadjs/dayledger/internal/devicetime"
)

func TestTodayUsesLocalCalendar(t *testing.T) {
	// 2024-01-15 23:30 in New York is already 2024-01-16 in UTC.
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	clock := clockwork.NewFakeClockAt(time.Date(2024, 1, 15, 23, 30, 0, 0, ny))

	svc := devicetime.New(clock, "America/New_York", "en-US", nil)
	assert.Equal(t, "2024-01-15", svc.Today())
	assert.Equal(t, "America/New_York", svc.Location().String())

	utc := devicetime.New(clock, "UTC", "en-US", nil)
	assert.Equal(t, "2024-01-16", utc.Today())
}

func TestTimezoneFallback(t *testing.T) {
	t.Setenv("TZ", "Europe/Berlin")
	svc := devicetime.New(clockwork.NewFakeClock(), "Not/AZone", "", nil)
	assert.Equal(t, "Europe/Berlin", svc.Location().String())

	t.Setenv("TZ", "")
	svc = devicetime.New(clockwork.NewFakeClock(), "", "", nil)
	assert.NotNil(t, svc.Location())
}

func TestLocaleFallback(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LANG", "en_GB.UTF-8")
	assert.Equal(t, "en-GB", devicetime.New(nil, "UTC", "", nil).Locale())

	t.Setenv("LANG", "C")
	assert.Equal(t, devicetime.DefaultLocale, devicetime.New(nil, "UTC", "", nil).Locale())

	assert.Equal(t, "fr-FR", devicetime.New(nil, "UTC", "fr_fr", nil).Locale())
}

func TestFormatTimeOfDay(t *testing.T) {
	at := time.Date(2024, 1, 15, 14, 5, 0, 0, time.UTC)
	assert.Equal(t, "2:05 PM", devicetime.FormatTimeOfDay(at, "en-US"))
	assert.Equal(t, "14:05", devicetime.FormatTimeOfDay(at, "de-DE"))
}

func TestParseDate(t *testing.T) {
	d, err := devicetime.ParseDate("2024-02-29", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", devicetime.FormatDate(d))

	_, err = devicetime.ParseDate("2024-13-01", time.UTC)
	assert.Error(t, err)
	_, err = devicetime.ParseDate("01/15/2024", time.UTC)
	assert.Error(t, err)
}
