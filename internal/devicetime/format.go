package devicetime

import (
	"fmt"
	"strings"
	"time"
)

// Locales that conventionally show a 12-hour clock.
var twelveHourLocales = map[string]bool{
	"en-US": true,
	"en-CA": true,
	"en-AU": true,
	"en-NZ": true,
	"en-PH": true,
	"en-IN": true,
	"hi-IN": true,
	"es-MX": true,
	"ar-EG": true,
}

// FormatDate builds YYYY-MM-DD from t's own calendar fields, so the result
// is the date in t's location.
func FormatDate(t time.Time) string {
	y, m, d := t.Date()
	return fmt.Sprintf("%04d-%02d-%02d", y, int(m), d)
}

// ParseDate validates a YYYY-MM-DD string and returns local midnight for it.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(value), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return t, nil
}

func FormatTimeOfDay(t time.Time, locale string) string {
	if twelveHourLocales[locale] {
		return t.Format("3:04 PM")
	}
	return t.Format("15:04")
}
