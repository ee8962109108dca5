// Package devicetime supplies the wall clock, timezone and locale the
// ledger uses to decide what "today" is.
package devicetime

import (
	"os"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

const (
	DateLayout    = "2006-01-02"
	DefaultLocale = "en-US"
)

type Provider interface {
	Now() time.Time
	Location() *time.Location
	Locale() string
	// Today is the current local date as YYYY-MM-DD.
	Today() string
}

type Service struct {
	clock  clockwork.Clock
	loc    *time.Location
	locale string
}

// New resolves tz and locale with fallbacks and never fails. An empty or
// unknown timezone falls back to $TZ, then time.Local, then UTC. An empty
// locale falls back to $LC_ALL, $LANG, then DefaultLocale.
func New(clock clockwork.Clock, tz, locale string, logger *zap.Logger) *Service {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		clock:  clock,
		loc:    resolveLocation(tz, logger),
		locale: resolveLocale(locale, logger),
	}
}

func (s *Service) Now() time.Time {
	return s.clock.Now().In(s.loc)
}

func (s *Service) Location() *time.Location {
	return s.loc
}

func (s *Service) Locale() string {
	return s.locale
}

func (s *Service) Today() string {
	return FormatDate(s.Now())
}

func resolveLocation(tz string, logger *zap.Logger) *time.Location {
	candidates := []string{strings.TrimSpace(tz), strings.TrimSpace(os.Getenv("TZ"))}
	for _, name := range candidates {
		if name == "" {
			continue
		}
		loc, err := time.LoadLocation(name)
		if err == nil {
			return loc
		}
		logger.Warn("unknown timezone, trying next fallback", zap.String("timezone", name), zap.Error(err))
	}
	if time.Local != nil {
		return time.Local
	}
	return time.UTC
}

func resolveLocale(locale string, logger *zap.Logger) string {
	candidates := []string{locale, os.Getenv("LC_ALL"), os.Getenv("LANG")}
	for _, raw := range candidates {
		if l := normalizeLocale(raw); l != "" {
			return l
		}
	}
	logger.Debug("no locale configured, using default", zap.String("locale", DefaultLocale))
	return DefaultLocale
}

// normalizeLocale turns POSIX values like "en_GB.UTF-8" into "en-GB".
func normalizeLocale(raw string) string {
	raw = strings.TrimSpace(raw)
	if i := strings.IndexAny(raw, ".@"); i >= 0 {
		raw = raw[:i]
	}
	if raw == "" || raw == "C" || raw == "POSIX" {
		return ""
	}
	parts := strings.Split(strings.ReplaceAll(raw, "_", "-"), "-")
	parts[0] = strings.ToLower(parts[0])
	for i := 1; i < len(parts); i++ {
		parts[i] = strings.ToUpper(parts[i])
	}
	return strings.Join(parts, "-")
}
