package service

import (
	"fmt"
	"math"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

func validateNonNegativeFloat(name string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%s must be a finite number", name)
	}
	if value < 0 {
		return fmt.Errorf("%s must be >= 0", name)
	}
	return nil
}

// normalizeDate rejects an empty date; callers resolve today themselves.
func normalizeDate(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("date is required (expected YYYY-MM-DD)")
	}
	if _, err := time.Parse(dateLayout, value); err != nil {
		return "", fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", value)
	}
	return value, nil
}
