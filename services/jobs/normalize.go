package jobs

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	ErrInvalidDate = errors.New("invalid event date")
	ErrInvalidTime = errors.New("invalid event time")
)

// clockPattern matches an already-normalised 24-hour HH:MM value, which
// passes through unchanged.
var clockPattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)

var dateLayouts = []string{
	"2006-01-02",
	"2006-1-2",
	"02/01/2006",
	"2/1/2006",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

var timeLayouts = []string{
	"15:04:05",
	"15.04",
	"3:04 PM",
	"3:04PM",
}

// NormalizeDate parses a user-entered date and returns it as YYYY-MM-DD.
// Calendar validity is enforced: months beyond 12 or days beyond the month
// length fail, they do not roll over.
func NormalizeDate(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidDate)
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006-01-02"), nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDate, raw)
}

// NormalizeTime parses a user-entered time and returns it as 24-hour HH:MM.
// Input already in HH:MM form passes through unchanged.
func NormalizeTime(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidTime)
	}
	if clockPattern.MatchString(raw) {
		return raw, nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("15:04"), nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTime, raw)
}
