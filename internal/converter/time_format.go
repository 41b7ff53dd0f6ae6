package converter

import (
	"strings"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// FormatDate renders a date column as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// FormatOptionalDate renders a nullable date column.
func FormatOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}

// FormatClock normalizes a time-of-day column ("09:30:00", "09:30" or a full
// timestamp) to HH:MM.
func FormatClock(raw string) string {
	for _, layout := range []string{"15:04:05", ClockLayout, time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(ClockLayout)
		}
	}
	if len(raw) > len(ClockLayout) {
		return raw[:len(ClockLayout)]
	}
	return raw
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// ParseOptionalDate parses a nullable YYYY-MM-DD string; empty means NULL.
func ParseOptionalDate(s *string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
