package schedule

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyTimestamp   = errors.New("empty timestamp")
	ErrInvalidTimestamp = errors.New("invalid timestamp")
)

// layouts accepted after normalization; all of them carry the trailing Z
var utcLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
	"2006-01-02Z07:00",
}

// layouts for the lenient fallback, tried in the fallback location
var lenientLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05 -0700",
	"2006-01-02",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC850,
	time.ANSIC,
}

// NormalizeTimestamp coerces a loosely formatted UTC timestamp into ISO form:
// the first space becomes the date/time separator when no "T" is present and
// a "Z" is appended when missing. Well-formed "...Z" input is returned as is.
func NormalizeTimestamp(raw string) string {
	s := raw
	if !strings.Contains(s, "T") {
		s = strings.Replace(s, " ", "T", 1)
	}
	if !strings.HasSuffix(s, "Z") {
		s += "Z"
	}
	return s
}

// ParseUTC parses raw as a UTC instant after normalizing it.
func ParseUTC(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, ErrEmptyTimestamp
	}
	s := NormalizeTimestamp(raw)
	for _, layout := range utcLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrInvalidTimestamp
}

// ParseLenient is the best-effort fallback: raw is parsed without
// normalization, timestamps without offset are read in loc.
func ParseLenient(raw string, loc *time.Location) (time.Time, error) {
	if raw == "" {
		return time.Time{}, ErrEmptyTimestamp
	}
	if loc == nil {
		loc = time.Local
	}
	s := strings.TrimSpace(raw)
	for _, layout := range lenientLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidTimestamp
}
