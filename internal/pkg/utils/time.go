package utils

import (
	"strings"
	"time"
	_ "time/tzdata"
)

// zonedLayouts carry their own offset; localLayouts are read in the caller's location.
var (
	zonedLayouts = []string{time.RFC3339Nano, time.RFC3339}
	localLayouts = []string{
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
		"2006-01-02 15:04:05",
		"2006-01-02 15:04",
	}
)

// ParseTimestamp parses an ISO-8601 date-time. Values without an offset are
// interpreted in loc (time.Local when nil).
func ParseTimestamp(value string, loc *time.Location) (time.Time, bool) {
	s := strings.TrimSpace(value)
	if s == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// LoadLocation falls back to UTC when name is empty or unknown.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC, err
	}
	return loc, nil
}

// FormatTimes renders instants as RFC3339 in loc, keeping order.
func FormatTimes(times []time.Time, loc *time.Location) []string {
	out := make([]string, 0, len(times))
	for _, t := range times {
		if loc != nil {
			t = t.In(loc)
		}
		out = append(out, t.Format(time.RFC3339))
	}
	return out
}
