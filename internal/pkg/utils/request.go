package utils

import (
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// ParseOptionalIntQuery returns nil when the query param is absent.
func ParseOptionalIntQuery(r *http.Request, key string) (*int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("query param %s: %w", key, err)
	}
	return &value, nil
}

// ParseTimeQuery parses an ISO-8601 query param; zone-less values use loc.
func ParseTimeQuery(r *http.Request, key string, loc *time.Location) (time.Time, error) {
	raw := r.URL.Query().Get(key)
	t, ok := ParseTimestamp(raw, loc)
	if !ok {
		return time.Time{}, fmt.Errorf("query param %s: invalid date-time '%s'", key, raw)
	}
	return t, nil
}
