package slot

import (
	"scheduling-service/internal/pkg/utils"
	"slices"
	"time"
)

// NormalizeIntervals parses raw records and returns them sorted ascending by end.
// Ties keep their input order. The input slice is left untouched; the first bad
// record aborts the whole call.
func NormalizeIntervals(raw []RawInterval, loc *time.Location) ([]Interval, error) {
	out := make([]Interval, 0, len(raw))
	for i, r := range raw {
		start, ok := utils.ParseTimestamp(r.Start, loc)
		if !ok {
			return nil, &InvalidIntervalError{Index: i, Field: "start", Value: r.Start, Reason: "not an ISO-8601 date-time"}
		}
		end, ok := utils.ParseTimestamp(r.End, loc)
		if !ok {
			return nil, &InvalidIntervalError{Index: i, Field: "end", Value: r.End, Reason: "not an ISO-8601 date-time"}
		}
		if start.After(end) {
			return nil, &InvalidIntervalError{Index: i, Reason: "start is after end"}
		}
		out = append(out, Interval{Start: start, End: end})
	}
	sortByEnd(out)
	return out, nil
}

func sortByEnd(intervals []Interval) {
	slices.SortStableFunc(intervals, func(a, b Interval) int {
		return compareTime(a.End, b.End)
	})
}
