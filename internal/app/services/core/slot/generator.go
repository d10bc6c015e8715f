package slot

import (
	"slices"
	"time"
)

// GenerateSlots walks each merged interval in steps of the configured granularity
// and keeps every start at which a full session still fits. The result is sorted
// ascending and is never nil. Input yielding more than MaxSlots slots is rejected
// with *TooManySlotsError before anything is allocated.
func GenerateSlots(merged []Interval, opts Options) ([]time.Time, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	step := opts.granularity()
	length := opts.duration()

	total := countSlots(merged, step, length)
	if total > MaxSlots {
		return nil, &TooManySlotsError{Count: total, Limit: MaxSlots}
	}

	slots := make([]time.Time, 0, total)
	for _, iv := range merged {
		for cursor := iv.Start; cursor.Before(iv.End); cursor = cursor.Add(step) {
			if !cursor.Add(length).After(iv.End) {
				slots = append(slots, cursor)
			}
		}
	}

	slices.SortFunc(slots, compareTime)
	return slots, nil
}

// countSlots is the number of starts GenerateSlots keeps for merged.
func countSlots(merged []Interval, step, length time.Duration) int64 {
	var total int64
	for _, iv := range merged {
		span := iv.End.Sub(iv.Start)
		if span < length {
			continue
		}
		total += int64((span-length)/step) + 1
		if total > MaxSlots {
			return total
		}
	}
	return total
}
