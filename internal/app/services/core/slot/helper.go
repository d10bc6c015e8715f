package slot

import "time"

// roundMinute59 moves an end sitting on minute 59 to the top of the next hour.
// Calendars that store "until 09:59" mean "until 10:00".
func roundMinute59(t time.Time) time.Time {
	if t.Minute() != 59 {
		return t
	}
	y, mo, d := t.Date()
	return time.Date(y, mo, d, t.Hour(), 0, 0, 0, t.Location()).Add(time.Hour)
}

func minTime(a, b time.Time) time.Time {
	if b.Before(a) {
		return b
	}
	return a
}

func maxTime(a, b time.Time) time.Time {
	if b.After(a) {
		return b
	}
	return a
}

// compareTime orders two instants for sorting.
func compareTime(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}
