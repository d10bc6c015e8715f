package slot

// MergeIntervals collapses contiguous availability into maximal blocks.
//
// The input must be ordered by end, as returned by NormalizeIntervals. Ends on
// minute 59 are rounded up to the next hour before every comparison, so
// 09:00-09:59 followed by 10:00-11:00 becomes 09:00-11:00. A following block
// is absorbed when it starts at or before the current end: overlapping blocks
// merge deliberately, not only exactly touching ones. Because the input is
// ordered by end rather than start, a wide block late in the list can reach back
// over blocks already emitted; those are folded into it so the result never
// overlaps.
func MergeIntervals(sorted []Interval) []Interval {
	out := make([]Interval, 0, len(sorted))
	i := 0
	for i < len(sorted) {
		cur := sorted[i]
		cur.End = roundMinute59(cur.End)

		next := i + 1
		for next < len(sorted) && !sorted[next].Start.After(cur.End) {
			cur.Start = minTime(cur.Start, sorted[next].Start)
			cur.End = roundMinute59(maxTime(cur.End, sorted[next].End))
			next++
		}

		out = appendCollapsed(out, cur)
		i = next
	}
	return out
}

func appendCollapsed(out []Interval, cur Interval) []Interval {
	for len(out) > 0 {
		last := out[len(out)-1]
		if cur.Start.After(last.End) {
			break
		}
		cur.Start = minTime(cur.Start, last.Start)
		cur.End = maxTime(cur.End, last.End)
		out = out[:len(out)-1]
	}
	return append(out, cur)
}
