package slot

import "time"

// ExtractSessionTimes turns raw availability into sorted session start times:
// normalize, merge contiguous blocks, then generate slots. It either succeeds
// fully or returns an *InvalidConfigurationError, *InvalidIntervalError or
// *TooManySlotsError.
// It holds no state and may be called concurrently.
func ExtractSessionTimes(raw []RawInterval, opts Options, loc *time.Location) ([]time.Time, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	normalized, err := NormalizeIntervals(raw, loc)
	if err != nil {
		return nil, err
	}
	return GenerateSlots(MergeIntervals(normalized), opts)
}

// ExtractFromIntervals is ExtractSessionTimes for already parsed blocks, such as
// those loaded from the availability store.
func ExtractFromIntervals(intervals []Interval, opts Options) ([]time.Time, error) {
	merged, err := mergeParsed(intervals, opts)
	if err != nil {
		return nil, err
	}
	return GenerateSlots(merged, opts)
}

// ExtractWithinWindow returns the slots of ExtractFromIntervals that start at or
// after from and end at or before to. Merged blocks are clipped to the window on
// their own slot grid first, so a long block only costs the slots inside it.
func ExtractWithinWindow(intervals []Interval, opts Options, from, to time.Time) ([]time.Time, error) {
	merged, err := mergeParsed(intervals, opts)
	if err != nil {
		return nil, err
	}

	step := opts.granularity()
	clipped := make([]Interval, 0, len(merged))
	for _, iv := range merged {
		if iv.Start.Before(from) {
			skip := (from.Sub(iv.Start) + step - 1) / step
			iv.Start = iv.Start.Add(skip * step)
		}
		if iv.End.After(to) {
			iv.End = to
		}
		if iv.Start.Before(iv.End) {
			clipped = append(clipped, iv)
		}
	}
	return GenerateSlots(clipped, opts)
}

func mergeParsed(intervals []Interval, opts Options) ([]Interval, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	working := make([]Interval, 0, len(intervals))
	for i, iv := range intervals {
		if iv.Start.After(iv.End) {
			return nil, &InvalidIntervalError{Index: i, Reason: "start is after end"}
		}
		working = append(working, iv)
	}
	sortByEnd(working)
	return MergeIntervals(working), nil
}
