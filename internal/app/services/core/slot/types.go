package slot

import "time"

const (
	DefaultGranularityMinutes = 30
	DefaultDurationMinutes    = 60

	// MaxOptionMinutes bounds granularity and duration to one week.
	MaxOptionMinutes = 7 * 24 * 60

	// MaxSlots caps the slots a single generation may produce.
	MaxSlots = 50000
)

// RawInterval is an availability record as received from a caller or the store.
// Start and End are ISO-8601 date-time strings.
type RawInterval struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Interval is a parsed availability block.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Options controls slot generation. Zero values are not replaced with defaults;
// use DefaultOptions or Options.WithDefaults for that.
type Options struct {
	GranularityMinutes int
	DurationMinutes    int
}

func DefaultOptions() Options {
	return Options{
		GranularityMinutes: DefaultGranularityMinutes,
		DurationMinutes:    DefaultDurationMinutes,
	}
}

// WithDefaults fills unset (zero) fields. Negative values are kept so that
// validation rejects them.
func (o Options) WithDefaults(fallback Options) Options {
	if o.GranularityMinutes == 0 {
		o.GranularityMinutes = fallback.GranularityMinutes
	}
	if o.DurationMinutes == 0 {
		o.DurationMinutes = fallback.DurationMinutes
	}
	return o
}

func (o Options) granularity() time.Duration {
	return time.Duration(o.GranularityMinutes) * time.Minute
}

func (o Options) duration() time.Duration {
	return time.Duration(o.DurationMinutes) * time.Minute
}
