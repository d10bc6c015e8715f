package slot

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInterval      = errors.New("invalid interval")
	ErrInvalidConfiguration = errors.New("invalid slot configuration")
	ErrTooManySlots         = errors.New("too many slots")
)

// InvalidIntervalError reports an interval with an unparseable bound or start after end.
type InvalidIntervalError struct {
	Index  int
	Field  string
	Value  string
	Reason string
}

func (e *InvalidIntervalError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("interval[%d]: %s", e.Index, e.Reason)
	}
	return fmt.Sprintf("interval[%d].%s '%s': %s", e.Index, e.Field, e.Value, e.Reason)
}

func (e *InvalidIntervalError) Unwrap() error { return ErrInvalidInterval }

// InvalidConfigurationError reports a granularity or duration outside 1..MaxOptionMinutes.
type InvalidConfigurationError struct {
	Field string
	Value int
}

func (e *InvalidConfigurationError) Error() string {
	if e.Value > MaxOptionMinutes {
		return fmt.Sprintf("%s must be at most %d minutes, got %d", e.Field, MaxOptionMinutes, e.Value)
	}
	return fmt.Sprintf("%s must be greater than zero, got %d", e.Field, e.Value)
}

func (e *InvalidConfigurationError) Unwrap() error { return ErrInvalidConfiguration }

// TooManySlotsError reports a generation that would exceed Limit slots.
type TooManySlotsError struct {
	Count int64
	Limit int
}

func (e *TooManySlotsError) Error() string {
	return fmt.Sprintf("availability yields %d slots, limit is %d", e.Count, e.Limit)
}

func (e *TooManySlotsError) Unwrap() error { return ErrTooManySlots }

// Validate fails fast on options that would never advance the generator or
// overflow time.Duration.
func (o Options) Validate() error {
	if o.GranularityMinutes <= 0 || o.GranularityMinutes > MaxOptionMinutes {
		return &InvalidConfigurationError{Field: "granularity", Value: o.GranularityMinutes}
	}
	if o.DurationMinutes <= 0 || o.DurationMinutes > MaxOptionMinutes {
		return &InvalidConfigurationError{Field: "duration", Value: o.DurationMinutes}
	}
	return nil
}
