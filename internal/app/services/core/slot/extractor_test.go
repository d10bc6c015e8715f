package slot

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hhmm string) time.Time {
	t, err := time.ParseInLocation("2006-01-02T15:04", "2024-03-04T"+hhmm, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func raw(start, end string) RawInterval {
	return RawInterval{Start: "2024-03-04T" + start + ":00Z", End: "2024-03-04T" + end + ":00Z"}
}

func TestExtractSessionTimes(t *testing.T) {
	opts := DefaultOptions()

	t.Run("Single Hour Fits One Session", func(t *testing.T) {
		slots, err := ExtractSessionTimes([]RawInterval{raw("09:00", "10:00")}, opts, time.UTC)

		require.NoError(t, err)
		assert.Equal(t, []time.Time{at("09:00")}, slots)
	})

	t.Run("Two Hours Step By Granularity", func(t *testing.T) {
		slots, err := ExtractSessionTimes([]RawInterval{raw("09:00", "11:00")}, opts, time.UTC)

		require.NoError(t, err)
		assert.Equal(t, []time.Time{at("09:00"), at("09:30"), at("10:00")}, slots)
	})

	t.Run("Minute 59 Boundary Joins Blocks", func(t *testing.T) {
		input := []RawInterval{raw("09:00", "09:59"), raw("10:00", "11:00")}

		slots, err := ExtractSessionTimes(input, opts, time.UTC)

		require.NoError(t, err)
		assert.Equal(t, []time.Time{at("09:00"), at("09:30"), at("10:00")}, slots)
	})

	t.Run("Empty Input", func(t *testing.T) {
		slots, err := ExtractSessionTimes([]RawInterval{}, opts, time.UTC)

		require.NoError(t, err)
		assert.NotNil(t, slots)
		assert.Empty(t, slots)
	})

	t.Run("Interval Shorter Than Duration", func(t *testing.T) {
		slots, err := ExtractSessionTimes([]RawInterval{raw("09:00", "09:30")}, opts, time.UTC)

		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("Zero Duration Is Rejected", func(t *testing.T) {
		slots, err := ExtractSessionTimes([]RawInterval{raw("09:00", "10:00")}, Options{GranularityMinutes: 30, DurationMinutes: 0}, time.UTC)

		var cfgErr *InvalidConfigurationError
		require.True(t, errors.As(err, &cfgErr))
		assert.Equal(t, "duration", cfgErr.Field)
		assert.True(t, errors.Is(err, ErrInvalidConfiguration))
		assert.Nil(t, slots)
	})

	t.Run("Negative Granularity Is Rejected Before Parsing", func(t *testing.T) {
		input := []RawInterval{{Start: "garbage", End: "garbage"}}

		_, err := ExtractSessionTimes(input, Options{GranularityMinutes: -5, DurationMinutes: 60}, time.UTC)

		var cfgErr *InvalidConfigurationError
		require.True(t, errors.As(err, &cfgErr))
		assert.Equal(t, "granularity", cfgErr.Field)
	})

	t.Run("Invalid Interval Returns No Partial Result", func(t *testing.T) {
		input := []RawInterval{raw("09:00", "11:00"), {Start: "2024-03-04T12:00:00Z", End: "tomorrow"}}

		slots, err := ExtractSessionTimes(input, opts, time.UTC)

		assert.True(t, errors.Is(err, ErrInvalidInterval))
		assert.Nil(t, slots)
	})

	t.Run("Overlapping Blocks Merge Into One Session", func(t *testing.T) {
		input := []RawInterval{raw("09:00", "10:00"), raw("09:30", "10:30")}

		slots, err := ExtractSessionTimes(input, Options{GranularityMinutes: 30, DurationMinutes: 90}, time.UTC)

		require.NoError(t, err)
		assert.Equal(t, []time.Time{at("09:00")}, slots)
	})

	t.Run("Overflowing Granularity Returns Promptly", func(t *testing.T) {
		_, err := ExtractSessionTimes([]RawInterval{raw("09:00", "11:00")}, Options{GranularityMinutes: 200000000, DurationMinutes: 60}, time.UTC)

		assert.True(t, errors.Is(err, ErrInvalidConfiguration))
	})

	t.Run("Unsorted Input Yields Sorted Output", func(t *testing.T) {
		input := []RawInterval{raw("14:00", "15:00"), raw("09:00", "10:00"), raw("11:00", "12:30")}

		slots, err := ExtractSessionTimes(input, opts, time.UTC)

		require.NoError(t, err)
		assert.Equal(t, []time.Time{at("09:00"), at("11:00"), at("11:30"), at("14:00")}, slots)
	})
}

func TestExtractFromIntervals(t *testing.T) {
	t.Run("Parsed Blocks", func(t *testing.T) {
		intervals := []Interval{
			{Start: at("10:00"), End: at("11:00")},
			{Start: at("09:00"), End: at("09:59")},
		}

		slots, err := ExtractFromIntervals(intervals, DefaultOptions())

		require.NoError(t, err)
		assert.Equal(t, []time.Time{at("09:00"), at("09:30"), at("10:00")}, slots)
		assert.Equal(t, at("10:00"), intervals[0].Start, "input must not be reordered")
	})

	t.Run("Reversed Block", func(t *testing.T) {
		_, err := ExtractFromIntervals([]Interval{{Start: at("11:00"), End: at("10:00")}}, DefaultOptions())

		assert.True(t, errors.Is(err, ErrInvalidInterval))
	})
}

func TestExtractWithinWindow(t *testing.T) {
	t.Run("Matches Filtering The Full Result", func(t *testing.T) {
		intervals := []Interval{{Start: at("09:10"), End: at("20:00")}}
		from, to := at("10:00"), at("12:00")

		full, err := ExtractFromIntervals(intervals, DefaultOptions())
		require.NoError(t, err)
		var want []time.Time
		for _, s := range full {
			if !s.Before(from) && !s.Add(time.Hour).After(to) {
				want = append(want, s)
			}
		}

		got, err := ExtractWithinWindow(intervals, DefaultOptions(), from, to)

		require.NoError(t, err)
		assert.Equal(t, []time.Time{at("10:10"), at("10:40")}, got)
		assert.Equal(t, want, got)
	})

	t.Run("Long Block Only Costs The Window", func(t *testing.T) {
		long := []Interval{{
			Start: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
		}}
		from := at("00:00")

		got, err := ExtractWithinWindow(long, DefaultOptions(), from, from.Add(24*time.Hour))

		require.NoError(t, err)
		require.Len(t, got, 47)
		assert.Equal(t, at("00:00"), got[0])
		assert.Equal(t, at("23:00"), got[len(got)-1])
	})

	t.Run("Block Outside The Window", func(t *testing.T) {
		got, err := ExtractWithinWindow([]Interval{{Start: at("06:00"), End: at("08:00")}}, DefaultOptions(), at("10:00"), at("12:00"))

		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestOptionsWithDefaults(t *testing.T) {
	t.Run("Zero Values Fall Back", func(t *testing.T) {
		got := Options{}.WithDefaults(DefaultOptions())
		assert.Equal(t, DefaultOptions(), got)
	})

	t.Run("Negative Values Are Kept", func(t *testing.T) {
		got := Options{GranularityMinutes: -1, DurationMinutes: 45}.WithDefaults(DefaultOptions())
		assert.Equal(t, Options{GranularityMinutes: -1, DurationMinutes: 45}, got)
		assert.Error(t, got.Validate())
	})
}
