package slot

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func iv(start, end string) Interval {
	return Interval{Start: at(start), End: at(end)}
}

func assertNoOverlap(t *testing.T, merged []Interval) {
	t.Helper()
	for i := 0; i+1 < len(merged); i++ {
		assert.False(t, merged[i].End.After(merged[i+1].Start), "merged[%d] overlaps merged[%d]", i, i+1)
	}
}

func TestNormalizeIntervals(t *testing.T) {
	t.Run("Sorted By End And Stable", func(t *testing.T) {
		input := []RawInterval{raw("10:00", "12:00"), raw("08:00", "09:00"), raw("11:00", "12:00")}

		got, err := NormalizeIntervals(input, time.UTC)

		require.NoError(t, err)
		assert.Equal(t, []Interval{iv("08:00", "09:00"), iv("10:00", "12:00"), iv("11:00", "12:00")}, got)
		assert.Equal(t, raw("10:00", "12:00"), input[0], "input must not be mutated")
	})

	t.Run("Zone-less Timestamps Use Location", func(t *testing.T) {
		loc := time.FixedZone("WIB", 7*3600)

		got, err := NormalizeIntervals([]RawInterval{{Start: "2024-03-04T09:00", End: "2024-03-04 10:00:00"}}, loc)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.True(t, got[0].Start.Equal(time.Date(2024, 3, 4, 2, 0, 0, 0, time.UTC)))
		assert.True(t, got[0].End.Equal(time.Date(2024, 3, 4, 3, 0, 0, 0, time.UTC)))
	})

	t.Run("Unparseable Start", func(t *testing.T) {
		_, err := NormalizeIntervals([]RawInterval{raw("09:00", "10:00"), {Start: "noon", End: "2024-03-04T13:00:00Z"}}, time.UTC)

		var ivErr *InvalidIntervalError
		require.True(t, errors.As(err, &ivErr))
		assert.Equal(t, 1, ivErr.Index)
		assert.Equal(t, "start", ivErr.Field)
		assert.Equal(t, "noon", ivErr.Value)
	})

	t.Run("Start After End", func(t *testing.T) {
		_, err := NormalizeIntervals([]RawInterval{raw("11:00", "10:00")}, time.UTC)

		assert.True(t, errors.Is(err, ErrInvalidInterval))
	})

	t.Run("Empty", func(t *testing.T) {
		got, err := NormalizeIntervals(nil, time.UTC)

		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestMergeIntervals(t *testing.T) {
	t.Run("Boundary Absorption", func(t *testing.T) {
		got := MergeIntervals([]Interval{iv("09:00", "09:59"), iv("10:00", "11:00")})

		assert.Equal(t, []Interval{iv("09:00", "11:00")}, got)
	})

	t.Run("Exactly Touching Blocks Chain", func(t *testing.T) {
		got := MergeIntervals([]Interval{iv("08:00", "09:00"), iv("09:00", "10:00"), iv("10:00", "10:30")})

		assert.Equal(t, []Interval{iv("08:00", "10:30")}, got)
	})

	t.Run("Gap Keeps Blocks Apart", func(t *testing.T) {
		input := []Interval{iv("08:00", "09:00"), iv("09:15", "10:00")}

		got := MergeIntervals(input)

		assert.Equal(t, input, got)
	})

	t.Run("Lone Minute 59 End Is Rounded", func(t *testing.T) {
		got := MergeIntervals([]Interval{iv("13:00", "14:59")})

		assert.Equal(t, []Interval{iv("13:00", "15:00")}, got)
	})

	t.Run("Absorbed Minute 59 End Is Rounded Again", func(t *testing.T) {
		got := MergeIntervals([]Interval{iv("09:00", "09:59"), iv("10:00", "10:59"), iv("11:00", "12:00")})

		assert.Equal(t, []Interval{iv("09:00", "12:00")}, got)
	})

	t.Run("Wide Block Folds Earlier Output", func(t *testing.T) {
		sorted, err := NormalizeIntervals([]RawInterval{raw("10:00", "11:00"), raw("12:00", "13:00"), raw("08:00", "14:00")}, time.UTC)
		require.NoError(t, err)

		got := MergeIntervals(sorted)

		assert.Equal(t, []Interval{iv("08:00", "14:00")}, got)
	})

	t.Run("Does Not Mutate Input", func(t *testing.T) {
		input := []Interval{iv("09:00", "09:59"), iv("10:00", "11:00")}

		MergeIntervals(input)

		assert.Equal(t, at("09:59"), input[0].End)
		assert.Len(t, input, 2)
	})

	t.Run("Empty", func(t *testing.T) {
		got := MergeIntervals([]Interval{})
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestMergeIntervalsProperties(t *testing.T) {
	inputs := map[string][]RawInterval{
		"disjoint":    {raw("08:00", "09:00"), raw("10:00", "11:00"), raw("13:00", "14:00")},
		"touching":    {raw("08:00", "09:00"), raw("09:00", "10:00")},
		"overlapping": {raw("08:00", "10:00"), raw("09:00", "11:00"), raw("10:30", "12:00")},
		"nested":      {raw("09:30", "10:00"), raw("09:00", "12:00"), raw("11:00", "11:30")},
		"minute 59":   {raw("07:00", "07:59"), raw("08:00", "08:59"), raw("12:00", "12:59")},
		"mixed":       {raw("16:00", "17:00"), raw("06:00", "06:59"), raw("07:00", "08:00"), raw("05:00", "18:00"), raw("20:00", "21:00")},
	}

	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			sorted, err := NormalizeIntervals(input, time.UTC)
			require.NoError(t, err)

			merged := MergeIntervals(sorted)

			assertNoOverlap(t, merged)
			assert.LessOrEqual(t, len(merged), len(input))
			assert.Equal(t, merged, MergeIntervals(merged), "merge must be idempotent")
		})
	}
}
