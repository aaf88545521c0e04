//go:build unit

package interval_test

import (
	"testing"
	"time"

	"court-booking/internal/domain/interval"
	"court-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	date := interval.NewDate(2025, time.March, 1)

	testCases := []struct {
		name  string
		start interval.TimeOfDay
		end   interval.TimeOfDay
		errIs error
	}{
		{name: "valid hour", start: interval.MustTimeOfDay(9, 0), end: interval.MustTimeOfDay(10, 0)},
		{name: "valid until midnight", start: interval.MustTimeOfDay(23, 0), end: interval.MustTimeOfDay(24, 0)},
		{name: "start equals end", start: interval.MustTimeOfDay(9, 0), end: interval.MustTimeOfDay(9, 0), errIs: interval.ErrInvalidInterval},
		{name: "start after end", start: interval.MustTimeOfDay(10, 0), end: interval.MustTimeOfDay(9, 0), errIs: interval.ErrInvalidInterval},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			iv, err := interval.New(date, tc.start, tc.end)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, date, iv.Date())
			assert.Equal(t, tc.start, iv.Start())
			assert.Equal(t, tc.end, iv.End())
		})
	}
}

func TestParseTimeOfDay(t *testing.T) {
	tod, err := interval.ParseTimeOfDay("07:30")
	require.NoError(t, err)
	assert.Equal(t, 450, tod.Minutes())
	assert.Equal(t, "07:30", tod.String())

	tod, err = interval.ParseTimeOfDay("24:00")
	require.NoError(t, err)
	assert.Equal(t, interval.MinutesPerDay, tod.Minutes())
	assert.Equal(t, "24:00", tod.String())

	for _, bad := range []string{"7h30", "25:00", ""} {
		_, err = interval.ParseTimeOfDay(bad)
		assert.True(t, errs.Is(err, interval.ErrInvalidTimeOfDay), "input %q: %v", bad, err)
	}
}

func TestDate(t *testing.T) {
	d, err := interval.ParseDate("2025-02-28")
	require.NoError(t, err)
	assert.Equal(t, "2025-02-28", d.String())
	assert.Equal(t, "2025-03-01", d.AddDays(1).String())
	assert.True(t, d.Before(d.AddDays(1)))
	assert.True(t, d.Equal(interval.NewDate(2025, time.February, 28)))

	_, err = interval.ParseDate("2025-13-01")
	assert.True(t, errs.Is(err, interval.ErrInvalidDate), "%v", err)
}

func TestInterval_StartAt(t *testing.T) {
	loc := time.FixedZone("JST", 9*60*60)
	iv, err := interval.Parse("2025-03-01", "09:15", "24:00")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, time.March, 1, 9, 15, 0, 0, loc), iv.StartAt(loc))
	assert.Equal(t, time.Date(2025, time.March, 2, 0, 0, 0, 0, loc), iv.EndAt(loc))
	assert.Equal(t, 14*time.Hour+45*time.Minute, iv.Duration())
	assert.Equal(t, "2025-03-01 09:15-24:00", iv.String())
}
