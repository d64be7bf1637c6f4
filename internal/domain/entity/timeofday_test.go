package entity

import (
	"testing"
	"time"

	errs "github.com/Numerinico/businesscalendar/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		token string
		want  TimeOfDay
	}{
		{"9:00", TimeOfDayOf(9, 0)},
		{"09:00", TimeOfDayOf(9, 0)},
		{"23:59", TimeOfDayOf(23, 59)},
		{"0:00", StartOfDay},
		{"24:00", EndOfDay},
		{"8:15:30", TimeOfDay(8*time.Hour + 15*time.Minute + 30*time.Second)},
		{" 9:00 ", TimeOfDayOf(9, 0)},
	}

	for _, tt := range tests {
		got, err := ParseTimeOfDay(tt.token, "")
		require.NoError(t, err, tt.token)
		assert.Equal(t, tt.want, got, tt.token)
	}
}

func TestParseTimeOfDayErrors(t *testing.T) {
	for _, token := range []string{"", "9", "9:60", "25:00", "24:01", "9:00:60", "-1:00", "nine:00", "9:00:00:00"} {
		_, err := ParseTimeOfDay(token, "")
		assert.ErrorIs(t, err, errs.ErrSlotParse, token)
	}
}

func TestParseTimeOfDayCustomLayout(t *testing.T) {
	got, err := ParseTimeOfDay("09.30", "15.04")
	require.NoError(t, err)
	assert.Equal(t, TimeOfDayOf(9, 30), got)

	_, err = ParseTimeOfDay("9h30", "15.04")
	assert.ErrorIs(t, err, errs.ErrSlotParse)
}

func TestTimeOfDayString(t *testing.T) {
	assert.Equal(t, "9:00", TimeOfDayOf(9, 0).String())
	assert.Equal(t, "14:05", TimeOfDayOf(14, 5).String())
	assert.Equal(t, "8:15:30", TimeOfDay(8*time.Hour+15*time.Minute+30*time.Second).String())
	assert.Equal(t, "24:00", EndOfDay.String())
}

func TestTimeOfDayFrom(t *testing.T) {
	instant := time.Date(2016, time.April, 18, 16, 30, 15, 500, time.FixedZone("CEST", 2*3600))
	got := TimeOfDayFrom(instant)
	want := TimeOfDay(16*time.Hour + 30*time.Minute + 15*time.Second + 500)
	assert.Equal(t, want, got, "the zone's own wall clock is used, not UTC")
}

func TestParseDate(t *testing.T) {
	t.Run("default d/M/yyyy layout", func(t *testing.T) {
		got, err := ParseDate("26/4/2016", "")
		require.NoError(t, err)
		assert.Equal(t, Date{Year: 2016, Month: time.April, Day: 26}, got)
	})

	t.Run("custom layout", func(t *testing.T) {
		got, err := ParseDate("2016-04-26", "2006-01-02")
		require.NoError(t, err)
		assert.Equal(t, Date{Year: 2016, Month: time.April, Day: 26}, got)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := ParseDate("26-4-2016", "")
		assert.ErrorIs(t, err, errs.ErrDateParse)
	})
}

func TestDateHelpers(t *testing.T) {
	d := Date{Year: 2016, Month: time.April, Day: 26}

	assert.Equal(t, time.Tuesday, d.Weekday())
	assert.Equal(t, "2016-04-26", d.String())
	assert.Equal(t, "26/4/2016", d.Format(DefaultDateLayout))

	assert.True(t, Date{Year: 2016, Month: time.April, Day: 25}.Before(d))
	assert.True(t, Date{Year: 2016, Month: time.March, Day: 27}.Before(d))
	assert.True(t, Date{Year: 2015, Month: time.December, Day: 31}.Before(d))
	assert.False(t, d.Before(d))
}
