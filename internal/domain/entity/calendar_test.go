package entity

import (
	"testing"
	"time"

	errs "github.com/Numerinico/businesscalendar/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testCalendar builds the reference week: Monday 9:00-12:00 and 13:00-17:00,
// Tuesday 9:00-17:00, Tuesday 2016-04-26 a holiday.
func testCalendar(t *testing.T) *Calendar {
	t.Helper()

	monday := NewBusinessDay(time.Monday,
		mustSlot(t, 9, 0, 12, 0),
		mustSlot(t, 13, 0, 17, 0),
	)
	tuesday := NewBusinessDay(time.Tuesday, mustSlot(t, 9, 0, 17, 0))

	cal, err := NewCalendarOf(
		[]*BusinessDay{monday, tuesday},
		[]Date{{Year: 2016, Month: time.April, Day: 26}},
	)
	require.NoError(t, err)
	return cal
}

func at(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}

func TestNewCalendarOf(t *testing.T) {
	t.Run("nil business days", func(t *testing.T) {
		_, err := NewCalendarOf(nil, nil)
		assert.ErrorIs(t, err, errs.ErrNilArgument)
	})

	t.Run("duplicate day-of-week in input", func(t *testing.T) {
		_, err := NewCalendarOf([]*BusinessDay{
			NewBusinessDay(time.Tuesday, mustSlot(t, 9, 0, 17, 0)),
			NewBusinessDay(time.Tuesday),
		}, nil)
		assert.ErrorIs(t, err, errs.ErrDuplicateDayOfWeek)
	})
}

func TestCalendarIsWorkingTime(t *testing.T) {
	cal := testCalendar(t)

	t.Run("inside monday slot", func(t *testing.T) {
		assert.True(t, cal.IsWorkingTime(at(2016, time.April, 18, 11, 0)))
	})

	t.Run("before opening", func(t *testing.T) {
		assert.False(t, cal.IsWorkingTime(at(2016, time.April, 18, 5, 0)))
	})

	t.Run("unconfigured weekday", func(t *testing.T) {
		assert.False(t, cal.IsWorkingTime(at(2016, time.April, 17, 11, 0)), "sunday is closed")
	})

	t.Run("holiday overrides configured slots", func(t *testing.T) {
		// 2016-04-26 is a Tuesday with slots, but a holiday
		assert.False(t, cal.IsWorkingTime(at(2016, time.April, 26, 11, 0)))
	})
}

func TestCalendarDurationSameDay(t *testing.T) {
	cal := testCalendar(t)
	tuesday1530 := at(2016, time.April, 19, 15, 30)
	tuesday1630 := at(2016, time.April, 19, 16, 30)

	t.Run("zero span", func(t *testing.T) {
		assert.Equal(t, time.Duration(0), cal.Duration(tuesday1530, tuesday1530))
	})

	t.Run("one open hour", func(t *testing.T) {
		assert.Equal(t, time.Hour, cal.Duration(tuesday1530, tuesday1630))
	})

	t.Run("swapped bounds negate", func(t *testing.T) {
		assert.Equal(t, -time.Hour, cal.Duration(tuesday1630, tuesday1530))
	})
}

func TestCalendarDurationAcrossDays(t *testing.T) {
	cal := testCalendar(t)

	t.Run("monday evening to tuesday morning", func(t *testing.T) {
		// 16:30-17:00 on Monday plus 9:00-9:30 on Tuesday
		got := cal.Duration(at(2016, time.April, 18, 16, 30), at(2016, time.April, 19, 9, 30))
		assert.Equal(t, time.Hour, got)
	})

	t.Run("sunday to tuesday spans a full monday", func(t *testing.T) {
		// 0 from Sunday, 7h full Monday, 1h Tuesday morning
		got := cal.Duration(at(2016, time.April, 17, 16, 30), at(2016, time.April, 19, 10, 0))
		assert.Equal(t, 8*time.Hour, got)
	})

	t.Run("week span including weekend", func(t *testing.T) {
		// Mon 16:30-17:00, full Tuesday 8h, weekend closed, next Mon 9:00-9:30
		got := cal.Duration(at(2016, time.April, 18, 16, 30), at(2016, time.April, 25, 9, 30))
		assert.Equal(t, 9*time.Hour, got)
	})

	t.Run("entirely inside a weekend", func(t *testing.T) {
		got := cal.Duration(at(2016, time.April, 23, 10, 0), at(2016, time.April, 24, 11, 0))
		assert.Equal(t, time.Duration(0), got)
	})
}

func TestCalendarDurationHolidayZeroing(t *testing.T) {
	cal := testCalendar(t)
	start := at(2016, time.April, 19, 16, 0)
	end := at(2016, time.April, 26, 9, 30)

	t.Run("holiday tuesday contributes nothing", func(t *testing.T) {
		// Tue 16:00-17:00, full Monday 7h, holiday Tuesday zeroed
		assert.Equal(t, 8*time.Hour, cal.Duration(start, end))
	})

	t.Run("inverted", func(t *testing.T) {
		assert.Equal(t, -8*time.Hour, cal.Duration(end, start))
	})
}

func TestCalendarDurationEndOfDay(t *testing.T) {
	// A slot running to midnight is counted exactly once across the boundary.
	monday := NewBusinessDay(time.Monday, mustSlot(t, 22, 0, 24, 0))
	tuesday := NewBusinessDay(time.Tuesday, mustSlot(t, 0, 0, 2, 0))
	cal, err := NewCalendarOf([]*BusinessDay{monday, tuesday}, nil)
	require.NoError(t, err)

	got := cal.Duration(at(2016, time.April, 18, 21, 0), at(2016, time.April, 19, 3, 0))
	assert.Equal(t, 4*time.Hour, got)
}

func TestCalendarAddBusinessDay(t *testing.T) {
	cal := testCalendar(t)

	t.Run("new weekday", func(t *testing.T) {
		err := cal.AddBusinessDay(NewBusinessDay(time.Wednesday))
		require.NoError(t, err)
		assert.Len(t, cal.BusinessDays(), 3)
	})

	t.Run("duplicate weekday rejected, calendar unchanged", func(t *testing.T) {
		existing, ok := cal.BusinessDay(time.Tuesday)
		require.True(t, ok)

		err := cal.AddBusinessDay(NewBusinessDay(time.Tuesday))
		assert.ErrorIs(t, err, errs.ErrDuplicateDayOfWeek)

		var dupErr *errs.DuplicateDayOfWeekError
		require.ErrorAs(t, err, &dupErr)
		assert.Equal(t, time.Tuesday, dupErr.Weekday)

		after, ok := cal.BusinessDay(time.Tuesday)
		require.True(t, ok)
		assert.Same(t, existing, after)
	})

	t.Run("nil day", func(t *testing.T) {
		assert.ErrorIs(t, cal.AddBusinessDay(nil), errs.ErrNilArgument)
	})
}

func TestCalendarRemoveBusinessDay(t *testing.T) {
	cal := testCalendar(t)

	t.Run("by value", func(t *testing.T) {
		require.NoError(t, cal.RemoveBusinessDay(NewBusinessDay(time.Monday)))
		assert.Len(t, cal.BusinessDays(), 1)
	})

	t.Run("by weekday", func(t *testing.T) {
		cal.RemoveBusinessDayOfWeek(time.Tuesday)
		assert.Empty(t, cal.BusinessDays())
	})

	t.Run("absent removal is a no-op", func(t *testing.T) {
		require.NoError(t, cal.RemoveBusinessDay(NewBusinessDay(time.Friday)))
		cal.RemoveBusinessDayOfWeek(time.Friday)
	})
}

func TestCalendarSetBusinessDays(t *testing.T) {
	cal := testCalendar(t)

	t.Run("duplicate in input leaves calendar untouched", func(t *testing.T) {
		err := cal.SetBusinessDays([]*BusinessDay{
			NewBusinessDay(time.Friday),
			NewBusinessDay(time.Friday),
		})
		assert.ErrorIs(t, err, errs.ErrDuplicateDayOfWeek)
		assert.Len(t, cal.BusinessDays(), 2, "prior entries survive a failed replace")
	})

	t.Run("full replacement", func(t *testing.T) {
		err := cal.SetBusinessDays([]*BusinessDay{NewBusinessDay(time.Friday)})
		require.NoError(t, err)
		days := cal.BusinessDays()
		require.Len(t, days, 1)
		assert.Equal(t, time.Friday, days[0].Weekday())
	})
}

func TestCalendarHolidays(t *testing.T) {
	cal := NewCalendar()
	christmas := Date{Year: 2016, Month: time.December, Day: 25}

	assert.True(t, cal.AddHoliday(christmas))
	assert.False(t, cal.AddHoliday(christmas), "second insert does not change the set")
	assert.True(t, cal.IsHoliday(christmas))

	assert.True(t, cal.RemoveHoliday(christmas))
	assert.False(t, cal.RemoveHoliday(christmas), "absent removal reports no change")
	assert.False(t, cal.IsHoliday(christmas))
}

func TestCalendarAccessorsReturnCopies(t *testing.T) {
	cal := testCalendar(t)

	holidays := cal.Holidays()
	require.Len(t, holidays, 1)
	holidays[0] = Date{Year: 2000, Month: time.January, Day: 1}
	assert.True(t, cal.IsHoliday(Date{Year: 2016, Month: time.April, Day: 26}))

	days := cal.BusinessDays()
	days[0] = nil
	_, ok := cal.BusinessDay(time.Monday)
	assert.True(t, ok)
}

func TestCalendarSignSymmetryProperty(t *testing.T) {
	cal := testCalendar(t)

	pairs := [][2]time.Time{
		{at(2016, time.April, 18, 8, 0), at(2016, time.April, 18, 18, 0)},
		{at(2016, time.April, 17, 0, 0), at(2016, time.April, 26, 23, 59)},
		{at(2016, time.April, 19, 12, 0), at(2016, time.April, 19, 12, 0)},
		{at(2016, time.April, 15, 16, 45), at(2016, time.April, 25, 9, 10)},
	}

	for _, p := range pairs {
		assert.Equal(t, cal.Duration(p[0], p[1]), -cal.Duration(p[1], p[0]))
	}
}
