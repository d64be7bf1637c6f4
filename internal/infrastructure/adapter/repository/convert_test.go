package repository

import (
	"testing"
	"time"

	"github.com/Numerinico/businesscalendar/internal/domain/entity"
	errs "github.com/Numerinico/businesscalendar/internal/domain/error"
	"github.com/Numerinico/businesscalendar/internal/infrastructure/adapter/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusinessDayModelRoundTrip(t *testing.T) {
	morning, err := entity.NewTimeSlot(entity.TimeOfDayOf(9, 0), entity.TimeOfDayOf(12, 0))
	require.NoError(t, err)
	afternoon, err := entity.NewTimeSlot(entity.TimeOfDayOf(13, 0), entity.TimeOfDayOf(17, 0))
	require.NoError(t, err)

	day := entity.NewBusinessDay(time.Monday, morning, afternoon)

	row := businessDayToModel(day, 42)
	assert.Equal(t, uint64(42), row.CalendarID)
	assert.Equal(t, int(time.Monday), row.Weekday)
	require.Len(t, row.TimeSlots, 2)

	restored, err := modelToBusinessDay(&row)
	require.NoError(t, err)
	assert.True(t, day.Equal(restored))
}

func TestModelToBusinessDayInvalidSlot(t *testing.T) {
	row := model.BusinessDay{
		Weekday: int(time.Friday),
		TimeSlots: []model.TimeSlot{
			{StartNanos: int64(entity.TimeOfDayOf(17, 0)), EndNanos: int64(entity.TimeOfDayOf(9, 0))},
		},
	}

	_, err := modelToBusinessDay(&row)
	assert.ErrorIs(t, err, errs.ErrInternalServer)
}

func TestModelToCalendar(t *testing.T) {
	row := model.Calendar{
		Name: "office",
		BusinessDays: []model.BusinessDay{
			{
				Weekday: int(time.Tuesday),
				TimeSlots: []model.TimeSlot{
					{StartNanos: int64(entity.TimeOfDayOf(9, 0)), EndNanos: int64(entity.TimeOfDayOf(17, 0))},
				},
			},
		},
		Holidays: []model.Holiday{
			{Date: "2016-04-26"},
		},
	}

	calendar, err := modelToCalendar(&row)
	require.NoError(t, err)

	day, ok := calendar.BusinessDay(time.Tuesday)
	require.True(t, ok)
	assert.Len(t, day.Slots(), 1)
	assert.True(t, calendar.IsHoliday(entity.DateOf(time.Date(2016, 4, 26, 0, 0, 0, 0, time.UTC))))
}

func TestModelToCalendarBadHoliday(t *testing.T) {
	row := model.Calendar{
		Name:     "office",
		Holidays: []model.Holiday{{Date: "26/04/2016"}},
	}

	_, err := modelToCalendar(&row)
	assert.ErrorIs(t, err, errs.ErrInternalServer)
}

func TestHolidayKey(t *testing.T) {
	date := entity.DateOf(time.Date(2016, 12, 25, 10, 30, 0, 0, time.UTC))
	assert.Equal(t, "2016-12-25", holidayKey(date))
}
