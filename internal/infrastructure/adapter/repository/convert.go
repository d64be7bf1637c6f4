package repository

import (
	"fmt"
	"time"

	"github.com/Numerinico/businesscalendar/internal/domain/entity"
	errs "github.com/Numerinico/businesscalendar/internal/domain/error"
	"github.com/Numerinico/businesscalendar/internal/infrastructure/adapter/model"
)

const holidayDateLayout = "2006-01-02"

// businessDayToModel converts a business day entity into its row form
func businessDayToModel(day *entity.BusinessDay, calendarID uint64) model.BusinessDay {
	slots := day.Slots()
	rows := make([]model.TimeSlot, 0, len(slots))
	for _, slot := range slots {
		rows = append(rows, model.TimeSlot{
			StartNanos: int64(slot.Start()),
			EndNanos:   int64(slot.End()),
		})
	}

	return model.BusinessDay{
		CalendarID: calendarID,
		Weekday:    int(day.Weekday()),
		TimeSlots:  rows,
	}
}

// modelToBusinessDay converts a business day row back into its entity form
func modelToBusinessDay(row *model.BusinessDay) (*entity.BusinessDay, error) {
	slots := make([]entity.TimeSlot, 0, len(row.TimeSlots))
	for _, slotRow := range row.TimeSlots {
		slot, err := entity.NewTimeSlot(
			entity.TimeOfDay(slotRow.StartNanos),
			entity.TimeOfDay(slotRow.EndNanos),
		)
		if err != nil {
			return nil, fmt.Errorf("%w: stored slot %d is invalid: %s",
				errs.ErrInternalServer, slotRow.ID, err.Error())
		}
		slots = append(slots, slot)
	}

	return entity.NewBusinessDay(time.Weekday(row.Weekday), slots...), nil
}

// modelToCalendar assembles a calendar entity from its rows
func modelToCalendar(row *model.Calendar) (*entity.Calendar, error) {
	calendar := entity.NewCalendar()

	for i := range row.BusinessDays {
		day, err := modelToBusinessDay(&row.BusinessDays[i])
		if err != nil {
			return nil, err
		}
		if err := calendar.AddBusinessDay(day); err != nil {
			return nil, fmt.Errorf("%w: stored schedule for calendar %q is inconsistent: %s",
				errs.ErrInternalServer, row.Name, err.Error())
		}
	}

	for _, holidayRow := range row.Holidays {
		date, err := entity.ParseDate(holidayRow.Date, holidayDateLayout)
		if err != nil {
			return nil, fmt.Errorf("%w: stored holiday %q is invalid: %s",
				errs.ErrInternalServer, holidayRow.Date, err.Error())
		}
		calendar.AddHoliday(date)
	}

	return calendar, nil
}

// holidayKey formats a date the way the holidays table stores it
func holidayKey(date entity.Date) string {
	return date.Format(holidayDateLayout)
}
