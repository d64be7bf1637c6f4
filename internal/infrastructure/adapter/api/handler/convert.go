package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Numerinico/businesscalendar/internal/domain/entity"
	domainerr "github.com/Numerinico/businesscalendar/internal/domain/error"
	"github.com/Numerinico/businesscalendar/internal/infrastructure/adapter/api/dto"
)

const apiDateLayout = "2006-01-02"

var weekdaysByName = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// parseWeekday resolves a weekday name from a request
func parseWeekday(name string) (time.Weekday, error) {
	weekday, ok := weekdaysByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: unknown weekday %q", domainerr.ErrInvalidRequest, name)
	}
	return weekday, nil
}

// dtoToBusinessDay builds a business day entity from its request form
func dtoToBusinessDay(d dto.BusinessDayDTO) (*entity.BusinessDay, error) {
	weekday, err := parseWeekday(d.Weekday)
	if err != nil {
		return nil, err
	}

	slots := make([]entity.TimeSlot, 0, len(d.Slots))
	for _, slotDTO := range d.Slots {
		start, err := entity.ParseTimeOfDay(slotDTO.Start, "")
		if err != nil {
			return nil, err
		}
		end, err := entity.ParseTimeOfDay(slotDTO.End, "")
		if err != nil {
			return nil, err
		}
		slot, err := entity.NewTimeSlot(start, end)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}

	return entity.NewBusinessDay(weekday, slots...), nil
}

// businessDayToDTO renders a business day entity into its response form
func businessDayToDTO(day *entity.BusinessDay) dto.BusinessDayDTO {
	slots := day.Slots()
	slotDTOs := make([]dto.TimeSlotDTO, 0, len(slots))
	for _, slot := range slots {
		slotDTOs = append(slotDTOs, dto.TimeSlotDTO{
			Start: slot.Start().String(),
			End:   slot.End().String(),
		})
	}

	return dto.BusinessDayDTO{
		Weekday: strings.ToLower(day.Weekday().String()),
		Slots:   slotDTOs,
	}
}

// dtoToCalendar builds a calendar entity from a create request
func dtoToCalendar(req dto.CalendarRequest) (*entity.Calendar, error) {
	calendar := entity.NewCalendar()

	for _, dayDTO := range req.Days {
		day, err := dtoToBusinessDay(dayDTO)
		if err != nil {
			return nil, err
		}
		if err := calendar.AddBusinessDay(day); err != nil {
			return nil, err
		}
	}

	for _, token := range req.Holidays {
		date, err := entity.ParseDate(token, apiDateLayout)
		if err != nil {
			return nil, err
		}
		calendar.AddHoliday(date)
	}

	return calendar, nil
}

// calendarToDTO renders a calendar entity into its response form
func calendarToDTO(name string, calendar *entity.Calendar) dto.CalendarResponse {
	days := calendar.BusinessDays()
	dayDTOs := make([]dto.BusinessDayDTO, 0, len(days))
	for _, day := range days {
		dayDTOs = append(dayDTOs, businessDayToDTO(day))
	}

	holidays := calendar.Holidays()
	holidayTokens := make([]string, 0, len(holidays))
	for _, date := range holidays {
		holidayTokens = append(holidayTokens, date.Format(apiDateLayout))
	}

	return dto.CalendarResponse{
		Name:     name,
		Days:     dayDTOs,
		Holidays: holidayTokens,
	}
}

// statusForError maps domain errors onto HTTP status codes
func statusForError(err error) int {
	switch {
	case errors.Is(err, domainerr.ErrCalendarNotFound),
		errors.Is(err, domainerr.ErrBusinessDayNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainerr.ErrDuplicateCalendar),
		errors.Is(err, domainerr.ErrDuplicateDayOfWeek):
		return http.StatusConflict
	case errors.Is(err, domainerr.ErrInvalidRequest),
		errors.Is(err, domainerr.ErrInvalidCalendarName),
		errors.Is(err, domainerr.ErrInvalidSlot),
		errors.Is(err, domainerr.ErrInvalidTimeOfDay),
		errors.Is(err, domainerr.ErrSlotParse),
		errors.Is(err, domainerr.ErrDateParse),
		errors.Is(err, domainerr.ErrNilArgument):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
