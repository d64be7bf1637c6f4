package calendar

import (
	"context"
	"strings"
	"time"

	"github.com/Numerinico/businesscalendar/internal/domain/entity"
	errs "github.com/Numerinico/businesscalendar/internal/domain/error"
	coreport "github.com/Numerinico/businesscalendar/internal/domain/port/core"
	"github.com/Numerinico/businesscalendar/internal/domain/port/persistence"
	"github.com/Numerinico/businesscalendar/internal/domain/port/usecase"
)

// UseCase implements the calendar business logic on top of the repository
type UseCase struct {
	calendarRepo persistence.CalendarRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewUseCase creates a new calendar use case instance
func NewUseCase(
	calendarRepo persistence.CalendarRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.CalendarUseCase {
	return &UseCase{
		calendarRepo: calendarRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.ErrInvalidCalendarName
	}
	return nil
}

// CreateCalendar stores a new named calendar
func (u *UseCase) CreateCalendar(ctx context.Context, name string, calendar *entity.Calendar) error {
	if err := validateName(name); err != nil {
		return err
	}
	if calendar == nil {
		return errs.ErrNilArgument
	}

	if err := u.calendarRepo.Create(ctx, name, calendar); err != nil {
		u.logger.Error("Failed to create calendar", map[string]any{
			"calendar": name,
			"error":    err.Error(),
		})
		return err
	}

	u.logger.Info("Calendar created", map[string]any{
		"calendar":      name,
		"business_days": len(calendar.BusinessDays()),
		"holidays":      len(calendar.Holidays()),
	})
	return nil
}

// GetCalendar loads a named calendar
func (u *UseCase) GetCalendar(ctx context.Context, name string) (*entity.Calendar, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	return u.calendarRepo.GetByName(ctx, name)
}

// ListCalendars returns the names of all stored calendars
func (u *UseCase) ListCalendars(ctx context.Context) ([]string, error) {
	return u.calendarRepo.List(ctx)
}

// DeleteCalendar removes a named calendar
func (u *UseCase) DeleteCalendar(ctx context.Context, name string) error {
	if err := validateName(name); err != nil {
		return err
	}

	if err := u.calendarRepo.Delete(ctx, name); err != nil {
		return err
	}

	u.logger.Info("Calendar deleted", map[string]any{"calendar": name})
	return nil
}

// PutBusinessDay inserts or replaces one weekday's slot set
func (u *UseCase) PutBusinessDay(ctx context.Context, name string, day *entity.BusinessDay) error {
	if err := validateName(name); err != nil {
		return err
	}
	if day == nil {
		return errs.ErrNilArgument
	}

	if err := u.calendarRepo.ReplaceBusinessDay(ctx, name, day); err != nil {
		u.logger.Error("Failed to store business day", map[string]any{
			"calendar": name,
			"weekday":  day.Weekday().String(),
			"error":    err.Error(),
		})
		return err
	}

	u.logger.Info("Business day stored", map[string]any{
		"calendar": name,
		"weekday":  day.Weekday().String(),
		"slots":    len(day.Slots()),
	})
	return nil
}

// RemoveBusinessDay removes one weekday's entry; absent entries are a no-op
func (u *UseCase) RemoveBusinessDay(ctx context.Context, name string, weekday time.Weekday) error {
	if err := validateName(name); err != nil {
		return err
	}
	return u.calendarRepo.DeleteBusinessDay(ctx, name, weekday)
}

// AddHoliday inserts a holiday date; reports whether the set changed
func (u *UseCase) AddHoliday(ctx context.Context, name string, date entity.Date) (bool, error) {
	if err := validateName(name); err != nil {
		return false, err
	}

	added, err := u.calendarRepo.AddHoliday(ctx, name, date)
	if err != nil {
		return false, err
	}

	u.logger.Info("Holiday added", map[string]any{
		"calendar": name,
		"date":     date.String(),
		"changed":  added,
	})
	return added, nil
}

// RemoveHoliday removes a holiday date; reports whether the set changed
func (u *UseCase) RemoveHoliday(ctx context.Context, name string, date entity.Date) (bool, error) {
	if err := validateName(name); err != nil {
		return false, err
	}
	return u.calendarRepo.RemoveHoliday(ctx, name, date)
}
