package migration

import (
	"context"
	"errors"

	"github.com/Numerinico/businesscalendar/internal/domain/entity"
	errs "github.com/Numerinico/businesscalendar/internal/domain/error"
	coreport "github.com/Numerinico/businesscalendar/internal/domain/port/core"
	"github.com/Numerinico/businesscalendar/internal/domain/port/usecase"
	"github.com/Numerinico/businesscalendar/internal/infrastructure/config"
)

// SeedDefaultCalendar creates the calendar described by the schedule settings
// if it does not exist yet. An already seeded calendar is left untouched so
// later edits through the API survive restarts.
func SeedDefaultCalendar(ctx context.Context, service usecase.CalendarUseCase, cfg config.ScheduleConfig, logger coreport.Logger) error {
	name := cfg.CalendarName
	if name == "" {
		name = "default"
	}

	_, err := service.GetCalendar(ctx, name)
	if err == nil {
		logger.Info("Default calendar already present, skipping seed", map[string]any{
			"calendar": name,
		})
		return nil
	}
	if !errors.Is(err, errs.ErrCalendarNotFound) {
		return err
	}

	days, holidays, err := config.BuildSchedule(cfg)
	if err != nil {
		return err
	}

	if unknown := config.UnknownWeekdayKeys(cfg); len(unknown) > 0 {
		logger.Warn("Ignoring unknown weekday settings", map[string]any{
			"keys": unknown,
		})
	}

	calendar, err := entity.NewCalendarOf(days, holidays)
	if err != nil {
		return err
	}

	if err := service.CreateCalendar(ctx, name, calendar); err != nil {
		return err
	}

	logger.Info("Seeded default calendar", map[string]any{
		"calendar":      name,
		"business_days": len(days),
		"holidays":      len(holidays),
	})
	return nil
}
