package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/Numerinico/businesscalendar/internal/domain/entity"
	errs "github.com/Numerinico/businesscalendar/internal/domain/error"
)

// weekdayNames maps the settings keys onto weekdays, in calendar order
var weekdayNames = []struct {
	key     string
	weekday time.Weekday
}{
	{"monday", time.Monday},
	{"tuesday", time.Tuesday},
	{"wednesday", time.Wednesday},
	{"thursday", time.Thursday},
	{"friday", time.Friday},
	{"saturday", time.Saturday},
	{"sunday", time.Sunday},
}

// BuildSchedule turns the schedule settings into business days and holiday
// dates, already validated as legal slots and dates. The caller receives
// domain values and never has to interpret a parse failure itself.
func BuildSchedule(cfg ScheduleConfig) ([]*entity.BusinessDay, []entity.Date, error) {
	days, err := buildBusinessDays(cfg)
	if err != nil {
		return nil, nil, err
	}

	holidays, err := buildHolidays(cfg)
	if err != nil {
		return nil, nil, err
	}

	return days, holidays, nil
}

func buildBusinessDays(cfg ScheduleConfig) ([]*entity.BusinessDay, error) {
	days := make([]*entity.BusinessDay, 0, len(weekdayNames))

	for _, wd := range weekdayNames {
		list, ok := cfg.Weekdays[wd.key]
		if !ok {
			continue
		}

		slots, err := entity.ParseTimeSlots(list, cfg.SlotSeparator, cfg.TimeSeparator, cfg.TimePattern)
		if err != nil {
			return nil, errs.NewSettingsLoadError("schedule.weekdays."+wd.key, err)
		}

		days = append(days, entity.NewBusinessDay(wd.weekday, slots...))
	}

	return days, nil
}

func buildHolidays(cfg ScheduleConfig) ([]entity.Date, error) {
	list := strings.TrimSpace(cfg.Holidays)
	if list == "" {
		return nil, nil
	}

	separator := cfg.SlotSeparator
	if separator == "" {
		separator = entity.DefaultSlotsSeparator
	}

	tokens := strings.Split(list, separator)
	holidays := make([]entity.Date, 0, len(tokens))
	seen := make(map[entity.Date]struct{}, len(tokens))

	for _, token := range tokens {
		date, err := entity.ParseDate(token, cfg.DatePattern)
		if err != nil {
			return nil, errs.NewSettingsLoadError("schedule.holidays", err)
		}
		if _, dup := seen[date]; dup {
			continue
		}
		seen[date] = struct{}{}
		holidays = append(holidays, date)
	}

	return holidays, nil
}

// UnknownWeekdayKeys reports settings keys under schedule.weekdays that
// name no weekday, so a typo surfaces at startup instead of silently
// dropping a day.
func UnknownWeekdayKeys(cfg ScheduleConfig) []string {
	known := make(map[string]struct{}, len(weekdayNames))
	for _, wd := range weekdayNames {
		known[wd.key] = struct{}{}
	}

	var unknown []string
	for key := range cfg.Weekdays {
		if _, ok := known[strings.ToLower(key)]; !ok {
			unknown = append(unknown, fmt.Sprintf("schedule.weekdays.%s", key))
		}
	}
	return unknown
}
