package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Numerinico/businesscalendar/internal/domain/entity"
	errs "github.com/Numerinico/businesscalendar/internal/domain/error"
	coreport "github.com/Numerinico/businesscalendar/internal/domain/port/core"
	"github.com/Numerinico/businesscalendar/internal/domain/port/persistence"
	"github.com/Numerinico/businesscalendar/internal/infrastructure/adapter/database"
	"github.com/Numerinico/businesscalendar/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CalendarRepository implements the CalendarRepository port using GORM
type CalendarRepository struct {
	db          *gorm.DB
	logger      coreport.Logger
	errorMapper *database.ErrorMapper
}

// NewCalendarRepository creates a new CalendarRepository instance
func NewCalendarRepository(db *gorm.DB, logger coreport.Logger) persistence.CalendarRepository {
	return &CalendarRepository{
		db:          db,
		logger:      logger,
		errorMapper: database.NewErrorMapper(),
	}
}

// handleDatabaseError standardizes database error handling
func (r *CalendarRepository) handleDatabaseError(operation string, err error, name string) error {
	r.logger.Error("Database error during "+operation, map[string]any{
		"calendar": name,
		"error":    err.Error(),
	})
	return r.errorMapper.MapError(err, operation)
}

// findCalendarRow loads the bare calendar row for a name
func (r *CalendarRepository) findCalendarRow(tx *gorm.DB, name string) (*model.Calendar, error) {
	var row model.Calendar
	if err := tx.Where("name = ?", name).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrCalendarNotFound
		}
		return nil, err
	}
	return &row, nil
}

// Create stores a new calendar with all its business days and holidays
func (r *CalendarRepository) Create(ctx context.Context, name string, calendar *entity.Calendar) error {
	r.logger.Debug("Creating calendar", map[string]any{
		"calendar": name,
	})

	row := model.Calendar{Name: name}

	for _, day := range calendar.BusinessDays() {
		row.BusinessDays = append(row.BusinessDays, businessDayToModel(day, 0))
	}
	for _, date := range calendar.Holidays() {
		row.Holidays = append(row.Holidays, model.Holiday{Date: holidayKey(date)})
	}

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return r.handleDatabaseError("creating calendar", err, name)
	}

	r.logger.Info("Calendar created", map[string]any{
		"calendar":      name,
		"business_days": len(row.BusinessDays),
		"holidays":      len(row.Holidays),
	})
	return nil
}

// GetByName loads a calendar with its business days and holidays
func (r *CalendarRepository) GetByName(ctx context.Context, name string) (*entity.Calendar, error) {
	var row model.Calendar
	err := r.db.WithContext(ctx).
		Preload("BusinessDays.TimeSlots").
		Preload("Holidays").
		Where("name = ?", name).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrCalendarNotFound
		}
		return nil, r.handleDatabaseError("loading calendar", err, name)
	}

	return modelToCalendar(&row)
}

// List returns the names of all stored calendars
func (r *CalendarRepository) List(ctx context.Context) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Model(&model.Calendar{}).
		Order("name").
		Pluck("name", &names).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing calendars", err, "")
	}
	return names, nil
}

// Delete removes a calendar and everything it owns
func (r *CalendarRepository) Delete(ctx context.Context, name string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row, err := r.findCalendarRow(tx, name)
		if err != nil {
			if errors.Is(err, errs.ErrCalendarNotFound) {
				return err
			}
			return r.handleDatabaseError("deleting calendar", err, name)
		}

		if err := tx.Select(clause.Associations).Delete(row).Error; err != nil {
			return r.handleDatabaseError("deleting calendar", err, name)
		}

		r.logger.Info("Calendar deleted", map[string]any{
			"calendar": name,
		})
		return nil
	})
}

// ReplaceBusinessDay upserts one weekday's slot set for a calendar
func (r *CalendarRepository) ReplaceBusinessDay(ctx context.Context, name string, day *entity.BusinessDay) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row, err := r.findCalendarRow(tx, name)
		if err != nil {
			if errors.Is(err, errs.ErrCalendarNotFound) {
				return err
			}
			return r.handleDatabaseError("replacing business day", err, name)
		}

		if err := r.deleteBusinessDayRows(tx, row.ID, day.Weekday()); err != nil {
			return r.handleDatabaseError("replacing business day", err, name)
		}

		dayRow := businessDayToModel(day, row.ID)
		if err := tx.Create(&dayRow).Error; err != nil {
			return r.handleDatabaseError("replacing business day", err, name)
		}

		r.logger.Debug("Business day replaced", map[string]any{
			"calendar": name,
			"weekday":  day.Weekday().String(),
			"slots":    len(dayRow.TimeSlots),
		})
		return nil
	})
}

// DeleteBusinessDay removes one weekday's entry; absent entries are a no-op
func (r *CalendarRepository) DeleteBusinessDay(ctx context.Context, name string, weekday time.Weekday) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row, err := r.findCalendarRow(tx, name)
		if err != nil {
			if errors.Is(err, errs.ErrCalendarNotFound) {
				return err
			}
			return r.handleDatabaseError("deleting business day", err, name)
		}

		if err := r.deleteBusinessDayRows(tx, row.ID, weekday); err != nil {
			return r.handleDatabaseError("deleting business day", err, name)
		}
		return nil
	})
}

// deleteBusinessDayRows removes a weekday row and its slots inside a transaction
func (r *CalendarRepository) deleteBusinessDayRows(tx *gorm.DB, calendarID uint64, weekday time.Weekday) error {
	var dayRow model.BusinessDay
	err := tx.Where("calendar_id = ? AND weekday = ?", calendarID, int(weekday)).First(&dayRow).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	if err := tx.Where("business_day_id = ?", dayRow.ID).Delete(&model.TimeSlot{}).Error; err != nil {
		return err
	}
	return tx.Delete(&dayRow).Error
}

// AddHoliday inserts a holiday date; reports whether the set changed
func (r *CalendarRepository) AddHoliday(ctx context.Context, name string, date entity.Date) (bool, error) {
	var added bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row, err := r.findCalendarRow(tx, name)
		if err != nil {
			if errors.Is(err, errs.ErrCalendarNotFound) {
				return err
			}
			return r.handleDatabaseError("adding holiday", err, name)
		}

		result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&model.Holiday{
			CalendarID: row.ID,
			Date:       holidayKey(date),
		})
		if result.Error != nil {
			return r.handleDatabaseError("adding holiday", result.Error, name)
		}

		added = result.RowsAffected > 0
		return nil
	})
	return added, err
}

// RemoveHoliday removes a holiday date; reports whether the set changed
func (r *CalendarRepository) RemoveHoliday(ctx context.Context, name string, date entity.Date) (bool, error) {
	var removed bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row, err := r.findCalendarRow(tx, name)
		if err != nil {
			if errors.Is(err, errs.ErrCalendarNotFound) {
				return err
			}
			return r.handleDatabaseError("removing holiday", err, name)
		}

		result := tx.Where("calendar_id = ? AND date = ?", row.ID, holidayKey(date)).
			Delete(&model.Holiday{})
		if result.Error != nil {
			return r.handleDatabaseError("removing holiday", result.Error, name)
		}

		removed = result.RowsAffected > 0
		return nil
	})
	return removed, err
}
