package persistence

import (
	"context"
	"time"

	"github.com/Numerinico/businesscalendar/internal/domain/entity"
)

// CalendarRepository persists named calendars
type CalendarRepository interface {
	// Create stores a new calendar under a unique name
	Create(ctx context.Context, name string, calendar *entity.Calendar) error
	// GetByName loads a calendar with its business days and holidays
	GetByName(ctx context.Context, name string) (*entity.Calendar, error)
	// List returns the names of all stored calendars
	List(ctx context.Context) ([]string, error)
	// Delete removes a calendar and everything it owns
	Delete(ctx context.Context, name string) error

	// ReplaceBusinessDay upserts one weekday's slot set for a calendar
	ReplaceBusinessDay(ctx context.Context, name string, day *entity.BusinessDay) error
	// DeleteBusinessDay removes one weekday's entry; absent entries are a no-op
	DeleteBusinessDay(ctx context.Context, name string, weekday time.Weekday) error

	// AddHoliday inserts a holiday date; reports whether the set changed
	AddHoliday(ctx context.Context, name string, date entity.Date) (bool, error)
	// RemoveHoliday removes a holiday date; reports whether the set changed
	RemoveHoliday(ctx context.Context, name string, date entity.Date) (bool, error)
}
