package usecase

import (
	"context"
	"time"

	"github.com/Numerinico/businesscalendar/internal/domain/entity"
)

// DurationResult is the outcome of a duration query
type DurationResult struct {
	Calendar string
	Start    time.Time
	End      time.Time
	Duration time.Duration
}

// WorkingTimeResult is the outcome of a working-time query
type WorkingTimeResult struct {
	Calendar    string
	At          time.Time
	WorkingTime bool
}

// CalendarUseCase defines the application operations over named calendars
type CalendarUseCase interface {
	CreateCalendar(ctx context.Context, name string, calendar *entity.Calendar) error
	GetCalendar(ctx context.Context, name string) (*entity.Calendar, error)
	ListCalendars(ctx context.Context) ([]string, error)
	DeleteCalendar(ctx context.Context, name string) error

	PutBusinessDay(ctx context.Context, name string, day *entity.BusinessDay) error
	RemoveBusinessDay(ctx context.Context, name string, weekday time.Weekday) error

	AddHoliday(ctx context.Context, name string, date entity.Date) (bool, error)
	RemoveHoliday(ctx context.Context, name string, date entity.Date) (bool, error)

	Duration(ctx context.Context, name string, start, end time.Time) (*DurationResult, error)
	IsWorkingTime(ctx context.Context, name string, at time.Time) (*WorkingTimeResult, error)
}
