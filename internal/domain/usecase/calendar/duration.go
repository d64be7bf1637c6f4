package calendar

import (
	"context"
	"time"

	"github.com/Numerinico/businesscalendar/internal/domain/port/usecase"
)

// Duration computes the open time elapsed between two instants on a named
// calendar. The engine itself is pure; only the calendar load can fail.
func (u *UseCase) Duration(ctx context.Context, name string, start, end time.Time) (*usecase.DurationResult, error) {
	cal, err := u.GetCalendar(ctx, name)
	if err != nil {
		return nil, err
	}

	elapsed := cal.Duration(start, end)

	u.logger.Debug("Duration computed", map[string]any{
		"calendar": name,
		"start":    start.Format(time.RFC3339),
		"end":      end.Format(time.RFC3339),
		"duration": elapsed.String(),
	})

	return &usecase.DurationResult{
		Calendar: name,
		Start:    start,
		End:      end,
		Duration: elapsed,
	}, nil
}

// IsWorkingTime reports whether an instant falls inside a named calendar's
// open hours
func (u *UseCase) IsWorkingTime(ctx context.Context, name string, at time.Time) (*usecase.WorkingTimeResult, error) {
	cal, err := u.GetCalendar(ctx, name)
	if err != nil {
		return nil, err
	}

	return &usecase.WorkingTimeResult{
		Calendar:    name,
		At:          at,
		WorkingTime: cal.IsWorkingTime(at),
	}, nil
}
