package entity

import (
	"sort"
	"time"

	errs "github.com/Numerinico/businesscalendar/internal/domain/error"
)

// Calendar is a recurring weekly schedule plus one-off full-day holidays.
// It holds at most one BusinessDay per day-of-week; that invariant is
// enforced on every insertion path. The calendar owns its business days and
// holiday set: accessors hand out copies, never the live collections.
//
// Mutations are not internally synchronized. A calendar shared across
// goroutines needs external serialization of writes; read-only duration
// queries against a stable calendar are safe to run in parallel.
type Calendar struct {
	days     map[time.Weekday]*BusinessDay
	holidays map[Date]struct{}
}

// NewCalendar creates an empty calendar
func NewCalendar() *Calendar {
	return &Calendar{
		days:     make(map[time.Weekday]*BusinessDay, 7),
		holidays: make(map[Date]struct{}),
	}
}

// NewCalendarOf creates a calendar from initial business days and holidays.
// A day-of-week collision inside days fails with ErrDuplicateDayOfWeek.
func NewCalendarOf(days []*BusinessDay, holidays []Date) (*Calendar, error) {
	if days == nil {
		return nil, errs.ErrNilArgument
	}

	c := NewCalendar()
	if err := c.SetBusinessDays(days); err != nil {
		return nil, err
	}
	for _, h := range holidays {
		c.holidays[h] = struct{}{}
	}
	return c, nil
}

// AddBusinessDay inserts a business day keyed by its day-of-week. Fails
// with ErrDuplicateDayOfWeek when that day-of-week is already present; the
// calendar is unchanged on failure.
func (c *Calendar) AddBusinessDay(day *BusinessDay) error {
	if day == nil {
		return errs.ErrNilArgument
	}
	if _, exists := c.days[day.Weekday()]; exists {
		return errs.NewDuplicateDayOfWeekError(day.Weekday())
	}
	c.days[day.Weekday()] = day
	return nil
}

// PutBusinessDay inserts or replaces the entry for the day's day-of-week
func (c *Calendar) PutBusinessDay(day *BusinessDay) error {
	if day == nil {
		return errs.ErrNilArgument
	}
	c.days[day.Weekday()] = day
	return nil
}

// RemoveBusinessDay removes the entry keyed by the day's day-of-week.
// Removing an absent day is a no-op.
func (c *Calendar) RemoveBusinessDay(day *BusinessDay) error {
	if day == nil {
		return errs.ErrNilArgument
	}
	delete(c.days, day.Weekday())
	return nil
}

// RemoveBusinessDayOfWeek removes the entry for a day-of-week; absent
// entries are a no-op
func (c *Calendar) RemoveBusinessDayOfWeek(weekday time.Weekday) {
	delete(c.days, weekday)
}

// SetBusinessDays replaces the whole business-day set. The input is
// validated for day-of-week collisions before any mutation, so a duplicate
// inside the input leaves the calendar untouched.
func (c *Calendar) SetBusinessDays(days []*BusinessDay) error {
	if days == nil {
		return errs.ErrNilArgument
	}

	seen := make(map[time.Weekday]struct{}, len(days))
	for _, day := range days {
		if day == nil {
			return errs.ErrNilArgument
		}
		if _, dup := seen[day.Weekday()]; dup {
			return errs.NewDuplicateDayOfWeekError(day.Weekday())
		}
		seen[day.Weekday()] = struct{}{}
	}

	c.days = make(map[time.Weekday]*BusinessDay, 7)
	for _, day := range days {
		c.days[day.Weekday()] = day
	}
	return nil
}

// BusinessDay looks up the entry for a day-of-week
func (c *Calendar) BusinessDay(weekday time.Weekday) (*BusinessDay, bool) {
	day, ok := c.days[weekday]
	return day, ok
}

// BusinessDays returns a copy of the business days, ordered by day-of-week
func (c *Calendar) BusinessDays() []*BusinessDay {
	days := make([]*BusinessDay, 0, len(c.days))
	for _, day := range c.days {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Weekday() < days[j].Weekday()
	})
	return days
}

// AddHoliday inserts a holiday date; reports whether the set changed
func (c *Calendar) AddHoliday(date Date) bool {
	if _, exists := c.holidays[date]; exists {
		return false
	}
	c.holidays[date] = struct{}{}
	return true
}

// RemoveHoliday removes a holiday date; reports whether the set changed
func (c *Calendar) RemoveHoliday(date Date) bool {
	if _, exists := c.holidays[date]; !exists {
		return false
	}
	delete(c.holidays, date)
	return true
}

// IsHoliday reports whether a date is a holiday
func (c *Calendar) IsHoliday(date Date) bool {
	_, ok := c.holidays[date]
	return ok
}

// SetHolidays replaces the whole holiday set with a copy of the input
func (c *Calendar) SetHolidays(holidays []Date) {
	c.holidays = make(map[Date]struct{}, len(holidays))
	for _, h := range holidays {
		c.holidays[h] = struct{}{}
	}
}

// Holidays returns a sorted copy of the holiday dates
func (c *Calendar) Holidays() []Date {
	holidays := make([]Date, 0, len(c.holidays))
	for h := range c.holidays {
		holidays = append(holidays, h)
	}
	sort.Slice(holidays, func(i, j int) bool {
		return holidays[i].Before(holidays[j])
	})
	return holidays
}

// IsWorkingTime reports whether an instant falls inside open hours: not a
// holiday, a business day exists for the weekday, and a slot contains the
// instant's clock time.
func (c *Calendar) IsWorkingTime(at time.Time) bool {
	if c.IsHoliday(DateOf(at)) {
		return false
	}
	day, ok := c.days[at.Weekday()]
	if !ok {
		return false
	}
	return day.Contains(TimeOfDayFrom(at))
}

// Duration returns the open time elapsed between two instants: the span is
// split at day boundaries, each day slice is clipped to that date's open
// slots (zero on holidays and unconfigured weekdays), and the slices are
// summed. If start is after end the bounds are swapped and the result
// negated, so Duration(a, b) == -Duration(b, a).
func (c *Calendar) Duration(start, end time.Time) time.Duration {
	negated := false
	if start.After(end) {
		start, end = end, start
		negated = true
	}

	startDay := midnightOf(start)
	endDay := midnightOf(end)

	var total time.Duration
	if startDay.Equal(endDay) {
		total = c.dailyDuration(TimeOfDayFrom(start), TimeOfDayFrom(end), DateOf(start))
	} else {
		// remainder of the first day
		total = c.dailyDuration(TimeOfDayFrom(start), EndOfDay, DateOf(start))

		// every full day in between contributes its entire open time
		for day := startDay.AddDate(0, 0, 1); day.Before(endDay); day = day.AddDate(0, 0, 1) {
			total += c.dailyDuration(StartOfDay, EndOfDay, DateOf(day))
		}

		// the portion of the last day up to end
		total += c.dailyDuration(StartOfDay, TimeOfDayFrom(end), DateOf(end))
	}

	if negated {
		return -total
	}
	return total
}

// dailyDuration clips [t1, t2) to one date's open hours: zero on holidays
// and on weekdays with no business day entry
func (c *Calendar) dailyDuration(t1, t2 TimeOfDay, date Date) time.Duration {
	if c.IsHoliday(date) {
		return 0
	}
	day, ok := c.days[date.Weekday()]
	if !ok {
		return 0
	}
	return day.Duration(t1, t2)
}

// midnightOf truncates an instant to the start of its calendar date,
// keeping the zone
func midnightOf(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
