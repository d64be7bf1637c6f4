package entity

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	errs "github.com/Numerinico/businesscalendar/internal/domain/error"
)

// TimeOfDay is a clock offset from midnight, stored as nanoseconds.
// The valid range is [00:00, 24:00]; 24:00 only ever appears as the
// exclusive upper bound of a day slice or slot, never as an instant.
type TimeOfDay time.Duration

const (
	// StartOfDay is midnight, the inclusive lower bound of a day
	StartOfDay TimeOfDay = 0
	// EndOfDay is the exclusive upper bound of a day
	EndOfDay TimeOfDay = TimeOfDay(24 * time.Hour)
)

// TimeOfDayOf builds a TimeOfDay from an hour and minute on the 24-hour clock
func TimeOfDayOf(hour, minute int) TimeOfDay {
	return TimeOfDay(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

// TimeOfDayFrom extracts the clock portion of an instant. The instant's zone
// is respected but never converted: the same wall clock the caller sees is
// the one used for slot lookups.
func TimeOfDayFrom(t time.Time) TimeOfDay {
	hour, minute, sec := t.Clock()
	return TimeOfDay(time.Duration(hour)*time.Hour +
		time.Duration(minute)*time.Minute +
		time.Duration(sec)*time.Second +
		time.Duration(t.Nanosecond()))
}

// ParseTimeOfDay parses a clock token such as "9:00", "14:30" or "8:15:30".
// An empty layout selects the default flexible H:mm[:ss] form; any other
// layout is treated as a stdlib time reference layout.
func ParseTimeOfDay(token, layout string) (TimeOfDay, error) {
	token = strings.TrimSpace(token)
	if layout == "" || layout == DefaultTimeLayout {
		return parseClock(token)
	}

	t, err := time.Parse(layout, token)
	if err != nil {
		return 0, errs.NewSlotParseError(token, fmt.Sprintf("time does not match layout %q", layout))
	}
	return TimeOfDayFrom(t), nil
}

// parseClock accepts H:mm and H:mm:ss with one- or two-digit hours,
// plus "24:00" as an end-of-day bound.
func parseClock(token string) (TimeOfDay, error) {
	parts := strings.Split(token, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, errs.NewSlotParseError(token, "expected H:mm or H:mm:ss")
	}

	fields := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil || v < 0 {
			return 0, errs.NewSlotParseError(token, "clock fields must be non-negative integers")
		}
		fields[i] = v
	}

	hour, minute := fields[0], fields[1]
	sec := 0
	if len(fields) == 3 {
		sec = fields[2]
	}

	if hour > 24 || minute > 59 || sec > 59 || (hour == 24 && (minute != 0 || sec != 0)) {
		return 0, errs.NewSlotParseError(token, "clock value out of range")
	}

	return TimeOfDay(time.Duration(hour)*time.Hour +
		time.Duration(minute)*time.Minute +
		time.Duration(sec)*time.Second), nil
}

// Valid reports whether the value lies within [00:00, 24:00]
func (t TimeOfDay) Valid() bool {
	return t >= StartOfDay && t <= EndOfDay
}

// Sub returns the elapsed wall-clock time from o to t
func (t TimeOfDay) Sub(o TimeOfDay) time.Duration {
	return time.Duration(t - o)
}

// Clock splits the value into hour, minute, second components
func (t TimeOfDay) Clock() (hour, minute, sec int) {
	d := time.Duration(t)
	hour = int(d / time.Hour)
	minute = int(d % time.Hour / time.Minute)
	sec = int(d % time.Minute / time.Second)
	return
}

// String renders the value in the default H:mm form, appending seconds
// only when they are non-zero, so parse/render round-trips.
func (t TimeOfDay) String() string {
	hour, minute, sec := t.Clock()
	if sec != 0 {
		return fmt.Sprintf("%d:%02d:%02d", hour, minute, sec)
	}
	return fmt.Sprintf("%d:%02d", hour, minute)
}

// DefaultDateLayout is the layout used for holiday dates when none is
// configured (Go reference form of d/M/yyyy)
const DefaultDateLayout = "2/1/2006"

// Date is a calendar date without time or zone, usable as a map key
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf extracts the calendar date of an instant in its own zone
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return Date{Year: year, Month: month, Day: day}
}

// ParseDate parses a date token using a stdlib reference layout,
// defaulting to DefaultDateLayout
func ParseDate(token, layout string) (Date, error) {
	if layout == "" {
		layout = DefaultDateLayout
	}
	t, err := time.Parse(layout, strings.TrimSpace(token))
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q does not match layout %q", errs.ErrDateParse, token, layout)
	}
	return DateOf(t), nil
}

// Weekday returns the day-of-week of the date
func (d Date) Weekday() time.Weekday {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Weekday()
}

// Before reports whether d is earlier than o
func (d Date) Before(o Date) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

// Format renders the date with a stdlib reference layout
func (d Date) Format(layout string) string {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Format(layout)
}

// String renders the date in ISO form
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}
