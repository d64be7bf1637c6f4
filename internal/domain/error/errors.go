package error

import (
	"errors"
	"fmt"
	"time"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest    = 4000
	CodeInvalidSlot       = 4001
	CodeSlotParse         = 4002
	CodeNilArgument       = 4003
	CodeDuplicateDay      = 4004
	CodeDuplicateCalendar = 4005
	CodeInvalidName       = 4006
	CodeCalendarNotFound  = 4040

	// 5xxx - Server errors
	CodeInternalServer = 5000
	CodeSettingsLoad   = 5001
)

// Base error types
var (
	// ErrNilArgument is returned when a required argument is missing
	ErrNilArgument = errors.New("required argument is nil")

	// ErrInvalidSlot is returned when a time slot's start is not strictly before its end
	ErrInvalidSlot = errors.New("slot start must be strictly before slot end")

	// ErrInvalidTimeOfDay is returned when a time-of-day value is outside [00:00, 24:00]
	ErrInvalidTimeOfDay = errors.New("time of day out of range")

	// ErrSlotParse is returned when a textual time slot cannot be parsed
	ErrSlotParse = errors.New("malformed time slot")

	// ErrDateParse is returned when a textual date cannot be parsed
	ErrDateParse = errors.New("malformed date")

	// ErrDuplicateDayOfWeek is returned when a calendar already holds a business day
	// for the same day-of-week
	ErrDuplicateDayOfWeek = errors.New("business day already defined for this day of week")

	// ErrSettingsLoad is returned when the schedule settings source cannot be read
	ErrSettingsLoad = errors.New("failed to load schedule settings")

	// ErrInvalidCalendarName is returned when the calendar name is empty
	ErrInvalidCalendarName = errors.New("calendar name cannot be empty")

	// ErrCalendarNotFound is returned when the requested calendar doesn't exist
	ErrCalendarNotFound = errors.New("calendar not found")

	// ErrDuplicateCalendar is returned when a calendar with the same name already exists
	ErrDuplicateCalendar = errors.New("calendar already exists")

	// ErrBusinessDayNotFound is returned when a calendar has no entry for a day-of-week
	ErrBusinessDayNotFound = errors.New("business day not found")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidSlot), errors.Is(err, ErrInvalidTimeOfDay):
		return CodeInvalidSlot
	case errors.Is(err, ErrSlotParse), errors.Is(err, ErrDateParse):
		return CodeSlotParse
	case errors.Is(err, ErrNilArgument):
		return CodeNilArgument
	case errors.Is(err, ErrDuplicateDayOfWeek):
		return CodeDuplicateDay
	case errors.Is(err, ErrDuplicateCalendar):
		return CodeDuplicateCalendar
	case errors.Is(err, ErrInvalidCalendarName):
		return CodeInvalidName
	case errors.Is(err, ErrCalendarNotFound), errors.Is(err, ErrBusinessDayNotFound):
		return CodeCalendarNotFound
	case errors.Is(err, ErrSettingsLoad):
		return CodeSettingsLoad
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	default:
		return CodeInternalServer
	}
}

// SlotParseError carries the offending token of a failed time slot parse
type SlotParseError struct {
	Token  string
	Reason string
}

// Error implements the error interface
func (e *SlotParseError) Error() string {
	return fmt.Sprintf("malformed time slot %q: %s", e.Token, e.Reason)
}

// Is checks if the target error is an ErrSlotParse
func (e *SlotParseError) Is(target error) bool {
	return target == ErrSlotParse
}

// LogFields returns a map of fields for structured logging
func (e *SlotParseError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "slot_parse",
		"token":      e.Token,
		"reason":     e.Reason,
		"error_code": CodeSlotParse,
	}
}

// NewSlotParseError creates a new detailed slot parse error
func NewSlotParseError(token, reason string) error {
	return &SlotParseError{Token: token, Reason: reason}
}

// DuplicateDayOfWeekError reports which day-of-week was inserted twice
type DuplicateDayOfWeekError struct {
	Weekday time.Weekday
}

// Error implements the error interface
func (e *DuplicateDayOfWeekError) Error() string {
	return fmt.Sprintf("business day already defined for %s", e.Weekday)
}

// Is checks if the target error is an ErrDuplicateDayOfWeek
func (e *DuplicateDayOfWeekError) Is(target error) bool {
	return target == ErrDuplicateDayOfWeek
}

// LogFields returns a map of fields for structured logging
func (e *DuplicateDayOfWeekError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "duplicate_day_of_week",
		"weekday":    e.Weekday.String(),
		"error_code": CodeDuplicateDay,
	}
}

// NewDuplicateDayOfWeekError creates a new detailed duplicate day-of-week error
func NewDuplicateDayOfWeekError(weekday time.Weekday) error {
	return &DuplicateDayOfWeekError{Weekday: weekday}
}

// SettingsLoadError reports which settings key could not be turned into schedule data
type SettingsLoadError struct {
	Key string
	Err error
}

// Error implements the error interface
func (e *SettingsLoadError) Error() string {
	return fmt.Sprintf("failed to load schedule settings (key %q): %v", e.Key, e.Err)
}

// Is checks if the target error is an ErrSettingsLoad
func (e *SettingsLoadError) Is(target error) bool {
	return target == ErrSettingsLoad
}

// Unwrap returns the underlying error
func (e *SettingsLoadError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *SettingsLoadError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "settings_load",
		"key":        e.Key,
		"error":      e.Err.Error(),
		"error_code": CodeSettingsLoad,
	}
}

// NewSettingsLoadError creates a new detailed settings load error
func NewSettingsLoadError(key string, err error) error {
	return &SettingsLoadError{Key: key, Err: err}
}

// IsDuplicateDayOfWeekError checks if the error is a duplicate day-of-week error
func IsDuplicateDayOfWeekError(err error) bool {
	return errors.Is(err, ErrDuplicateDayOfWeek)
}

// IsSlotParseError checks if the error is a slot parse error
func IsSlotParseError(err error) bool {
	return errors.Is(err, ErrSlotParse)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrCalendarNotFound) ||
		errors.Is(err, ErrBusinessDayNotFound)
}
