package database

import (
	"errors"
	"fmt"
	"strings"

	domainErr "github.com/Numerinico/businesscalendar/internal/domain/error"
	"gorm.io/gorm"
)

// ErrorMapper maps database errors to domain errors
type ErrorMapper struct{}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{}
}

// MapError maps a database error to a domain error
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainErr.ErrCalendarNotFound
	}

	errMsg := strings.ToLower(err.Error())

	switch {
	// Duplicate key errors
	case strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint"):
		if strings.Contains(errMsg, "idx_calendar_weekday") {
			return domainErr.ErrDuplicateDayOfWeek
		}
		return domainErr.ErrDuplicateCalendar

	// Connection issues
	case strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "no connection") ||
		strings.Contains(errMsg, "connection reset"):
		return domainErr.ErrDatabaseConnection

	// Timeout errors
	case strings.Contains(errMsg, "timeout") ||
		strings.Contains(errMsg, "deadline exceeded"):
		return fmt.Errorf("%w: %s operation timed out", domainErr.ErrDatabaseConnection, operation)

	default:
		return domainErr.ErrInternalServer
	}
}

// MapCalendarNotFoundError maps database lookup errors for calendars
func (m *ErrorMapper) MapCalendarNotFoundError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainErr.ErrCalendarNotFound
	}
	return m.MapError(err, "calendar lookup")
}

// MapBusinessDayNotFoundError maps database lookup errors for business days
func (m *ErrorMapper) MapBusinessDayNotFoundError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainErr.ErrBusinessDayNotFound
	}
	return m.MapError(err, "business day lookup")
}
