package model

import (
	"time"
)

// Holiday represents the database model for a full-day closure.
// Date is stored as an ISO yyyy-mm-dd string so the unique index
// compares calendar days, not instants.
type Holiday struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	CalendarID uint64    `gorm:"not null;index;uniqueIndex:idx_calendar_date"`
	Date       string    `gorm:"not null;size:10;uniqueIndex:idx_calendar_date"`
	CreatedAt  time.Time `gorm:"not null"`
}

// TableName specifies the table name for Holiday
func (Holiday) TableName() string {
	return "holidays"
}
