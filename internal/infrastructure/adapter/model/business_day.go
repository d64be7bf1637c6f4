package model

import (
	"time"
)

// BusinessDay represents the database model for a weekday's opening schedule.
// Weekday follows time.Weekday numbering, Sunday being 0.
type BusinessDay struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	CalendarID uint64    `gorm:"not null;index;uniqueIndex:idx_calendar_weekday"`
	Weekday    int       `gorm:"not null;uniqueIndex:idx_calendar_weekday"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`

	TimeSlots []TimeSlot `gorm:"foreignKey:BusinessDayID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for BusinessDay
func (BusinessDay) TableName() string {
	return "business_days"
}
