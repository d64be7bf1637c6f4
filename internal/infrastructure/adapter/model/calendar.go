package model

import (
	"time"
)

// Calendar represents the database model for business calendars
type Calendar struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"uniqueIndex;not null;size:255"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	BusinessDays []BusinessDay `gorm:"foreignKey:CalendarID;constraint:OnDelete:CASCADE"`
	Holidays     []Holiday     `gorm:"foreignKey:CalendarID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for Calendar
func (Calendar) TableName() string {
	return "calendars"
}
