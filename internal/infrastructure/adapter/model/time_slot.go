package model

// TimeSlot represents the database model for an opening interval within a
// business day. Boundaries are stored as nanoseconds since midnight.
type TimeSlot struct {
	ID            uint64 `gorm:"primaryKey;autoIncrement"`
	BusinessDayID uint64 `gorm:"not null;index"`
	StartNanos    int64  `gorm:"not null"`
	EndNanos      int64  `gorm:"not null"`
}

// TableName specifies the table name for TimeSlot
func (TimeSlot) TableName() string {
	return "time_slots"
}
