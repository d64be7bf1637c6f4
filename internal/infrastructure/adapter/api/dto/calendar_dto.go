package dto

// TimeSlotDTO represents one opening interval within a business day
type TimeSlotDTO struct {
	Start string `json:"start" binding:"required"`
	End   string `json:"end" binding:"required"`
}

// BusinessDayDTO represents one weekday's opening schedule
type BusinessDayDTO struct {
	Weekday string        `json:"weekday" binding:"required"`
	Slots   []TimeSlotDTO `json:"slots"`
}

// CalendarRequest represents the API request for creating a calendar
type CalendarRequest struct {
	Name     string           `json:"name" binding:"required"`
	Days     []BusinessDayDTO `json:"days"`
	Holidays []string         `json:"holidays"`
}

// CalendarResponse represents the API response for a calendar
type CalendarResponse struct {
	Name     string           `json:"name"`
	Days     []BusinessDayDTO `json:"days"`
	Holidays []string         `json:"holidays"`
}

// CalendarListResponse represents the API response for listing calendars
type CalendarListResponse struct {
	Calendars []string `json:"calendars"`
}

// HolidayRequest represents the API request for adding or removing a holiday
type HolidayRequest struct {
	Date string `json:"date" binding:"required"`
}

// HolidayResponse reports whether a holiday change took effect
type HolidayResponse struct {
	Calendar string `json:"calendar"`
	Date     string `json:"date"`
	Changed  bool   `json:"changed"`
}
