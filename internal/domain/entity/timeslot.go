package entity

import (
	"strings"
	"time"

	errs "github.com/Numerinico/businesscalendar/internal/domain/error"
)

// Defaults used by the textual slot parsers
const (
	// DefaultTimeLayout is the default clock token form ("9:00", "14:30")
	DefaultTimeLayout = "15:04"
	// DefaultTimesSeparator separates the start and end of one slot token
	DefaultTimesSeparator = "-"
	// DefaultSlotsSeparator separates slot tokens in a list
	DefaultSlotsSeparator = ","
)

// TimeSlot is one contiguous span of openness within a day: an inclusive
// start and an exclusive end time-of-day. The zero value is not a valid
// slot; construct through NewTimeSlot or ParseTimeSlot so the start < end
// invariant always holds. TimeSlot is comparable, so structural equality
// and map-key deduplication come for free.
type TimeSlot struct {
	start TimeOfDay
	end   TimeOfDay
}

// NewTimeSlot builds a slot from start (inclusive) and end (exclusive).
// Returns ErrInvalidSlot unless start is strictly before end.
func NewTimeSlot(start, end TimeOfDay) (TimeSlot, error) {
	if !start.Valid() || !end.Valid() {
		return TimeSlot{}, errs.ErrInvalidTimeOfDay
	}
	if start >= end {
		return TimeSlot{}, errs.ErrInvalidSlot
	}
	return TimeSlot{start: start, end: end}, nil
}

// ParseTimeSlot parses a single "start-end" token. Empty separators and
// layout select the defaults.
func ParseTimeSlot(token, timesSeparator, timeLayout string) (TimeSlot, error) {
	if timesSeparator == "" {
		timesSeparator = DefaultTimesSeparator
	}

	parts := strings.Split(token, timesSeparator)
	if len(parts) != 2 {
		return TimeSlot{}, errs.NewSlotParseError(token, "expected exactly one start and one end time")
	}

	start, err := ParseTimeOfDay(parts[0], timeLayout)
	if err != nil {
		return TimeSlot{}, err
	}
	end, err := ParseTimeOfDay(parts[1], timeLayout)
	if err != nil {
		return TimeSlot{}, err
	}

	return NewTimeSlot(start, end)
}

// ParseTimeSlots parses a separator-delimited list of slot tokens.
// An empty list parses to an empty slice, not an error; duplicates within
// the list collapse when the result is handed to a BusinessDay.
func ParseTimeSlots(list, slotsSeparator, timesSeparator, timeLayout string) ([]TimeSlot, error) {
	if slotsSeparator == "" {
		slotsSeparator = DefaultSlotsSeparator
	}

	tokens := strings.Split(list, slotsSeparator)
	if len(tokens) == 1 && strings.TrimSpace(tokens[0]) == "" {
		return []TimeSlot{}, nil
	}

	slots := make([]TimeSlot, 0, len(tokens))
	for _, token := range tokens {
		slot, err := ParseTimeSlot(strings.TrimSpace(token), timesSeparator, timeLayout)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}
	return slots, nil
}

// Start returns the inclusive start time
func (s TimeSlot) Start() TimeOfDay {
	return s.start
}

// End returns the exclusive end time
func (s TimeSlot) End() TimeOfDay {
	return s.end
}

// WithStart returns a copy with a new start time, re-validated
func (s TimeSlot) WithStart(start TimeOfDay) (TimeSlot, error) {
	return NewTimeSlot(start, s.end)
}

// WithEnd returns a copy with a new end time, re-validated
func (s TimeSlot) WithEnd(end TimeOfDay) (TimeSlot, error) {
	return NewTimeSlot(s.start, end)
}

// Contains reports whether t falls inside the slot. The start is part of
// the slot, the end is not.
func (s TimeSlot) Contains(t TimeOfDay) bool {
	return t == s.start || (t > s.start && t < s.end)
}

// Duration returns the portion of [queryStart, queryEnd) that overlaps the
// slot, signed: if queryStart is after queryEnd the bounds are swapped and
// the result negated. The four overlap cases are mutually exclusive and
// exhaustive over the relative orderings of two half-open intervals.
func (s TimeSlot) Duration(queryStart, queryEnd TimeOfDay) time.Duration {
	negated := false
	if queryStart > queryEnd {
		queryStart, queryEnd = queryEnd, queryStart
		negated = true
	}

	var d time.Duration
	switch {
	case s.Contains(queryStart) && s.Contains(queryEnd):
		// query fully inside the slot
		d = queryEnd.Sub(queryStart)
	case s.Contains(queryStart):
		// query starts inside and runs past the slot's end
		d = s.end.Sub(queryStart)
	case s.Contains(queryEnd):
		// query starts before the slot and ends inside it
		d = queryEnd.Sub(s.start)
	case s.start < queryEnd && s.end > queryStart:
		// query straddles the whole slot
		d = s.end.Sub(s.start)
	}

	if negated {
		return -d
	}
	return d
}

// String renders the slot in the default "start-end" form; parsing the
// result with defaults yields an equal slot.
func (s TimeSlot) String() string {
	return s.start.String() + DefaultTimesSeparator + s.end.String()
}
