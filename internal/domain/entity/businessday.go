package entity

import (
	"sort"
	"strings"
	"time"
)

// BusinessDay is the set of open time slots recurring on one day-of-week.
// Identical slots collapse to a single set member, but distinct slots that
// overlap each other all stay and all contribute to durations: two slots
// covering the same minute count that minute twice. This weighted behavior
// is deliberate and callers rely on it.
//
// A BusinessDay with no slots is a valid "present but closed" day.
type BusinessDay struct {
	weekday time.Weekday
	slots   map[TimeSlot]struct{}
}

// NewBusinessDay creates a business day for a day-of-week with an optional
// initial slot set
func NewBusinessDay(weekday time.Weekday, slots ...TimeSlot) *BusinessDay {
	day := &BusinessDay{
		weekday: weekday,
		slots:   make(map[TimeSlot]struct{}, len(slots)),
	}
	for _, s := range slots {
		day.slots[s] = struct{}{}
	}
	return day
}

// Weekday returns the day-of-week
func (d *BusinessDay) Weekday() time.Weekday {
	return d.weekday
}

// SetWeekday changes the day-of-week
func (d *BusinessDay) SetWeekday(weekday time.Weekday) {
	d.weekday = weekday
}

// Slots returns the slots ordered by start then end time
func (d *BusinessDay) Slots() []TimeSlot {
	slots := make([]TimeSlot, 0, len(d.slots))
	for s := range d.slots {
		slots = append(slots, s)
	}
	sort.Slice(slots, func(i, j int) bool {
		if slots[i].start != slots[j].start {
			return slots[i].start < slots[j].start
		}
		return slots[i].end < slots[j].end
	})
	return slots
}

// SetSlots replaces the whole slot set
func (d *BusinessDay) SetSlots(slots []TimeSlot) {
	d.slots = make(map[TimeSlot]struct{}, len(slots))
	for _, s := range slots {
		d.slots[s] = struct{}{}
	}
}

// AddSlot inserts one slot; inserting an identical slot is a no-op
func (d *BusinessDay) AddSlot(slot TimeSlot) {
	d.slots[slot] = struct{}{}
}

// IsWorkingDay reports whether the day has any open slot at all
func (d *BusinessDay) IsWorkingDay() bool {
	return len(d.slots) > 0
}

// Contains reports whether t falls inside at least one slot
func (d *BusinessDay) Contains(t TimeOfDay) bool {
	for s := range d.slots {
		if s.Contains(t) {
			return true
		}
	}
	return false
}

// Duration sums every slot's overlap with [queryStart, queryEnd) without
// deduplicating coverage shared between slots. The result carries the sign
// of the query direction, like TimeSlot.Duration.
func (d *BusinessDay) Duration(queryStart, queryEnd TimeOfDay) time.Duration {
	var total time.Duration
	for s := range d.slots {
		total += s.Duration(queryStart, queryEnd)
	}
	return total
}

// Equal reports structural equality: same weekday and same slot set
func (d *BusinessDay) Equal(o *BusinessDay) bool {
	if d == nil || o == nil {
		return d == o
	}
	if d.weekday != o.weekday || len(d.slots) != len(o.slots) {
		return false
	}
	for s := range d.slots {
		if _, ok := o.slots[s]; !ok {
			return false
		}
	}
	return true
}

// String renders the day as "Monday 9:00-12:00,13:00-17:00"
func (d *BusinessDay) String() string {
	tokens := make([]string, 0, len(d.slots))
	for _, s := range d.Slots() {
		tokens = append(tokens, s.String())
	}
	return d.weekday.String() + " " + strings.Join(tokens, DefaultSlotsSeparator)
}
