package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusinessDayWorkingDay(t *testing.T) {
	t.Run("no slots means closed", func(t *testing.T) {
		day := NewBusinessDay(time.Monday)
		assert.False(t, day.IsWorkingDay())
		assert.False(t, day.Contains(TimeOfDayOf(10, 0)))
		assert.Equal(t, time.Duration(0), day.Duration(StartOfDay, EndOfDay))
	})

	t.Run("one slot means working", func(t *testing.T) {
		day := NewBusinessDay(time.Monday, mustSlot(t, 9, 0, 17, 0))
		assert.True(t, day.IsWorkingDay())
	})
}

func TestBusinessDayContains(t *testing.T) {
	day := NewBusinessDay(time.Monday,
		mustSlot(t, 9, 0, 12, 0),
		mustSlot(t, 13, 0, 17, 0),
	)

	assert.True(t, day.Contains(TimeOfDayOf(10, 0)))
	assert.True(t, day.Contains(TimeOfDayOf(13, 0)))
	assert.False(t, day.Contains(TimeOfDayOf(12, 30)), "lunch gap is closed")
	assert.False(t, day.Contains(TimeOfDayOf(17, 0)), "slot end is exclusive")
}

func TestBusinessDayWeightedOverlap(t *testing.T) {
	// Overlapping slots both contribute: coverage is weighted, not merged.
	day := NewBusinessDay(time.Monday,
		mustSlot(t, 9, 0, 12, 0),
		mustSlot(t, 10, 0, 15, 0),
	)

	assert.Equal(t, 3*time.Hour, day.Duration(TimeOfDayOf(11, 0), TimeOfDayOf(13, 0)))
	assert.Equal(t, -3*time.Hour, day.Duration(TimeOfDayOf(13, 0), TimeOfDayOf(11, 0)))
}

func TestBusinessDayDuplicateSlotsCollapse(t *testing.T) {
	day := NewBusinessDay(time.Monday,
		mustSlot(t, 9, 0, 12, 0),
		mustSlot(t, 9, 0, 12, 0),
	)

	require.Len(t, day.Slots(), 1)
	assert.Equal(t, 3*time.Hour, day.Duration(StartOfDay, EndOfDay))
}

func TestBusinessDayDuration(t *testing.T) {
	day := NewBusinessDay(time.Monday,
		mustSlot(t, 9, 0, 12, 0),
		mustSlot(t, 13, 0, 17, 0),
	)

	t.Run("spans the gap", func(t *testing.T) {
		assert.Equal(t, 4*time.Hour, day.Duration(TimeOfDayOf(10, 0), TimeOfDayOf(15, 0)))
	})

	t.Run("whole day", func(t *testing.T) {
		assert.Equal(t, 7*time.Hour, day.Duration(StartOfDay, EndOfDay))
	})

	t.Run("zero span", func(t *testing.T) {
		assert.Equal(t, time.Duration(0), day.Duration(TimeOfDayOf(10, 0), TimeOfDayOf(10, 0)))
	})
}

func TestBusinessDaySetSlots(t *testing.T) {
	day := NewBusinessDay(time.Tuesday, mustSlot(t, 9, 0, 17, 0))
	day.SetSlots([]TimeSlot{mustSlot(t, 8, 0, 12, 0)})

	require.Len(t, day.Slots(), 1)
	assert.Equal(t, TimeOfDayOf(8, 0), day.Slots()[0].Start())

	day.SetSlots(nil)
	assert.False(t, day.IsWorkingDay())
}

func TestBusinessDayEqual(t *testing.T) {
	a := NewBusinessDay(time.Monday, mustSlot(t, 9, 0, 12, 0))
	b := NewBusinessDay(time.Monday, mustSlot(t, 9, 0, 12, 0))
	c := NewBusinessDay(time.Tuesday, mustSlot(t, 9, 0, 12, 0))
	d := NewBusinessDay(time.Monday)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
	assert.False(t, a.Equal(nil))
}

func TestBusinessDaySlotsOrdered(t *testing.T) {
	day := NewBusinessDay(time.Monday,
		mustSlot(t, 13, 0, 17, 0),
		mustSlot(t, 9, 0, 12, 0),
	)

	slots := day.Slots()
	require.Len(t, slots, 2)
	assert.Equal(t, TimeOfDayOf(9, 0), slots[0].Start())
	assert.Equal(t, TimeOfDayOf(13, 0), slots[1].Start())
}

func TestBusinessDayString(t *testing.T) {
	day := NewBusinessDay(time.Monday,
		mustSlot(t, 9, 0, 12, 0),
		mustSlot(t, 13, 0, 17, 0),
	)
	assert.Equal(t, "Monday 9:00-12:00,13:00-17:00", day.String())
}
