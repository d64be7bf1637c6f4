package calendar

import (
	"context"
	"testing"
	"time"

	"github.com/Numerinico/businesscalendar/internal/domain/entity"
	errs "github.com/Numerinico/businesscalendar/internal/domain/error"
	coreport "github.com/Numerinico/businesscalendar/internal/domain/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryRepo is an in-memory CalendarRepository for use case tests
type memoryRepo struct {
	calendars map[string]*entity.Calendar
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{calendars: make(map[string]*entity.Calendar)}
}

func (r *memoryRepo) Create(_ context.Context, name string, cal *entity.Calendar) error {
	if _, exists := r.calendars[name]; exists {
		return errs.ErrDuplicateCalendar
	}
	r.calendars[name] = cal
	return nil
}

func (r *memoryRepo) GetByName(_ context.Context, name string) (*entity.Calendar, error) {
	cal, ok := r.calendars[name]
	if !ok {
		return nil, errs.ErrCalendarNotFound
	}
	return cal, nil
}

func (r *memoryRepo) List(_ context.Context) ([]string, error) {
	names := make([]string, 0, len(r.calendars))
	for name := range r.calendars {
		names = append(names, name)
	}
	return names, nil
}

func (r *memoryRepo) Delete(_ context.Context, name string) error {
	if _, ok := r.calendars[name]; !ok {
		return errs.ErrCalendarNotFound
	}
	delete(r.calendars, name)
	return nil
}

func (r *memoryRepo) ReplaceBusinessDay(ctx context.Context, name string, day *entity.BusinessDay) error {
	cal, err := r.GetByName(ctx, name)
	if err != nil {
		return err
	}
	return cal.PutBusinessDay(day)
}

func (r *memoryRepo) DeleteBusinessDay(ctx context.Context, name string, weekday time.Weekday) error {
	cal, err := r.GetByName(ctx, name)
	if err != nil {
		return err
	}
	cal.RemoveBusinessDayOfWeek(weekday)
	return nil
}

func (r *memoryRepo) AddHoliday(ctx context.Context, name string, date entity.Date) (bool, error) {
	cal, err := r.GetByName(ctx, name)
	if err != nil {
		return false, err
	}
	return cal.AddHoliday(date), nil
}

func (r *memoryRepo) RemoveHoliday(ctx context.Context, name string, date entity.Date) (bool, error) {
	cal, err := r.GetByName(ctx, name)
	if err != nil {
		return false, err
	}
	return cal.RemoveHoliday(date), nil
}

// fixedTimeProvider pins Now for deterministic tests
type fixedTimeProvider struct{ now time.Time }

func (p fixedTimeProvider) Now() time.Time                  { return p.now }
func (p fixedTimeProvider) Since(t time.Time) time.Duration { return p.now.Sub(t) }
func (p fixedTimeProvider) WithTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, d)
}

// noopLogger satisfies the Logger port without output
type noopLogger struct{}

func (noopLogger) SetLevel(_ coreport.LogLevel)     {}
func (noopLogger) GetLevel() coreport.LogLevel      { return coreport.LogLevelInfo }
func (noopLogger) Debug(_ string, _ map[string]any) {}
func (noopLogger) Info(_ string, _ map[string]any)  {}
func (noopLogger) Warn(_ string, _ map[string]any)  {}
func (noopLogger) Error(_ string, _ map[string]any) {}
func (noopLogger) Flush() error                     { return nil }

func testUseCase(t *testing.T) (*memoryRepo, *UseCase) {
	t.Helper()
	repo := newMemoryRepo()
	uc := NewUseCase(repo, fixedTimeProvider{now: time.Date(2016, 4, 18, 12, 0, 0, 0, time.UTC)}, noopLogger{})
	return repo, uc.(*UseCase)
}

func weekCalendar(t *testing.T) *entity.Calendar {
	t.Helper()

	slot := func(sh, sm, eh, em int) entity.TimeSlot {
		s, err := entity.NewTimeSlot(entity.TimeOfDayOf(sh, sm), entity.TimeOfDayOf(eh, em))
		require.NoError(t, err)
		return s
	}

	cal, err := entity.NewCalendarOf([]*entity.BusinessDay{
		entity.NewBusinessDay(time.Monday, slot(9, 0, 12, 0), slot(13, 0, 17, 0)),
		entity.NewBusinessDay(time.Tuesday, slot(9, 0, 17, 0)),
	}, []entity.Date{{Year: 2016, Month: time.April, Day: 26}})
	require.NoError(t, err)
	return cal
}

func TestCreateCalendar(t *testing.T) {
	_, uc := testUseCase(t)
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		require.NoError(t, uc.CreateCalendar(ctx, "support", weekCalendar(t)))
		names, err := uc.ListCalendars(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"support"}, names)
	})

	t.Run("duplicate name", func(t *testing.T) {
		err := uc.CreateCalendar(ctx, "support", weekCalendar(t))
		assert.ErrorIs(t, err, errs.ErrDuplicateCalendar)
	})

	t.Run("empty name", func(t *testing.T) {
		err := uc.CreateCalendar(ctx, "  ", weekCalendar(t))
		assert.ErrorIs(t, err, errs.ErrInvalidCalendarName)
	})

	t.Run("nil calendar", func(t *testing.T) {
		err := uc.CreateCalendar(ctx, "other", nil)
		assert.ErrorIs(t, err, errs.ErrNilArgument)
	})
}

func TestGetAndDeleteCalendar(t *testing.T) {
	_, uc := testUseCase(t)
	ctx := context.Background()
	require.NoError(t, uc.CreateCalendar(ctx, "support", weekCalendar(t)))

	cal, err := uc.GetCalendar(ctx, "support")
	require.NoError(t, err)
	assert.Len(t, cal.BusinessDays(), 2)

	_, err = uc.GetCalendar(ctx, "missing")
	assert.ErrorIs(t, err, errs.ErrCalendarNotFound)

	require.NoError(t, uc.DeleteCalendar(ctx, "support"))
	assert.ErrorIs(t, uc.DeleteCalendar(ctx, "support"), errs.ErrCalendarNotFound)
}

func TestPutAndRemoveBusinessDay(t *testing.T) {
	_, uc := testUseCase(t)
	ctx := context.Background()
	require.NoError(t, uc.CreateCalendar(ctx, "support", weekCalendar(t)))

	t.Run("upsert replaces the weekday", func(t *testing.T) {
		slot, err := entity.NewTimeSlot(entity.TimeOfDayOf(8, 0), entity.TimeOfDayOf(16, 0))
		require.NoError(t, err)
		require.NoError(t, uc.PutBusinessDay(ctx, "support", entity.NewBusinessDay(time.Monday, slot)))

		cal, err := uc.GetCalendar(ctx, "support")
		require.NoError(t, err)
		monday, ok := cal.BusinessDay(time.Monday)
		require.True(t, ok)
		assert.Len(t, monday.Slots(), 1)
	})

	t.Run("nil day", func(t *testing.T) {
		assert.ErrorIs(t, uc.PutBusinessDay(ctx, "support", nil), errs.ErrNilArgument)
	})

	t.Run("remove is idempotent", func(t *testing.T) {
		require.NoError(t, uc.RemoveBusinessDay(ctx, "support", time.Monday))
		require.NoError(t, uc.RemoveBusinessDay(ctx, "support", time.Monday))
	})
}

func TestHolidayMutations(t *testing.T) {
	_, uc := testUseCase(t)
	ctx := context.Background()
	require.NoError(t, uc.CreateCalendar(ctx, "support", weekCalendar(t)))
	date := entity.Date{Year: 2016, Month: time.December, Day: 25}

	added, err := uc.AddHoliday(ctx, "support", date)
	require.NoError(t, err)
	assert.True(t, added)

	added, err = uc.AddHoliday(ctx, "support", date)
	require.NoError(t, err)
	assert.False(t, added)

	removed, err := uc.RemoveHoliday(ctx, "support", date)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = uc.RemoveHoliday(ctx, "support", date)
	require.NoError(t, err)
	assert.False(t, removed, "removing an absent holiday is a no-op, not an error")
}

func TestDurationQuery(t *testing.T) {
	_, uc := testUseCase(t)
	ctx := context.Background()
	require.NoError(t, uc.CreateCalendar(ctx, "support", weekCalendar(t)))

	start := time.Date(2016, time.April, 17, 16, 30, 0, 0, time.UTC)
	end := time.Date(2016, time.April, 19, 10, 0, 0, 0, time.UTC)

	result, err := uc.Duration(ctx, "support", start, end)
	require.NoError(t, err)
	assert.Equal(t, 8*time.Hour, result.Duration)
	assert.Equal(t, "support", result.Calendar)

	_, err = uc.Duration(ctx, "missing", start, end)
	assert.ErrorIs(t, err, errs.ErrCalendarNotFound)
}

func TestIsWorkingTimeQuery(t *testing.T) {
	_, uc := testUseCase(t)
	ctx := context.Background()
	require.NoError(t, uc.CreateCalendar(ctx, "support", weekCalendar(t)))

	result, err := uc.IsWorkingTime(ctx, "support", time.Date(2016, time.April, 18, 11, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, result.WorkingTime)

	result, err = uc.IsWorkingTime(ctx, "support", time.Date(2016, time.April, 26, 11, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.False(t, result.WorkingTime, "holiday wins over configured slots")
}
