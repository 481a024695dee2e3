package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

func TestDayNumber(t *testing.T) {
	monday := time.Date(2025, 6, 9, 12, 0, 0, 0, time.UTC)
	sunday := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, DayNumber(monday))
	assert.Equal(t, 1, DayNumber(testDay))
	assert.Equal(t, 6, DayNumber(sunday))
}

func TestSchedule_WorkTime(t *testing.T) {
	schedule := &Schedule{
		ID: 1,
		Days: []ScheduleDay{
			{DayNumber: 0, TimeFrom: types.MustTimeString("10:00"), TimeTo: types.MustTimeString("19:00")},
			{DayNumber: 1, TimeFrom: types.MustTimeString("09:00"), TimeTo: types.MustTimeString("18:00")},
			{DayNumber: 2, TimeFrom: types.MustTimeString("09:00"), TimeTo: types.MustTimeString("18:00"), IsHoliday: true},
			{DayNumber: 3, TimeFrom: types.MustTimeString("18:00"), TimeTo: types.MustTimeString("09:00")},
		},
	}

	tests := []struct {
		name string
		date time.Time
		want TimeWindow
	}{
		{name: "matching rule", date: testDay, want: win("09:00", "18:00")},
		{name: "holiday rule", date: testDay.AddDate(0, 0, 1), want: ClosedWindow(testDay.AddDate(0, 0, 1))},
		{name: "inverted rule", date: testDay.AddDate(0, 0, 2), want: ClosedWindow(testDay.AddDate(0, 0, 2))},
		{name: "no rule", date: testDay.AddDate(0, 0, 4), want: ClosedWindow(testDay.AddDate(0, 0, 4))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := schedule.WorkTime(tt.date)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSchedule_WorkTime_Nil(t *testing.T) {
	var s *Schedule
	assert.True(t, s.WorkTime(testDay).IsEmpty())
}

func TestHolidayOverride_Window(t *testing.T) {
	dayOff := &HolidayOverride{StaffID: 7, Date: testDay}
	assert.True(t, dayOff.IsDayOff())
	assert.Equal(t, ClosedWindow(testDay), dayOff.Window(testDay))

	shortDay := &HolidayOverride{
		StaffID:  7,
		Date:     testDay,
		TimeFrom: ptr.Ptr(types.MustTimeString("12:00")),
		TimeTo:   ptr.Ptr(types.MustTimeString("15:00")),
	}
	assert.False(t, shortDay.IsDayOff())
	assert.Equal(t, win("12:00", "15:00"), shortDay.Window(testDay))

	halfSet := &HolidayOverride{StaffID: 7, Date: testDay, TimeFrom: ptr.Ptr(types.MustTimeString("12:00"))}
	assert.True(t, halfSet.IsDayOff())
}

func TestAppointment_BookedSlot(t *testing.T) {
	a := &Appointment{StartsAt: at("12:00"), DurationMinutes: 75}

	assert.Equal(t, at("13:15"), a.EndsAt())
	assert.Equal(t, win("12:00", "13:15"), a.BookedSlot())
	assert.True(t, a.IsActive())
}

func TestDefaultCompanyConfig(t *testing.T) {
	cfg := DefaultCompanyConfig(3)

	assert.Equal(t, int64(3), cfg.CompanyID)
	assert.Equal(t, 15*time.Minute, cfg.Granularity())
	assert.False(t, cfg.IsSimpleMode())
	assert.Equal(t, "09:00", cfg.DefaultTimeFrom.String())

	var missing *CompanyConfig
	assert.Equal(t, 15*time.Minute, missing.Granularity())
	assert.False(t, missing.IsSimpleMode())
}
