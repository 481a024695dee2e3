package get_free_intervals

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

func TestBuildGaps(t *testing.T) {
	early := testDay.Add(-time.Hour)

	tests := []struct {
		name     string
		opening  domain.TimeWindow
		booked   []domain.TimeWindow
		duration time.Duration
		now      time.Time
		want     []domain.TimeWindow
	}{
		{
			name:     "closed location",
			opening:  domain.ClosedWindow(testDay),
			duration: 30 * time.Minute,
			now:      early,
			want:     []domain.TimeWindow{},
		},
		{
			name:     "duration longer than opening",
			opening:  win("09:00", "10:00"),
			duration: 2 * time.Hour,
			now:      early,
			want:     []domain.TimeWindow{},
		},
		{
			name:     "booking before opening",
			opening:  win("09:00", "12:00"),
			booked:   []domain.TimeWindow{win("07:00", "08:00")},
			duration: 30 * time.Minute,
			now:      early,
			want:     []domain.TimeWindow{win("09:00", "11:30")},
		},
		{
			name:     "booking past closing",
			opening:  win("09:00", "12:00"),
			booked:   []domain.TimeWindow{win("11:45", "13:00"), win("14:00", "15:00")},
			duration: 30 * time.Minute,
			now:      early,
			want:     []domain.TimeWindow{win("09:00", "11:15")},
		},
		{
			name:     "back to back bookings",
			opening:  win("09:00", "12:00"),
			booked:   []domain.TimeWindow{win("09:00", "10:00"), win("10:00", "11:00")},
			duration: time.Hour,
			now:      early,
			want:     []domain.TimeWindow{win("11:00", "11:00")},
		},
		{
			name:     "now inside a booking",
			opening:  win("09:00", "12:00"),
			booked:   []domain.TimeWindow{win("09:00", "10:00")},
			duration: 30 * time.Minute,
			now:      at("09:40"),
			want:     []domain.TimeWindow{win("10:00", "11:30")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildGaps(tt.opening, tt.booked, tt.duration, tt.now)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildGaps_DoesNotReorderInput(t *testing.T) {
	booked := []domain.TimeWindow{win("15:00", "16:00"), win("10:00", "11:00")}

	buildGaps(win("09:00", "18:00"), booked, time.Hour, testDay)

	assert.Equal(t, win("15:00", "16:00"), booked[0])
}

func TestStaffCandidates(t *testing.T) {
	tests := []struct {
		name    string
		working domain.TimeWindow
		now     time.Time
		want    []domain.TimeWindow
	}{
		{name: "day off", working: domain.ClosedWindow(testDay), now: testDay, want: []domain.TimeWindow{}},
		{name: "future day", working: win("09:00", "18:00"), now: testDay, want: []domain.TimeWindow{win("09:00", "17:00")}},
		{name: "clipped to now", working: win("09:00", "18:00"), now: at("12:05"), want: []domain.TimeWindow{win("12:05", "17:00")}},
		{name: "not enough time left", working: win("09:00", "18:00"), now: at("17:30"), want: []domain.TimeWindow{}},
		{name: "already over", working: win("09:00", "18:00"), now: at("19:00"), want: []domain.TimeWindow{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, staffCandidates(tt.working, time.Hour, tt.now))
		})
	}
}

func TestBookedSlots_SkipsCancelled(t *testing.T) {
	active := booking(1, "10:00", 30)
	cancelled := booking(2, "11:00", 30)
	cancelled.Cancelled = true

	got := bookedSlots([]*domain.Appointment{active, cancelled, nil})

	assert.Equal(t, []domain.TimeWindow{win("10:00", "10:30")}, got)
}
