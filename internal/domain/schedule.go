package domain

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// ScheduleDay is a weekly rule. DayNumber uses 0 = Monday ... 6 = Sunday.
type ScheduleDay struct {
	DayNumber int
	TimeFrom  types.TimeString
	TimeTo    types.TimeString
	IsHoliday bool
}

// Schedule is a named weekly timetable assigned to a location or a staff member.
type Schedule struct {
	ID        int64
	CompanyID int64
	Name      string
	Days      []ScheduleDay
}

// DayNumber converts a date into the schedule's weekday numbering (0 = Monday).
func DayNumber(date time.Time) int {
	return (int(date.Weekday()) + 6) % 7
}

// WorkTime resolves the schedule for a date. A missing rule, a holiday rule or a
// malformed rule resolves to the closed midnight window.
func (s *Schedule) WorkTime(date time.Time) TimeWindow {
	if s == nil {
		return ClosedWindow(date)
	}

	day := DayNumber(date)
	for _, rule := range s.Days {
		if rule.DayNumber != day {
			continue
		}
		if rule.IsHoliday || rule.TimeFrom.IsZero() || rule.TimeTo.IsZero() || !rule.TimeFrom.IsBefore(rule.TimeTo) {
			return ClosedWindow(date)
		}
		return TimeWindow{Start: rule.TimeFrom.On(date), End: rule.TimeTo.On(date)}
	}

	return ClosedWindow(date)
}

// HolidayOverride replaces a staff member's weekly schedule for one date.
// Without both times set it is a day off.
type HolidayOverride struct {
	ID        int64
	CompanyID int64
	StaffID   int64
	Date      time.Time
	TimeFrom  *types.TimeString
	TimeTo    *types.TimeString
}

// IsDayOff reports whether the override removes the whole working day.
func (h *HolidayOverride) IsDayOff() bool {
	return h.TimeFrom == nil || h.TimeTo == nil || h.TimeFrom.IsZero() || h.TimeTo.IsZero() ||
		!h.TimeFrom.IsBefore(*h.TimeTo)
}

// Window returns the override's working window on date, or the closed window for a day off.
func (h *HolidayOverride) Window(date time.Time) TimeWindow {
	if h.IsDayOff() {
		return ClosedWindow(date)
	}
	return TimeWindow{Start: h.TimeFrom.On(date), End: h.TimeTo.On(date)}
}
