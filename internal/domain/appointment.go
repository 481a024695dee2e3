package domain

import "time"

// Appointment is a booking of one staff member at one location for one or more services.
type Appointment struct {
	ID              int64
	CompanyID       int64
	LocationID      int64
	StaffID         int64
	ClientID        *int64
	StartsAt        time.Time
	DurationMinutes int     // sum of the attached services' durations
	ServiceIDs      []int64 // ordered, duplicates allowed
	Info            *string
	Cancelled       bool

	CancelledAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// EndsAt returns StartsAt + duration.
func (a *Appointment) EndsAt() time.Time {
	return a.StartsAt.Add(time.Duration(a.DurationMinutes) * time.Minute)
}

// BookedSlot returns the occupied window.
func (a *Appointment) BookedSlot() TimeWindow {
	return TimeWindow{Start: a.StartsAt, End: a.EndsAt()}
}

// IsActive returns true unless the appointment has been cancelled.
func (a *Appointment) IsActive() bool {
	return !a.Cancelled
}

// StaffDayFilter selects the appointments of one staff member on one date.
type StaffDayFilter struct {
	CompanyID             int64     // required
	StaffID               int64     // required
	Date                  time.Time // any instant of the day, in the application's time zone
	ExcludedAppointmentID *int64    // skip this appointment (the one being edited)
	IncludeCancelled      bool
}

// Service is a bookable service of a company.
type Service struct {
	ID              int64
	CompanyID       int64
	Name            string
	DurationMinutes int
	Price           float64
	Active          bool
}
