package domain

// Default configuration values
const (
	DefaultMinTimeIntervalMinutes = 15
	DefaultTimeFrom               = "09:00"
	DefaultTimeTo                 = "18:00"
	DefaultSimpleMode             = false
)

// Business validation constants
const (
	MinTimeIntervalMinutes    = 1
	MaxTimeIntervalMinutes    = 240
	MaxServicesPerAppointment = 20
	MaxInfoLength             = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
