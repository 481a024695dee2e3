package models

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// GetStaffDayRequest запрос записей мастера за день
type GetStaffDayRequest struct {
	CompanyID        int64
	StaffID          int64
	Date             time.Time
	IncludeCancelled bool
}

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID              int64      `json:"id"`
	CompanyID       int64      `json:"companyId"`
	LocationID      int64      `json:"locationId"`
	StaffID         int64      `json:"staffId"`
	ClientID        *int64     `json:"clientId,omitempty"`
	Date            string     `json:"date"`      // "2025-10-15"
	StartTime       string     `json:"startTime"` // "10:00"
	EndTime         string     `json:"endTime"`   // "10:45"
	StartsAt        time.Time  `json:"startsAt"`
	EndsAt          time.Time  `json:"endsAt"`
	DurationMinutes int        `json:"durationMinutes"`
	ServiceIDs      []int64    `json:"serviceIds,omitempty"`
	Info            *string    `json:"info,omitempty"`
	Cancelled       bool       `json:"cancelled"`
	CancelledAt     *time.Time `json:"cancelledAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// AppointmentListResponse список записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// FromDomainAppointment конвертирует domain модель в DTO.
// Дата и время форматируются в часовом поясе loc.
func FromDomainAppointment(a *domain.Appointment, loc *time.Location) *AppointmentResponse {
	if a == nil {
		return nil
	}
	if loc == nil {
		loc = time.UTC
	}

	startsAt := a.StartsAt.In(loc)
	endsAt := a.EndsAt().In(loc)

	return &AppointmentResponse{
		ID:              a.ID,
		CompanyID:       a.CompanyID,
		LocationID:      a.LocationID,
		StaffID:         a.StaffID,
		ClientID:        a.ClientID,
		Date:            startsAt.Format(domain.DateFormat),
		StartTime:       startsAt.Format(domain.TimeFormat),
		EndTime:         endsAt.Format(domain.TimeFormat),
		StartsAt:        startsAt,
		EndsAt:          endsAt,
		DurationMinutes: a.DurationMinutes,
		ServiceIDs:      a.ServiceIDs,
		Info:            a.Info,
		Cancelled:       a.Cancelled,
		CancelledAt:     a.CancelledAt,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список записей
func FromDomainAppointmentList(list []*domain.Appointment, loc *time.Location) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(list)),
	}
	for _, a := range list {
		if r := FromDomainAppointment(a, loc); r != nil {
			resp.Appointments = append(resp.Appointments, *r)
		}
	}
	return resp
}
