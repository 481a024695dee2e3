package reschedule_appointment

import (
	"time"

	bookAppointment "github.com/m04kA/SMC-SchedulingService/internal/usecase/book_appointment"
)

// RescheduleAppointmentRequest HTTP request model. Запись заменяется целиком.
type RescheduleAppointmentRequest struct {
	LocationID int64     `json:"locationId"`
	StaffID    int64     `json:"staffId"`
	ClientID   *int64    `json:"clientId,omitempty"`
	StartsAt   time.Time `json:"startsAt"`
	ServiceIDs []int64   `json:"serviceIds"`
	Info       *string   `json:"info,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP request в запрос use case
func (r *RescheduleAppointmentRequest) ToUseCaseRequest(companyID, appointmentID int64) *bookAppointment.RescheduleRequest {
	return &bookAppointment.RescheduleRequest{
		CompanyID:     companyID,
		AppointmentID: appointmentID,
		LocationID:    r.LocationID,
		StaffID:       r.StaffID,
		ClientID:      r.ClientID,
		StartsAt:      r.StartsAt,
		ServiceIDs:    r.ServiceIDs,
		Info:          r.Info,
	}
}
