package create_appointment

import (
	"time"

	bookAppointment "github.com/m04kA/SMC-SchedulingService/internal/usecase/book_appointment"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	LocationID int64     `json:"locationId"`
	StaffID    int64     `json:"staffId"`
	ClientID   *int64    `json:"clientId,omitempty"`
	StartsAt   time.Time `json:"startsAt"` // RFC3339
	ServiceIDs []int64   `json:"serviceIds"`
	Info       *string   `json:"info,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP request в запрос use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(companyID int64) *bookAppointment.CreateRequest {
	return &bookAppointment.CreateRequest{
		CompanyID:  companyID,
		LocationID: r.LocationID,
		StaffID:    r.StaffID,
		ClientID:   r.ClientID,
		StartsAt:   r.StartsAt,
		ServiceIDs: r.ServiceIDs,
		Info:       r.Info,
	}
}
