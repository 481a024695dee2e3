package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date            string   `json:"date"`
	LocationID      int64    `json:"locationId"`
	StaffID         int64    `json:"staffId"`
	ServiceIDs      []int64  `json:"serviceIds"`
	DurationMinutes int      `json:"durationMinutes"`
	StepMinutes     int      `json:"stepMinutes"`
	Slots           []string `json:"slots"` // "09:00", "09:15", ...
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(req *getAvailableSlots.Request, resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = slot.String()
	}

	return &AvailableSlotsResponse{
		Date:            req.Date.Format(domain.DateFormat),
		LocationID:      req.LocationID,
		StaffID:         req.StaffID,
		ServiceIDs:      req.ServiceIDs,
		DurationMinutes: resp.DurationMinutes,
		StepMinutes:     resp.StepMinutes,
		Slots:           slots,
	}
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(companyID, locationID, staffID int64, date time.Time, serviceIDs []int64, excluded *int64) *getAvailableSlots.Request {
	return &getAvailableSlots.Request{
		CompanyID:             companyID,
		LocationID:            locationID,
		StaffID:               staffID,
		Date:                  date,
		ServiceIDs:            serviceIDs,
		ExcludedAppointmentID: excluded,
	}
}
