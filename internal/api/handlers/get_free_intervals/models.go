package get_free_intervals

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	getFreeIntervals "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_free_intervals"
)

// FreeIntervalsResponse HTTP response model
type FreeIntervalsResponse struct {
	Date            string         `json:"date"`
	LocationID      int64          `json:"locationId"`
	StaffID         int64          `json:"staffId"`
	DurationMinutes int            `json:"durationMinutes"`
	SimpleMode      bool           `json:"simpleMode"`
	Intervals       []FreeInterval `json:"intervals"`
}

// FreeInterval диапазон допустимого времени начала записи, обе границы включительно
type FreeInterval struct {
	From     string    `json:"from"` // "09:00"
	To       string    `json:"to"`   // "11:15"
	StartsAt time.Time `json:"startsAt"`
	EndsAt   time.Time `json:"endsAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(req *getFreeIntervals.Request, resp *getFreeIntervals.Response) *FreeIntervalsResponse {
	intervals := make([]FreeInterval, len(resp.Intervals))
	for i, iv := range resp.Intervals {
		intervals[i] = FreeInterval{
			From:     iv.Start.Format(domain.TimeFormat),
			To:       iv.End.Format(domain.TimeFormat),
			StartsAt: iv.Start,
			EndsAt:   iv.End,
		}
	}

	return &FreeIntervalsResponse{
		Date:            req.Date.Format(domain.DateFormat),
		LocationID:      req.LocationID,
		StaffID:         req.StaffID,
		DurationMinutes: int(resp.Duration / time.Minute),
		SimpleMode:      resp.SimpleMode,
		Intervals:       intervals,
	}
}

// ToUseCaseRequest создает запрос use case
func ToUseCaseRequest(companyID, locationID, staffID int64, date time.Time, durationMinutes int, excluded *int64) *getFreeIntervals.Request {
	return &getFreeIntervals.Request{
		CompanyID:             companyID,
		LocationID:            locationID,
		StaffID:               staffID,
		Date:                  date,
		Duration:              time.Duration(durationMinutes) * time.Minute,
		ExcludedAppointmentID: excluded,
	}
}
