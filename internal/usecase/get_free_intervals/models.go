package get_free_intervals

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// Request запрос свободных интервалов мастера на точке
type Request struct {
	CompanyID             int64
	LocationID            int64
	StaffID               int64
	Date                  time.Time     // любой момент нужного дня в часовом поясе компании
	Duration              time.Duration // длительность будущей записи
	ExcludedAppointmentID *int64        // редактируемая запись не занимает время
}

// Response свободные интервалы.
// Каждый интервал - диапазон допустимых моментов НАЧАЛА записи длительностью Duration,
// а не просто свободное время.
type Response struct {
	Date       time.Time
	Duration   time.Duration
	SimpleMode bool
	Intervals  []domain.TimeWindow
}

func emptyResponse(req *Request) *Response {
	return &Response{
		Date:      req.Date,
		Duration:  req.Duration,
		Intervals: make([]domain.TimeWindow, 0),
	}
}
