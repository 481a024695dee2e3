package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Request модель запроса на получение доступного времени начала записи
type Request struct {
	CompanyID             int64
	LocationID            int64
	StaffID               int64
	Date                  time.Time // любой момент нужного дня
	ServiceIDs            []int64   // услуги будущей записи, повторы допустимы
	ExcludedAppointmentID *int64    // при переносе записи
}

// Response модель ответа со списком доступного времени
type Response struct {
	Date            time.Time
	DurationMinutes int
	StepMinutes     int
	Slots           []types.TimeString // отсортированы, без повторов
}
