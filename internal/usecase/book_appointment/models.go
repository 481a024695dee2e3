package book_appointment

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// CreateRequest запрос на создание записи
type CreateRequest struct {
	CompanyID  int64
	LocationID int64
	StaffID    int64
	ClientID   *int64
	StartsAt   time.Time
	ServiceIDs []int64 // порядок сохраняется, повторы допустимы
	Info       *string
}

// RescheduleRequest запрос на изменение записи (время, мастер, точка, услуги)
type RescheduleRequest struct {
	CompanyID     int64
	AppointmentID int64
	LocationID    int64
	StaffID       int64
	ClientID      *int64
	StartsAt      time.Time
	ServiceIDs    []int64
	Info          *string
}

// Response сохранённая запись
type Response struct {
	Appointment *domain.Appointment
}

// slotRequest общая часть create/reschedule для проверки времени
type slotRequest struct {
	companyID  int64
	locationID int64
	staffID    int64
	startsAt   time.Time
	serviceIDs []int64
	excludedID *int64
}
