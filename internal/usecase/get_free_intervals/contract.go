package get_free_intervals

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// ConfigRepository настройки компании (simple mode)
type ConfigRepository interface {
	Get(ctx context.Context, companyID int64) (*domain.CompanyConfig, error)
}

// ScheduleRepository недельные расписания точек и мастеров
type ScheduleRepository interface {
	GetLocationSchedule(ctx context.Context, companyID, locationID int64) (*domain.Schedule, error)
	GetStaffSchedule(ctx context.Context, companyID, staffID int64) (*domain.Schedule, error)
}

// HolidayRepository исключения из расписания мастера на конкретную дату
type HolidayRepository interface {
	GetByStaffAndDate(ctx context.Context, companyID, staffID int64, date time.Time) (*domain.HolidayOverride, error)
}

// AppointmentRepository неотменённые записи мастера за день
type AppointmentRepository interface {
	GetActiveByStaffAndDate(ctx context.Context, companyID, staffID int64, date time.Time, excludedID *int64) ([]*domain.Appointment, error)
}

// Metrics счётчики выдачи свободных интервалов
type Metrics interface {
	ObserveFreeIntervals(simpleMode bool, count int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
