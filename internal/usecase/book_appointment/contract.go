package book_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/usecase/get_free_intervals"
)

// Catalog длительность услуг и их привязка к точкам
type Catalog interface {
	ResolveDuration(ctx context.Context, companyID int64, serviceIDs []int64) (time.Duration, error)
	EnsureOfferedAt(ctx context.Context, companyID, locationID int64, serviceIDs []int64) error
}

// FreeIntervalsUseCase расчёт свободных интервалов
type FreeIntervalsUseCase interface {
	Execute(ctx context.Context, req *get_free_intervals.Request) (*get_free_intervals.Response, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error)
	Update(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error)
	GetByID(ctx context.Context, companyID, id int64) (*domain.Appointment, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
