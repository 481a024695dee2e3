package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/usecase/get_free_intervals"
)

// DurationResolver суммарная длительность выбранных услуг
type DurationResolver interface {
	ResolveDuration(ctx context.Context, companyID int64, serviceIDs []int64) (time.Duration, error)
}

// FreeIntervalsUseCase расчёт свободных интервалов
type FreeIntervalsUseCase interface {
	Execute(ctx context.Context, req *get_free_intervals.Request) (*get_free_intervals.Response, error)
}

// ConfigRepository настройки компании (шаг сетки)
type ConfigRepository interface {
	Get(ctx context.Context, companyID int64) (*domain.CompanyConfig, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
