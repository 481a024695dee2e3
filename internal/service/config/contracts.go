package config

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// ConfigRepository интерфейс репозитория настроек компании
type ConfigRepository interface {
	Get(ctx context.Context, companyID int64) (*domain.CompanyConfig, error)
	Upsert(ctx context.Context, cfg *domain.CompanyConfig) (*domain.CompanyConfig, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
