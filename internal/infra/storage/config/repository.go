package config

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/psqlbuilder"
)

// Repository репозиторий настроек компании
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает настройки компании. Если их нет, возвращает ErrConfigNotFound.
func (r *Repository) Get(ctx context.Context, companyID int64) (*domain.CompanyConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"company_id",
		"min_time_interval_minutes",
		"default_time_from",
		"default_time_to",
		"simple_mode",
		"created_at",
		"updated_at",
	).
		From("company_config").
		Where(squirrel.Eq{"company_id": companyID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var cfg domain.CompanyConfig
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cfg.CompanyID,
		&cfg.MinTimeIntervalMinutes,
		&cfg.DefaultTimeFrom,
		&cfg.DefaultTimeTo,
		&cfg.SimpleMode,
		&cfg.CreatedAt,
		&cfg.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan config: %v", ErrScanRow, err)
	}

	return &cfg, nil
}

// Upsert создает или полностью перезаписывает настройки компании
func (r *Repository) Upsert(ctx context.Context, cfg *domain.CompanyConfig) (*domain.CompanyConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("company_config").
		Columns(
			"company_id",
			"min_time_interval_minutes",
			"default_time_from",
			"default_time_to",
			"simple_mode",
		).
		Values(
			cfg.CompanyID,
			cfg.MinTimeIntervalMinutes,
			cfg.DefaultTimeFrom,
			cfg.DefaultTimeTo,
			cfg.SimpleMode,
		).
		Suffix(`ON CONFLICT (company_id) DO UPDATE SET
			min_time_interval_minutes = EXCLUDED.min_time_interval_minutes,
			default_time_from = EXCLUDED.default_time_from,
			default_time_to = EXCLUDED.default_time_to,
			simple_mode = EXCLUDED.simple_mode,
			updated_at = NOW()
		RETURNING created_at, updated_at`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&cfg.CreatedAt, &cfg.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	return cfg, nil
}
