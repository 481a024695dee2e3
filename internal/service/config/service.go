package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	configRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/config"
	"github.com/m04kA/SMC-SchedulingService/internal/service/config/models"
)

// Service сервис настроек расписания компании
type Service struct {
	configRepo ConfigRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса конфигурации
func NewService(configRepo ConfigRepository, logger Logger) *Service {
	return &Service{
		configRepo: configRepo,
		logger:     logger,
	}
}

// Get возвращает настройки компании.
// Если компания ещё не сохраняла настройки, возвращаются значения по умолчанию.
func (s *Service) Get(ctx context.Context, companyID int64) (*models.ConfigResponse, error) {
	cfg, isDefault, err := s.load(ctx, companyID)
	if err != nil {
		s.logger.Error("Get: repository error for company=%d: %v", companyID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainConfig(cfg, isDefault), nil
}

// Update частично обновляет настройки (создаёт запись при первом сохранении)
func (s *Service) Update(ctx context.Context, companyID int64, req *models.UpdateConfigRequest) (*models.ConfigResponse, error) {
	s.logger.Info("Update: updating config for company=%d", companyID)

	if req == nil || req.IsEmpty() {
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	cfg, _, err := s.load(ctx, companyID)
	if err != nil {
		s.logger.Error("Update: repository error for company=%d: %v", companyID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	req.ApplyToConfig(cfg)
	if err := validateConfig(cfg); err != nil {
		s.logger.Warn("Update: validation failed for company=%d: %v", companyID, err)
		return nil, err
	}

	saved, err := s.configRepo.Upsert(ctx, cfg)
	if err != nil {
		s.logger.Error("Update: upsert failed for company=%d: %v", companyID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: config for company=%d saved (granularity=%d, simpleMode=%t)",
		companyID, saved.MinTimeIntervalMinutes, saved.SimpleMode)
	return models.FromDomainConfig(saved, false), nil
}

func (s *Service) load(ctx context.Context, companyID int64) (*domain.CompanyConfig, bool, error) {
	cfg, err := s.configRepo.Get(ctx, companyID)
	if errors.Is(err, configRepo.ErrConfigNotFound) {
		return domain.DefaultCompanyConfig(companyID), true, nil
	}
	if err != nil {
		return nil, false, err
	}
	return cfg, false, nil
}

func validateConfig(c *domain.CompanyConfig) error {
	if c.MinTimeIntervalMinutes < domain.MinTimeIntervalMinutes || c.MinTimeIntervalMinutes > domain.MaxTimeIntervalMinutes {
		return fmt.Errorf("%w: minTimeIntervalMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinTimeIntervalMinutes, domain.MaxTimeIntervalMinutes)
	}
	if c.DefaultTimeFrom.IsZero() || c.DefaultTimeTo.IsZero() {
		return fmt.Errorf("%w: defaultTimeFrom and defaultTimeTo are required", ErrInvalidInput)
	}
	if !c.DefaultTimeFrom.IsBefore(c.DefaultTimeTo) {
		return fmt.Errorf("%w: defaultTimeFrom must be before defaultTimeTo", ErrInvalidInput)
	}
	return nil
}
