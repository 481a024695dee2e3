package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// Service справочник услуг компании: длительности и привязка к точкам
type Service struct {
	serviceRepo ServiceRepository
	logger      Logger
}

func NewService(serviceRepo ServiceRepository, logger Logger) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// ResolveDuration суммарная длительность услуг.
// Каждое вхождение ID учитывается отдельно (одна услуга может быть оказана дважды),
// пустой список даёт нулевую длительность.
func (s *Service) ResolveDuration(ctx context.Context, companyID int64, serviceIDs []int64) (time.Duration, error) {
	if len(serviceIDs) == 0 {
		return 0, nil
	}
	if err := validateIDs(serviceIDs); err != nil {
		return 0, err
	}

	byID, err := s.load(ctx, companyID, serviceIDs)
	if err != nil {
		return 0, err
	}

	var total time.Duration
	for _, id := range serviceIDs {
		svc, ok := byID[id]
		if !ok {
			s.logger.Warn("ResolveDuration: service id=%d not found in company=%d", id, companyID)
			return 0, fmt.Errorf("%w: id=%d", ErrServiceNotFound, id)
		}
		total += time.Duration(svc.DurationMinutes) * time.Minute
	}

	return total, nil
}

// EnsureOfferedAt проверяет, что все услуги оказываются на точке
func (s *Service) EnsureOfferedAt(ctx context.Context, companyID, locationID int64, serviceIDs []int64) error {
	offered, err := s.serviceRepo.GetIDsByLocation(ctx, companyID, locationID)
	if err != nil {
		s.logger.Error("EnsureOfferedAt: repository error for location=%d: %v", locationID, err)
		return fmt.Errorf("%w: EnsureOfferedAt - repository error: %v", ErrInternal, err)
	}

	set := make(map[int64]struct{}, len(offered))
	for _, id := range offered {
		set[id] = struct{}{}
	}
	for _, id := range serviceIDs {
		if _, ok := set[id]; !ok {
			s.logger.Warn("EnsureOfferedAt: service id=%d is not offered at location=%d", id, locationID)
			return fmt.Errorf("%w: service id=%d, location id=%d", ErrServiceNotOffered, id, locationID)
		}
	}
	return nil
}

func (s *Service) load(ctx context.Context, companyID int64, ids []int64) (map[int64]domain.Service, error) {
	services, err := s.serviceRepo.GetByIDs(ctx, companyID, ids)
	if err != nil {
		s.logger.Error("ResolveDuration: repository error for company=%d: %v", companyID, err)
		return nil, fmt.Errorf("%w: ResolveDuration - repository error: %v", ErrInternal, err)
	}

	byID := make(map[int64]domain.Service, len(services))
	for _, svc := range services {
		byID[svc.ID] = svc
	}
	return byID, nil
}

// validateIDs не ограничивает длину списка: лимит услуг на запись проверяют сценарии записи
func validateIDs(ids []int64) error {
	for _, id := range ids {
		if id <= 0 {
			return fmt.Errorf("%w: service id must be positive, got %d", ErrInvalidInput, id)
		}
	}
	return nil
}
