package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SchedulingService/internal/service/appointments/models"
)

// Service сервис чтения и отмены записей
type Service struct {
	appointmentRepo AppointmentRepository
	location        *time.Location
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей.
// location - часовой пояс, в котором форматируются дата и время в ответах.
func NewService(appointmentRepo AppointmentRepository, location *time.Location, logger Logger) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		appointmentRepo: appointmentRepo,
		location:        location,
		logger:          logger,
	}
}

// GetByID получает запись компании по ID
func (s *Service) GetByID(ctx context.Context, companyID, id int64) (*models.AppointmentResponse, error) {
	a, err := s.appointmentRepo.GetByID(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found in company=%d", id, companyID)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(a, s.location), nil
}

// GetByStaffAndDate записи мастера за день, отсортированные по времени начала
func (s *Service) GetByStaffAndDate(ctx context.Context, req *models.GetStaffDayRequest) (*models.AppointmentListResponse, error) {
	if req.StaffID <= 0 || req.Date.IsZero() {
		return nil, fmt.Errorf("%w: staffId and date are required", ErrInvalidInput)
	}

	list, err := s.appointmentRepo.GetByStaffAndDate(ctx, domain.StaffDayFilter{
		CompanyID:        req.CompanyID,
		StaffID:          req.StaffID,
		Date:             req.Date.In(s.location),
		IncludeCancelled: req.IncludeCancelled,
	})
	if err != nil {
		s.logger.Error("GetByStaffAndDate: repository error for staff=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: GetByStaffAndDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByStaffAndDate: fetched %d appointments for staff=%d on %s",
		len(list), req.StaffID, req.Date.Format(domain.DateFormat))
	return models.FromDomainAppointmentList(list, s.location), nil
}

// Cancel отменяет запись. Отменённая запись перестаёт занимать время мастера.
func (s *Service) Cancel(ctx context.Context, companyID, id int64) error {
	s.logger.Info("Cancel: cancelling appointment id=%d in company=%d", id, companyID)

	a, err := s.appointmentRepo.GetByID(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}
	if !a.IsActive() {
		s.logger.Warn("Cancel: appointment id=%d already cancelled", id)
		return ErrAlreadyCancelled
	}

	if err := s.appointmentRepo.Cancel(ctx, companyID, id); err != nil {
		// запись отменили между чтением и обновлением
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d cancelled concurrently", id)
			return ErrAlreadyCancelled
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%d", id)
	return nil
}
