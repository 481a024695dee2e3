package book_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SchedulingService/internal/service/catalog"
	"github.com/m04kA/SMC-SchedulingService/internal/usecase/get_free_intervals"
)

// UseCase создание и перенос записи с повторной проверкой времени перед сохранением
type UseCase struct {
	catalog         Catalog
	freeIntervals   FreeIntervalsUseCase
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	location        *time.Location
	logger          Logger
}

// NewUseCase создает новый экземпляр use case.
// location - часовой пояс компании, по нему определяется день записи.
func NewUseCase(
	catalog Catalog,
	freeIntervals FreeIntervalsUseCase,
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		catalog:         catalog,
		freeIntervals:   freeIntervals,
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		location:        location,
		logger:          logger,
	}
}

// Create создаёт запись, если выбранное время всё ещё свободно
func (uc *UseCase) Create(ctx context.Context, req *CreateRequest) (*Response, error) {
	uc.logger.Info("CreateAppointment: company=%d, location=%d, staff=%d, startsAt=%s, services=%v",
		req.CompanyID, req.LocationID, req.StaffID, req.StartsAt.Format(time.RFC3339), req.ServiceIDs)

	if err := validateCreateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Appointment

	// Проверка и вставка в одной сериализуемой транзакции: из двух одновременных
	// записей на одно время закоммитится только первая
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		duration, err := uc.ensureSlotFree(txCtx, req.slot())
		if err != nil {
			return err
		}

		created, err := uc.appointmentRepo.Create(txCtx, &domain.Appointment{
			CompanyID:       req.CompanyID,
			LocationID:      req.LocationID,
			StaffID:         req.StaffID,
			ClientID:        req.ClientID,
			StartsAt:        req.StartsAt,
			DurationMinutes: int(duration / time.Minute),
			ServiceIDs:      req.ServiceIDs,
			Info:            req.Info,
		})
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, uc.wrapTxError("CreateAppointment", err)
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)
	return &Response{Appointment: result}, nil
}

// Reschedule меняет время, мастера, точку или услуги записи.
// Сама запись при проверке времени не учитывается.
func (uc *UseCase) Reschedule(ctx context.Context, req *RescheduleRequest) (*Response, error) {
	uc.logger.Info("RescheduleAppointment: appointment=%d, company=%d, location=%d, staff=%d, startsAt=%s",
		req.AppointmentID, req.CompanyID, req.LocationID, req.StaffID, req.StartsAt.Format(time.RFC3339))

	if err := validateRescheduleRequest(req); err != nil {
		uc.logger.Warn("RescheduleAppointment: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Appointment

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		current, err := uc.appointmentRepo.GetByID(txCtx, req.CompanyID, req.AppointmentID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				uc.logger.Warn("RescheduleAppointment: appointment id=%d not found", req.AppointmentID)
				return ErrAppointmentNotFound
			}
			uc.logger.Error("RescheduleAppointment: failed to get appointment id=%d: %v", req.AppointmentID, err)
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}
		if !current.IsActive() {
			uc.logger.Warn("RescheduleAppointment: appointment id=%d is cancelled", req.AppointmentID)
			return ErrAppointmentCancelled
		}

		duration, err := uc.ensureSlotFree(txCtx, req.slot())
		if err != nil {
			return err
		}

		current.LocationID = req.LocationID
		current.StaffID = req.StaffID
		current.ClientID = req.ClientID
		current.StartsAt = req.StartsAt
		current.DurationMinutes = int(duration / time.Minute)
		current.ServiceIDs = req.ServiceIDs
		current.Info = req.Info

		updated, err := uc.appointmentRepo.Update(txCtx, current)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			uc.logger.Error("RescheduleAppointment: failed to update appointment id=%d: %v", req.AppointmentID, err)
			return fmt.Errorf("%w: failed to update appointment: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})
	if err != nil {
		return nil, uc.wrapTxError("RescheduleAppointment", err)
	}

	uc.logger.Info("RescheduleAppointment: successfully rescheduled appointment id=%d", result.ID)
	return &Response{Appointment: result}, nil
}

// ensureSlotFree пересчитывает свободные интервалы и проверяет, что startsAt
// попадает в один из них (границы включительно). Возвращает длительность записи.
func (uc *UseCase) ensureSlotFree(ctx context.Context, r slotRequest) (time.Duration, error) {
	duration, err := uc.catalog.ResolveDuration(ctx, r.companyID, r.serviceIDs)
	if err != nil {
		return 0, mapCatalogError(err)
	}

	if err := uc.catalog.EnsureOfferedAt(ctx, r.companyID, r.locationID, r.serviceIDs); err != nil {
		return 0, mapCatalogError(err)
	}

	startsAt := r.startsAt.In(uc.location)
	free, err := uc.freeIntervals.Execute(ctx, &get_free_intervals.Request{
		CompanyID:             r.companyID,
		LocationID:            r.locationID,
		StaffID:               r.staffID,
		Date:                  startsAt,
		Duration:              duration,
		ExcludedAppointmentID: r.excludedID,
	})
	if err != nil {
		switch {
		case errors.Is(err, get_free_intervals.ErrLocationNotFound):
			return 0, ErrLocationNotFound
		case errors.Is(err, get_free_intervals.ErrStaffNotFound):
			return 0, ErrStaffNotFound
		case errors.Is(err, get_free_intervals.ErrInvalidInput):
			return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		uc.logger.Error("ensureSlotFree: failed to get free intervals: %v", err)
		return 0, fmt.Errorf("%w: failed to get free intervals: %v", ErrInternal, err)
	}

	for _, iv := range free.Intervals {
		if iv.Contains(startsAt) {
			return duration, nil
		}
	}

	uc.logger.Warn("ensureSlotFree: %s is not available for staff=%d (duration=%s, intervals=%d)",
		startsAt.Format(time.RFC3339), r.staffID, duration, len(free.Intervals))
	return 0, ErrSlotNotAvailable
}

// wrapTxError ошибки бизнес-логики возвращаются как есть, остальное - ErrInternal
func (uc *UseCase) wrapTxError(op string, err error) error {
	for _, known := range []error{
		ErrSlotNotAvailable,
		ErrAppointmentNotFound,
		ErrAppointmentCancelled,
		ErrLocationNotFound,
		ErrStaffNotFound,
		ErrServiceNotFound,
		ErrServiceNotOffered,
		ErrInvalidInput,
		ErrInternal,
	} {
		if errors.Is(err, known) {
			return err
		}
	}
	uc.logger.Error("%s: transaction failed: %v", op, err)
	return fmt.Errorf("%w: %s - transaction failed: %v", ErrInternal, op, err)
}

func mapCatalogError(err error) error {
	switch {
	case errors.Is(err, catalog.ErrServiceNotFound):
		return fmt.Errorf("%w: %v", ErrServiceNotFound, err)
	case errors.Is(err, catalog.ErrServiceNotOffered):
		return fmt.Errorf("%w: %v", ErrServiceNotOffered, err)
	case errors.Is(err, catalog.ErrInvalidInput):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	default:
		return fmt.Errorf("%w: catalog error: %v", ErrInternal, err)
	}
}
