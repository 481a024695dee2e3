package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	configRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/config"
	"github.com/m04kA/SMC-SchedulingService/internal/service/catalog"
	"github.com/m04kA/SMC-SchedulingService/internal/usecase/get_free_intervals"
)

// UseCase список времени, на которое можно записаться (шаг - настройка компании)
type UseCase struct {
	durationResolver DurationResolver
	freeIntervals    FreeIntervalsUseCase
	configRepo       ConfigRepository
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	durationResolver DurationResolver,
	freeIntervals FreeIntervalsUseCase,
	configRepo ConfigRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		durationResolver: durationResolver,
		freeIntervals:    freeIntervals,
		configRepo:       configRepo,
		logger:           logger,
	}
}

// Execute выполняет use case получения доступного времени
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: company=%d, location=%d, staff=%d, date=%s, services=%v",
		req.CompanyID, req.LocationID, req.StaffID, req.Date.Format(domain.DateFormat), req.ServiceIDs)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Длительность записи по услугам
	duration, err := uc.durationResolver.ResolveDuration(ctx, req.CompanyID, req.ServiceIDs)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrServiceNotFound):
			return nil, fmt.Errorf("%w: %v", ErrServiceNotFound, err)
		case errors.Is(err, catalog.ErrInvalidInput):
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		uc.logger.Error("GetAvailableSlots: failed to resolve duration: %v", err)
		return nil, fmt.Errorf("%w: failed to resolve duration: %v", ErrInternal, err)
	}

	// 3. Шаг сетки
	cfg, err := uc.configRepo.Get(ctx, req.CompanyID)
	if err != nil {
		if !errors.Is(err, configRepo.ErrConfigNotFound) {
			uc.logger.Error("GetAvailableSlots: failed to get config for company=%d: %v", req.CompanyID, err)
			return nil, fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
		}
		cfg = domain.DefaultCompanyConfig(req.CompanyID)
	}
	step := cfg.Granularity()

	// 4. Свободные интервалы
	free, err := uc.freeIntervals.Execute(ctx, &get_free_intervals.Request{
		CompanyID:             req.CompanyID,
		LocationID:            req.LocationID,
		StaffID:               req.StaffID,
		Date:                  req.Date,
		Duration:              duration,
		ExcludedAppointmentID: req.ExcludedAppointmentID,
	})
	if err != nil {
		switch {
		case errors.Is(err, get_free_intervals.ErrLocationNotFound):
			return nil, ErrLocationNotFound
		case errors.Is(err, get_free_intervals.ErrStaffNotFound):
			return nil, ErrStaffNotFound
		case errors.Is(err, get_free_intervals.ErrInvalidInput):
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		uc.logger.Error("GetAvailableSlots: failed to get free intervals: %v", err)
		return nil, fmt.Errorf("%w: failed to get free intervals: %v", ErrInternal, err)
	}

	// 5. Раскладываем интервалы в сетку
	slots := discretize(free.Intervals, step)

	uc.logger.Info("GetAvailableSlots: found %d slots for staff=%d (intervals=%d, step=%s)",
		len(slots), req.StaffID, len(free.Intervals), step)

	return &Response{
		Date:            domain.StartOfDay(req.Date),
		DurationMinutes: int(duration.Minutes()),
		StepMinutes:     int(step.Minutes()),
		Slots:           slots,
	}, nil
}
