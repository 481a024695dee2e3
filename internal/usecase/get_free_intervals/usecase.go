package get_free_intervals

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	configRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/config"
	holidayRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/holiday"
	scheduleRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/schedule"
)

// UseCase расчёт свободных интервалов для записи к мастеру на точке
type UseCase struct {
	configRepo      ConfigRepository
	scheduleRepo    ScheduleRepository
	holidayRepo     HolidayRepository
	appointmentRepo AppointmentRepository
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case. metrics может быть nil.
func NewUseCase(
	configRepo ConfigRepository,
	scheduleRepo ScheduleRepository,
	holidayRepo HolidayRepository,
	appointmentRepo AppointmentRepository,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		configRepo:      configRepo,
		scheduleRepo:    scheduleRepo,
		holidayRepo:     holidayRepo,
		appointmentRepo: appointmentRepo,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute возвращает отсортированные интервалы допустимого начала записи.
//
// Пустой результат - нормальный ответ ("нет свободного времени"), а не ошибка.
// Если не задана точка, мастер, дата или длительность, результат пустой
// и хранилище не опрашивается.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if isUnconstrained(req) {
		if req == nil {
			return &Response{Intervals: make([]domain.TimeWindow, 0)}, nil
		}
		return emptyResponse(req), nil
	}
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetFreeIntervals: validation failed: %v", err)
		return nil, err
	}

	date := domain.StartOfDay(req.Date)
	now := uc.timeProvider.Now().In(date.Location())

	uc.logger.Info("GetFreeIntervals: company=%d, location=%d, staff=%d, date=%s, duration=%s",
		req.CompanyID, req.LocationID, req.StaffID, date.Format(domain.DateFormat), req.Duration)

	// 1. Настройки компании
	cfg, err := uc.configRepo.Get(ctx, req.CompanyID)
	if err != nil {
		if !errors.Is(err, configRepo.ErrConfigNotFound) {
			return nil, uc.internal("get company config", err)
		}
		cfg = domain.DefaultCompanyConfig(req.CompanyID)
	}
	simpleMode := cfg.IsSimpleMode()

	resp := emptyResponse(req)
	resp.Date = date
	resp.SimpleMode = simpleMode

	// 2. Окно работы точки
	locationSchedule, err := uc.scheduleRepo.GetLocationSchedule(ctx, req.CompanyID, req.LocationID)
	switch {
	case errors.Is(err, scheduleRepo.ErrLocationNotFound):
		uc.logger.Warn("GetFreeIntervals: location id=%d not found in company=%d", req.LocationID, req.CompanyID)
		return nil, ErrLocationNotFound
	case errors.Is(err, scheduleRepo.ErrScheduleNotFound):
		// без расписания точка считается закрытой
		locationSchedule = nil
	case err != nil:
		return nil, uc.internal("get location schedule", err)
	}
	opening := locationSchedule.WorkTime(date)

	// 3. Расписание мастера (и проверка, что мастер существует)
	staffSchedule, err := uc.scheduleRepo.GetStaffSchedule(ctx, req.CompanyID, req.StaffID)
	switch {
	case errors.Is(err, scheduleRepo.ErrStaffNotFound):
		uc.logger.Warn("GetFreeIntervals: staff id=%d not found in company=%d", req.StaffID, req.CompanyID)
		return nil, ErrStaffNotFound
	case errors.Is(err, scheduleRepo.ErrScheduleNotFound):
		staffSchedule = nil
	case err != nil:
		return nil, uc.internal("get staff schedule", err)
	}

	if opening.IsEmpty() {
		uc.logger.Info("GetFreeIntervals: location id=%d is closed on %s", req.LocationID, date.Format(domain.DateFormat))
		uc.observe(resp)
		return resp, nil
	}

	// 4. Рабочее окно мастера с учётом исключений на дату
	var candidates []domain.TimeWindow
	if !simpleMode {
		working, err := uc.staffWorkingWindow(ctx, req, staffSchedule, date)
		if err != nil {
			return nil, err
		}
		candidates = staffCandidates(working, req.Duration, now)
		if len(candidates) == 0 {
			uc.logger.Info("GetFreeIntervals: staff id=%d is not available on %s", req.StaffID, date.Format(domain.DateFormat))
			uc.observe(resp)
			return resp, nil
		}
	}

	// 5. Занятые слоты мастера
	appointments, err := uc.appointmentRepo.GetActiveByStaffAndDate(ctx, req.CompanyID, req.StaffID, date, req.ExcludedAppointmentID)
	if err != nil {
		return nil, uc.internal("get appointments", err)
	}

	// 6. Свободные промежутки точки, затем пересечение с окном мастера
	gaps := buildGaps(opening, bookedSlots(appointments), req.Duration, now)
	if simpleMode {
		resp.Intervals = gaps
	} else {
		resp.Intervals = domain.Intersect(gaps, candidates)
	}
	domain.SortWindows(resp.Intervals)

	uc.logger.Info("GetFreeIntervals: found %d intervals for staff=%d (bookings=%d, simpleMode=%t)",
		len(resp.Intervals), req.StaffID, len(appointments), simpleMode)
	uc.observe(resp)
	return resp, nil
}

// staffWorkingWindow исключение на дату полностью заменяет недельное расписание
func (uc *UseCase) staffWorkingWindow(ctx context.Context, req *Request, schedule *domain.Schedule, date time.Time) (domain.TimeWindow, error) {
	holiday, err := uc.holidayRepo.GetByStaffAndDate(ctx, req.CompanyID, req.StaffID, date)
	if err == nil {
		return holiday.Window(date), nil
	}
	if !errors.Is(err, holidayRepo.ErrHolidayNotFound) {
		return domain.TimeWindow{}, uc.internal("get staff holiday", err)
	}
	return schedule.WorkTime(date), nil
}

func (uc *UseCase) internal(step string, err error) error {
	uc.logger.Error("GetFreeIntervals: failed to %s: %v", step, err)
	return fmt.Errorf("%w: Execute - %s: %w", ErrInternal, step, err)
}

func (uc *UseCase) observe(resp *Response) {
	if uc.metrics != nil {
		uc.metrics.ObserveFreeIntervals(resp.SimpleMode, len(resp.Intervals))
	}
}
