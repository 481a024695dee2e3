package get_free_intervals

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	getFreeIntervals "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_free_intervals"
)

const (
	msgMissingCompanyID  = "отсутствует ID компании"
	msgInvalidLocationID = "некорректный ID точки"
	msgInvalidStaffID    = "некорректный ID мастера"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDuration   = "длительность должна быть целым неотрицательным числом минут"
	msgInvalidExcludedID = "некорректный ID исключаемой записи"
	msgInvalidData       = "некорректные параметры запроса"
	msgLocationNotFound  = "точка не найдена"
	msgStaffNotFound     = "мастер не найден"
)

const maxDurationMinutes = 24 * 60

type Handler struct {
	useCase  GetFreeIntervalsUseCase
	location *time.Location
	logger   Logger
}

// NewHandler location - часовой пояс, в котором разбирается параметр date
func NewHandler(useCase GetFreeIntervalsUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/locations/{locationId}/staff/{staffId}/free-intervals
// Query params: date (YYYY-MM-DD), duration (минуты), excludeAppointmentId (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	companyID, ok := middleware.GetCompanyID(r.Context())
	if !ok {
		h.logger.Warn("GET /free-intervals - Missing company ID")
		handlers.RespondUnauthorized(w, msgMissingCompanyID)
		return
	}

	vars := mux.Vars(r)
	locationID, err := handlers.PathID(vars, "locationId")
	if err != nil {
		h.logger.Warn("GET /free-intervals - Invalid location ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLocationID)
		return
	}

	staffID, err := handlers.PathID(vars, "staffId")
	if err != nil {
		h.logger.Warn("GET /free-intervals - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	query := r.URL.Query()
	date, err := handlers.ParseDate(query.Get("date"), h.location)
	if err != nil {
		h.logger.Warn("GET /free-intervals - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	durationMinutes, err := strconv.Atoi(query.Get("duration"))
	if err != nil || durationMinutes < 0 || durationMinutes > maxDurationMinutes {
		h.logger.Warn("GET /free-intervals - Invalid duration: %q", query.Get("duration"))
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	excluded, err := handlers.QueryID(query.Get("excludeAppointmentId"))
	if err != nil {
		h.logger.Warn("GET /free-intervals - Invalid excluded appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidExcludedID)
		return
	}

	useCaseReq := ToUseCaseRequest(companyID, locationID, staffID, date, durationMinutes, excluded)
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getFreeIntervals.ErrLocationNotFound):
			h.logger.Warn("GET /free-intervals - Location not found: company_id=%d, location_id=%d", companyID, locationID)
			handlers.RespondNotFound(w, msgLocationNotFound)

		case errors.Is(err, getFreeIntervals.ErrStaffNotFound):
			h.logger.Warn("GET /free-intervals - Staff not found: company_id=%d, staff_id=%d", companyID, staffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, getFreeIntervals.ErrInvalidInput):
			h.logger.Warn("GET /free-intervals - Invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("GET /free-intervals - Failed to get free intervals: company_id=%d, location_id=%d, staff_id=%d, error=%v",
				companyID, locationID, staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /free-intervals - Intervals retrieved successfully: company_id=%d, location_id=%d, staff_id=%d, intervals_count=%d",
		companyID, locationID, staffID, len(result.Intervals))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(useCaseReq, result))
}
