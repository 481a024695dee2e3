package get_available_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	getAvailableSlots "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_available_slots"
)

const (
	msgMissingCompanyID  = "отсутствует ID компании"
	msgInvalidLocationID = "некорректный ID точки"
	msgInvalidStaffID    = "некорректный ID мастера"
	msgInvalidServiceIDs = "serviceIds обязателен: список ID услуг через запятую"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidExcludedID = "некорректный ID исключаемой записи"
	msgInvalidData       = "некорректные параметры запроса"
	msgLocationNotFound  = "точка не найдена"
	msgStaffNotFound     = "мастер не найден"
	msgServiceNotFound   = "услуга не найдена"
)

type Handler struct {
	useCase  GetAvailableSlotsUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/locations/{locationId}/staff/{staffId}/available-slots
// Query params: date (YYYY-MM-DD), serviceIds (1,2,2), excludeAppointmentId (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	companyID, ok := middleware.GetCompanyID(r.Context())
	if !ok {
		h.logger.Warn("GET /available-slots - Missing company ID")
		handlers.RespondUnauthorized(w, msgMissingCompanyID)
		return
	}

	vars := mux.Vars(r)
	locationID, err := handlers.PathID(vars, "locationId")
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid location ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLocationID)
		return
	}

	staffID, err := handlers.PathID(vars, "staffId")
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	query := r.URL.Query()
	serviceIDs, err := handlers.ParseIDList(query.Get("serviceIds"))
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid service IDs: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceIDs)
		return
	}

	date, err := handlers.ParseDate(query.Get("date"), h.location)
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	excluded, err := handlers.QueryID(query.Get("excludeAppointmentId"))
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid excluded appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidExcludedID)
		return
	}

	useCaseReq := ToUseCaseRequest(companyID, locationID, staffID, date, serviceIDs, excluded)
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrLocationNotFound):
			h.logger.Warn("GET /available-slots - Location not found: company_id=%d, location_id=%d", companyID, locationID)
			handlers.RespondNotFound(w, msgLocationNotFound)

		case errors.Is(err, getAvailableSlots.ErrStaffNotFound):
			h.logger.Warn("GET /available-slots - Staff not found: company_id=%d, staff_id=%d", companyID, staffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /available-slots - Service not found: company_id=%d, service_ids=%v", companyID, serviceIDs)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /available-slots - Invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("GET /available-slots - Failed to get slots: company_id=%d, location_id=%d, staff_id=%d, error=%v",
				companyID, locationID, staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /available-slots - Slots retrieved successfully: company_id=%d, location_id=%d, staff_id=%d, slots_count=%d",
		companyID, locationID, staffID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(useCaseReq, result))
}
