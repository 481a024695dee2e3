package create_appointment

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingService/internal/service/appointments/models"
	bookAppointment "github.com/m04kA/SMC-SchedulingService/internal/usecase/book_appointment"
)

const (
	msgMissingCompanyID   = "отсутствует ID компании"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные записи"
	msgSlotNotAvailable   = "выбранное время уже занято"
	msgLocationNotFound   = "точка не найдена"
	msgStaffNotFound      = "мастер не найден"
	msgServiceNotFound    = "услуга не найдена"
	msgServiceNotOffered  = "услуга недоступна на выбранной точке"
)

type Handler struct {
	useCase  CreateAppointmentUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase CreateAppointmentUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	companyID, ok := middleware.GetCompanyID(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments - Missing company ID")
		handlers.RespondUnauthorized(w, msgMissingCompanyID)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Create(r.Context(), req.ToUseCaseRequest(companyID))
	if err != nil {
		status, msg := mapError(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("POST /appointments - Failed to create appointment: company_id=%d, staff_id=%d, error=%v",
				companyID, req.StaffID, err)
			handlers.RespondInternalError(w)
			return
		}
		h.logger.Warn("POST /appointments - Rejected: company_id=%d, staff_id=%d, starts_at=%s, error=%v",
			companyID, req.StaffID, req.StartsAt.Format(time.RFC3339), err)
		handlers.RespondError(w, status, msg)
		return
	}

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, company_id=%d",
		result.Appointment.ID, companyID)
	handlers.RespondJSON(w, http.StatusCreated, models.FromDomainAppointment(result.Appointment, h.location))
}

func mapError(err error) (int, string) {
	switch {
	case errors.Is(err, bookAppointment.ErrSlotNotAvailable):
		return http.StatusConflict, msgSlotNotAvailable
	case errors.Is(err, bookAppointment.ErrLocationNotFound):
		return http.StatusNotFound, msgLocationNotFound
	case errors.Is(err, bookAppointment.ErrStaffNotFound):
		return http.StatusNotFound, msgStaffNotFound
	case errors.Is(err, bookAppointment.ErrServiceNotFound):
		return http.StatusNotFound, msgServiceNotFound
	case errors.Is(err, bookAppointment.ErrServiceNotOffered):
		return http.StatusBadRequest, msgServiceNotOffered
	case errors.Is(err, bookAppointment.ErrInvalidInput):
		return http.StatusBadRequest, msgInvalidData
	default:
		return http.StatusInternalServerError, ""
	}
}
