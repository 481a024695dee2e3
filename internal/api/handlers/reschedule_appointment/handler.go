package reschedule_appointment

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingService/internal/service/appointments/models"
	bookAppointment "github.com/m04kA/SMC-SchedulingService/internal/usecase/book_appointment"
)

const (
	msgMissingCompanyID     = "отсутствует ID компании"
	msgInvalidAppointmentID = "некорректный ID записи"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidData          = "некорректные данные записи"
	msgNotFound             = "запись не найдена"
	msgCancelled            = "запись отменена"
	msgSlotNotAvailable     = "выбранное время уже занято"
	msgLocationNotFound     = "точка не найдена"
	msgStaffNotFound        = "мастер не найден"
	msgServiceNotFound      = "услуга не найдена"
	msgServiceNotOffered    = "услуга недоступна на выбранной точке"
)

type Handler struct {
	useCase  RescheduleAppointmentUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase RescheduleAppointmentUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle PUT /api/v1/appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	companyID, ok := middleware.GetCompanyID(r.Context())
	if !ok {
		h.logger.Warn("PUT /appointments/{id} - Missing company ID")
		handlers.RespondUnauthorized(w, msgMissingCompanyID)
		return
	}

	appointmentID, err := handlers.PathID(mux.Vars(r), "appointmentId")
	if err != nil {
		h.logger.Warn("PUT /appointments/{id} - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req RescheduleAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /appointments/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Reschedule(r.Context(), req.ToUseCaseRequest(companyID, appointmentID))
	if err != nil {
		switch {
		case errors.Is(err, bookAppointment.ErrAppointmentNotFound):
			h.logger.Warn("PUT /appointments/{id} - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookAppointment.ErrAppointmentCancelled):
			h.logger.Warn("PUT /appointments/{id} - Appointment cancelled: appointment_id=%d", appointmentID)
			handlers.RespondConflict(w, msgCancelled)

		case errors.Is(err, bookAppointment.ErrSlotNotAvailable):
			h.logger.Warn("PUT /appointments/{id} - Slot not available: appointment_id=%d, starts_at=%s",
				appointmentID, req.StartsAt.Format(time.RFC3339))
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, bookAppointment.ErrLocationNotFound):
			handlers.RespondNotFound(w, msgLocationNotFound)

		case errors.Is(err, bookAppointment.ErrStaffNotFound):
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, bookAppointment.ErrServiceNotFound):
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, bookAppointment.ErrServiceNotOffered):
			handlers.RespondBadRequest(w, msgServiceNotOffered)

		case errors.Is(err, bookAppointment.ErrInvalidInput):
			h.logger.Warn("PUT /appointments/{id} - Invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PUT /appointments/{id} - Failed to reschedule appointment: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /appointments/{id} - Appointment rescheduled successfully: appointment_id=%d", appointmentID)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainAppointment(result.Appointment, h.location))
}
