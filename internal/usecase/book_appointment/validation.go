package book_appointment

import (
	"fmt"
	"unicode/utf8"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

func validateSlotRequest(r slotRequest) error {
	if r.companyID <= 0 {
		return fmt.Errorf("%w: companyId must be positive", ErrInvalidInput)
	}
	if r.locationID <= 0 {
		return fmt.Errorf("%w: locationId must be positive", ErrInvalidInput)
	}
	if r.staffID <= 0 {
		return fmt.Errorf("%w: staffId must be positive", ErrInvalidInput)
	}
	if r.startsAt.IsZero() {
		return fmt.Errorf("%w: startsAt is required", ErrInvalidInput)
	}
	if len(r.serviceIDs) == 0 {
		return fmt.Errorf("%w: at least one service is required", ErrInvalidInput)
	}
	if len(r.serviceIDs) > domain.MaxServicesPerAppointment {
		return fmt.Errorf("%w: at most %d services", ErrInvalidInput, domain.MaxServicesPerAppointment)
	}
	return nil
}

func validateDetails(clientID *int64, info *string) error {
	if clientID != nil && *clientID <= 0 {
		return fmt.Errorf("%w: clientId must be positive", ErrInvalidInput)
	}
	if info != nil && utf8.RuneCountInString(*info) > domain.MaxInfoLength {
		return fmt.Errorf("%w: info must be at most %d characters", ErrInvalidInput, domain.MaxInfoLength)
	}
	return nil
}

func validateCreateRequest(req *CreateRequest) error {
	if err := validateSlotRequest(req.slot()); err != nil {
		return err
	}
	return validateDetails(req.ClientID, req.Info)
}

func validateRescheduleRequest(req *RescheduleRequest) error {
	if req.AppointmentID <= 0 {
		return fmt.Errorf("%w: appointmentId must be positive", ErrInvalidInput)
	}
	if err := validateSlotRequest(req.slot()); err != nil {
		return err
	}
	return validateDetails(req.ClientID, req.Info)
}

func (r *CreateRequest) slot() slotRequest {
	return slotRequest{
		companyID:  r.CompanyID,
		locationID: r.LocationID,
		staffID:    r.StaffID,
		startsAt:   r.StartsAt,
		serviceIDs: r.ServiceIDs,
	}
}

func (r *RescheduleRequest) slot() slotRequest {
	id := r.AppointmentID
	return slotRequest{
		companyID:  r.CompanyID,
		locationID: r.LocationID,
		staffID:    r.StaffID,
		startsAt:   r.StartsAt,
		serviceIDs: r.ServiceIDs,
		excludedID: &id,
	}
}
