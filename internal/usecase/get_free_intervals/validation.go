package get_free_intervals

import "fmt"

// isUnconstrained true, если не задан один из обязательных параметров.
// Такой запрос сразу даёт пустой результат без обращений к хранилищу.
func isUnconstrained(req *Request) bool {
	return req == nil ||
		req.LocationID == 0 ||
		req.StaffID == 0 ||
		req.Date.IsZero() ||
		req.Duration == 0
}

func validateRequest(req *Request) error {
	if req.CompanyID <= 0 {
		return fmt.Errorf("%w: companyId must be positive", ErrInvalidInput)
	}
	if req.LocationID < 0 || req.StaffID < 0 {
		return fmt.Errorf("%w: locationId and staffId must be positive", ErrInvalidInput)
	}
	if req.Duration < 0 {
		return fmt.Errorf("%w: duration must not be negative, got %s", ErrInvalidInput, req.Duration)
	}
	if req.ExcludedAppointmentID != nil && *req.ExcludedAppointmentID <= 0 {
		return fmt.Errorf("%w: excludedAppointmentId must be positive", ErrInvalidInput)
	}
	return nil
}
