package get_staff_appointments

import (
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/service/appointments/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(
	companyID int64,
	staffID int64,
	dateStr string,
	includeCancelledStr string,
	location *time.Location,
) (*models.GetStaffDayRequest, error) {
	date, err := handlers.ParseDate(dateStr, location)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %w", err)
	}

	req := &models.GetStaffDayRequest{
		CompanyID: companyID,
		StaffID:   staffID,
		Date:      date,
	}

	// По умолчанию только активные
	if includeCancelledStr != "" {
		includeCancelled, err := strconv.ParseBool(includeCancelledStr)
		if err != nil {
			return nil, fmt.Errorf("invalid includeCancelled value: %w", err)
		}
		req.IncludeCancelled = includeCancelled
	}

	return req, nil
}
