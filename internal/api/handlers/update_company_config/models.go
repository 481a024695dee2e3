package update_company_config

import (
	"github.com/m04kA/SMC-SchedulingService/internal/service/config/models"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// UpdateCompanyConfigRequest HTTP request model. Незаданные поля не меняются.
type UpdateCompanyConfigRequest struct {
	MinTimeIntervalMinutes *int              `json:"minTimeIntervalMinutes,omitempty"`
	DefaultTimeFrom        *types.TimeString `json:"defaultTimeFrom,omitempty"`
	DefaultTimeTo          *types.TimeString `json:"defaultTimeTo,omitempty"`
	SimpleMode             *bool             `json:"simpleMode,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateCompanyConfigRequest) ToServiceRequest() *models.UpdateConfigRequest {
	return &models.UpdateConfigRequest{
		MinTimeIntervalMinutes: r.MinTimeIntervalMinutes,
		DefaultTimeFrom:        r.DefaultTimeFrom,
		DefaultTimeTo:          r.DefaultTimeTo,
		SimpleMode:             r.SimpleMode,
	}
}
