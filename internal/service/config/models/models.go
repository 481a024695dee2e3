package models

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// UpdateConfigRequest частичное обновление настроек.
// Обновляются только переданные поля.
type UpdateConfigRequest struct {
	MinTimeIntervalMinutes *int              `json:"minTimeIntervalMinutes,omitempty"`
	DefaultTimeFrom        *types.TimeString `json:"defaultTimeFrom,omitempty"`
	DefaultTimeTo          *types.TimeString `json:"defaultTimeTo,omitempty"`
	SimpleMode             *bool             `json:"simpleMode,omitempty"`
}

// ConfigResponse настройки компании
type ConfigResponse struct {
	CompanyID              int64            `json:"companyId"`
	MinTimeIntervalMinutes int              `json:"minTimeIntervalMinutes"`
	DefaultTimeFrom        types.TimeString `json:"defaultTimeFrom"`
	DefaultTimeTo          types.TimeString `json:"defaultTimeTo"`
	SimpleMode             bool             `json:"simpleMode"`
	IsDefault              bool             `json:"isDefault"` // компания ещё ничего не сохраняла
	UpdatedAt              *time.Time       `json:"updatedAt,omitempty"`
}

// FromDomainConfig конвертирует domain модель в DTO
func FromDomainConfig(c *domain.CompanyConfig, isDefault bool) *ConfigResponse {
	if c == nil {
		return nil
	}

	resp := &ConfigResponse{
		CompanyID:              c.CompanyID,
		MinTimeIntervalMinutes: c.MinTimeIntervalMinutes,
		DefaultTimeFrom:        c.DefaultTimeFrom,
		DefaultTimeTo:          c.DefaultTimeTo,
		SimpleMode:             c.SimpleMode,
		IsDefault:              isDefault,
	}
	if !c.UpdatedAt.IsZero() {
		updatedAt := c.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}
	return resp
}

// ApplyToConfig применяет обновления к конфигурации
func (r *UpdateConfigRequest) ApplyToConfig(c *domain.CompanyConfig) {
	if r.MinTimeIntervalMinutes != nil {
		c.MinTimeIntervalMinutes = *r.MinTimeIntervalMinutes
	}
	if r.DefaultTimeFrom != nil {
		c.DefaultTimeFrom = *r.DefaultTimeFrom
	}
	if r.DefaultTimeTo != nil {
		c.DefaultTimeTo = *r.DefaultTimeTo
	}
	if r.SimpleMode != nil {
		c.SimpleMode = *r.SimpleMode
	}
}

// IsEmpty true, если не передано ни одного поля
func (r *UpdateConfigRequest) IsEmpty() bool {
	return r.MinTimeIntervalMinutes == nil &&
		r.DefaultTimeFrom == nil &&
		r.DefaultTimeTo == nil &&
		r.SimpleMode == nil
}
