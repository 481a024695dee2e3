package domain

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// CompanyConfig holds the per-tenant scheduling settings.
type CompanyConfig struct {
	CompanyID              int64
	MinTimeIntervalMinutes int              // granularity of selectable start times
	DefaultTimeFrom        types.TimeString // suggested day start in booking forms
	DefaultTimeTo          types.TimeString // suggested day end in booking forms
	SimpleMode             bool             // ignore staff schedules and holidays
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// DefaultCompanyConfig is used when a tenant has not saved any settings.
func DefaultCompanyConfig(companyID int64) *CompanyConfig {
	return &CompanyConfig{
		CompanyID:              companyID,
		MinTimeIntervalMinutes: DefaultMinTimeIntervalMinutes,
		DefaultTimeFrom:        types.MustTimeString(DefaultTimeFrom),
		DefaultTimeTo:          types.MustTimeString(DefaultTimeTo),
		SimpleMode:             DefaultSimpleMode,
	}
}

// Granularity returns the slot step as a duration, falling back to the default step.
func (c *CompanyConfig) Granularity() time.Duration {
	if c == nil || c.MinTimeIntervalMinutes <= 0 {
		return DefaultMinTimeIntervalMinutes * time.Minute
	}
	return time.Duration(c.MinTimeIntervalMinutes) * time.Minute
}

// IsSimpleMode is nil-safe.
func (c *CompanyConfig) IsSimpleMode() bool {
	return c != nil && c.SimpleMode
}
