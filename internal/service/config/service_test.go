package config

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	configRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/config"
	"github.com/m04kA/SMC-SchedulingService/internal/service/config/models"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

type fakeConfigRepo struct {
	getFn    func(ctx context.Context, companyID int64) (*domain.CompanyConfig, error)
	upsertFn func(ctx context.Context, cfg *domain.CompanyConfig) (*domain.CompanyConfig, error)
}

func (f *fakeConfigRepo) Get(ctx context.Context, companyID int64) (*domain.CompanyConfig, error) {
	if f.getFn == nil {
		panic("Get not configured")
	}
	return f.getFn(ctx, companyID)
}

func (f *fakeConfigRepo) Upsert(ctx context.Context, cfg *domain.CompanyConfig) (*domain.CompanyConfig, error) {
	if f.upsertFn == nil {
		panic("Upsert not configured")
	}
	return f.upsertFn(ctx, cfg)
}

func notFound(context.Context, int64) (*domain.CompanyConfig, error) {
	return nil, configRepo.ErrConfigNotFound
}

func TestService_Get_Defaults(t *testing.T) {
	svc := NewService(&fakeConfigRepo{getFn: notFound}, logger.Nop())

	got, err := svc.Get(context.Background(), 9)

	require.NoError(t, err)
	assert.True(t, got.IsDefault)
	assert.Equal(t, int64(9), got.CompanyID)
	assert.Equal(t, domain.DefaultMinTimeIntervalMinutes, got.MinTimeIntervalMinutes)
	assert.Equal(t, "09:00", got.DefaultTimeFrom.String())
	assert.False(t, got.SimpleMode)
	assert.Nil(t, got.UpdatedAt)
}

func TestService_Get_RepositoryError(t *testing.T) {
	dbErr := errors.New("connection refused")
	svc := NewService(&fakeConfigRepo{
		getFn: func(context.Context, int64) (*domain.CompanyConfig, error) { return nil, dbErr },
	}, logger.Nop())

	_, err := svc.Get(context.Background(), 9)

	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_Update_PartialOverDefaults(t *testing.T) {
	var saved *domain.CompanyConfig
	svc := NewService(&fakeConfigRepo{
		getFn: notFound,
		upsertFn: func(_ context.Context, cfg *domain.CompanyConfig) (*domain.CompanyConfig, error) {
			saved = cfg
			out := *cfg
			out.UpdatedAt = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
			return &out, nil
		},
	}, logger.Nop())

	got, err := svc.Update(context.Background(), 9, &models.UpdateConfigRequest{
		MinTimeIntervalMinutes: ptr.Ptr(30),
		SimpleMode:             ptr.Ptr(true),
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, 30, saved.MinTimeIntervalMinutes)
	assert.True(t, saved.SimpleMode)
	assert.Equal(t, "18:00", saved.DefaultTimeTo.String())
	assert.False(t, got.IsDefault)
	assert.NotNil(t, got.UpdatedAt)
}

func TestService_Update_Validation(t *testing.T) {
	existing := &domain.CompanyConfig{
		CompanyID:              9,
		MinTimeIntervalMinutes: 15,
		DefaultTimeFrom:        types.MustTimeString("09:00"),
		DefaultTimeTo:          types.MustTimeString("18:00"),
	}

	tests := []struct {
		name string
		req  *models.UpdateConfigRequest
	}{
		{name: "empty request", req: &models.UpdateConfigRequest{}},
		{name: "zero granularity", req: &models.UpdateConfigRequest{MinTimeIntervalMinutes: ptr.Ptr(0)}},
		{name: "granularity too large", req: &models.UpdateConfigRequest{MinTimeIntervalMinutes: ptr.Ptr(241)}},
		{name: "inverted day", req: &models.UpdateConfigRequest{DefaultTimeFrom: ptr.Ptr(types.MustTimeString("19:00"))}},
		{name: "equal bounds", req: &models.UpdateConfigRequest{DefaultTimeTo: ptr.Ptr(types.MustTimeString("09:00"))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&fakeConfigRepo{
				getFn: func(context.Context, int64) (*domain.CompanyConfig, error) {
					cp := *existing
					return &cp, nil
				},
			}, logger.Nop())

			_, err := svc.Update(context.Background(), 9, tt.req)

			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
