package appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SchedulingService/internal/service/appointments/models"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
)

type fakeAppointmentRepo struct {
	getByIDFn   func(ctx context.Context, companyID, id int64) (*domain.Appointment, error)
	getByDayFn  func(ctx context.Context, filter domain.StaffDayFilter) ([]*domain.Appointment, error)
	cancelFn    func(ctx context.Context, companyID, id int64) error
	cancelCalls int
}

func (f *fakeAppointmentRepo) GetByID(ctx context.Context, companyID, id int64) (*domain.Appointment, error) {
	if f.getByIDFn == nil {
		panic("GetByID not configured")
	}
	return f.getByIDFn(ctx, companyID, id)
}

func (f *fakeAppointmentRepo) GetByStaffAndDate(ctx context.Context, filter domain.StaffDayFilter) ([]*domain.Appointment, error) {
	if f.getByDayFn == nil {
		panic("GetByStaffAndDate not configured")
	}
	return f.getByDayFn(ctx, filter)
}

func (f *fakeAppointmentRepo) Cancel(ctx context.Context, companyID, id int64) error {
	f.cancelCalls++
	if f.cancelFn == nil {
		return nil
	}
	return f.cancelFn(ctx, companyID, id)
}

var moscow = time.FixedZone("MSK", 3*60*60)

func sampleAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:              5,
		CompanyID:       1,
		LocationID:      2,
		StaffID:         3,
		StartsAt:        time.Date(2025, 6, 10, 7, 0, 0, 0, time.UTC),
		DurationMinutes: 45,
		ServiceIDs:      []int64{1, 2},
	}
}

func TestService_GetByID(t *testing.T) {
	repo := &fakeAppointmentRepo{
		getByIDFn: func(_ context.Context, companyID, id int64) (*domain.Appointment, error) {
			assert.Equal(t, int64(1), companyID)
			assert.Equal(t, int64(5), id)
			return sampleAppointment(), nil
		},
	}
	svc := NewService(repo, moscow, logger.Nop())

	got, err := svc.GetByID(context.Background(), 1, 5)

	require.NoError(t, err)
	assert.Equal(t, "2025-06-10", got.Date)
	assert.Equal(t, "10:00", got.StartTime)
	assert.Equal(t, "10:45", got.EndTime)
	assert.Equal(t, []int64{1, 2}, got.ServiceIDs)
}

func TestService_GetByID_NotFound(t *testing.T) {
	svc := NewService(&fakeAppointmentRepo{
		getByIDFn: func(context.Context, int64, int64) (*domain.Appointment, error) {
			return nil, appointmentRepo.ErrAppointmentNotFound
		},
	}, nil, logger.Nop())

	_, err := svc.GetByID(context.Background(), 1, 5)

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestService_GetByStaffAndDate(t *testing.T) {
	var captured domain.StaffDayFilter
	svc := NewService(&fakeAppointmentRepo{
		getByDayFn: func(_ context.Context, filter domain.StaffDayFilter) ([]*domain.Appointment, error) {
			captured = filter
			return []*domain.Appointment{sampleAppointment()}, nil
		},
	}, moscow, logger.Nop())

	got, err := svc.GetByStaffAndDate(context.Background(), &models.GetStaffDayRequest{
		CompanyID:        1,
		StaffID:          3,
		Date:             time.Date(2025, 6, 10, 0, 0, 0, 0, moscow),
		IncludeCancelled: true,
	})

	require.NoError(t, err)
	require.Len(t, got.Appointments, 1)
	assert.True(t, captured.IncludeCancelled)
	assert.Equal(t, int64(3), captured.StaffID)
	assert.Nil(t, captured.ExcludedAppointmentID)
}

func TestService_GetByStaffAndDate_Invalid(t *testing.T) {
	svc := NewService(&fakeAppointmentRepo{}, nil, logger.Nop())

	_, err := svc.GetByStaffAndDate(context.Background(), &models.GetStaffDayRequest{CompanyID: 1})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Cancel(t *testing.T) {
	tests := []struct {
		name      string
		current   *domain.Appointment
		getErr    error
		cancelErr error
		wantErr   error
		wantCalls int
	}{
		{name: "active", current: sampleAppointment(), wantCalls: 1},
		{name: "missing", getErr: appointmentRepo.ErrAppointmentNotFound, wantErr: ErrAppointmentNotFound},
		{
			name:    "already cancelled",
			current: func() *domain.Appointment { a := sampleAppointment(); a.Cancelled = true; return a }(),
			wantErr: ErrAlreadyCancelled,
		},
		{
			name:      "cancelled concurrently",
			current:   sampleAppointment(),
			cancelErr: appointmentRepo.ErrAppointmentNotFound,
			wantErr:   ErrAlreadyCancelled,
			wantCalls: 1,
		},
		{
			name:      "storage failure",
			current:   sampleAppointment(),
			cancelErr: errors.New("deadlock"),
			wantErr:   ErrInternal,
			wantCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeAppointmentRepo{
				getByIDFn: func(context.Context, int64, int64) (*domain.Appointment, error) {
					return tt.current, tt.getErr
				},
				cancelFn: func(context.Context, int64, int64) error { return tt.cancelErr },
			}
			svc := NewService(repo, nil, logger.Nop())

			err := svc.Cancel(context.Background(), 1, 5)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantCalls, repo.cancelCalls)
		})
	}
}
