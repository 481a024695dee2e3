package book_appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SchedulingService/internal/service/catalog"
	"github.com/m04kA/SMC-SchedulingService/internal/usecase/get_free_intervals"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
)

var testDay = time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

func at(h, m int) time.Time {
	return testDay.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
}

type fakeCatalog struct {
	duration   time.Duration
	resolveErr error
	offeredErr error
}

func (f *fakeCatalog) ResolveDuration(context.Context, int64, []int64) (time.Duration, error) {
	return f.duration, f.resolveErr
}

func (f *fakeCatalog) EnsureOfferedAt(context.Context, int64, int64, []int64) error {
	return f.offeredErr
}

type fakeEngine struct {
	intervals []domain.TimeWindow
	err       error
	got       *get_free_intervals.Request
	ctx       context.Context
}

func (f *fakeEngine) Execute(ctx context.Context, req *get_free_intervals.Request) (*get_free_intervals.Response, error) {
	f.got, f.ctx = req, ctx
	if f.err != nil {
		return nil, f.err
	}
	return &get_free_intervals.Response{Intervals: f.intervals}, nil
}

type fakeRepo struct {
	current *domain.Appointment
	getErr  error
	saveErr error
	created *domain.Appointment
	updated *domain.Appointment
}

func (f *fakeRepo) Create(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	cp := *a
	cp.ID = 100
	f.created = &cp
	return &cp, nil
}

func (f *fakeRepo) Update(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	cp := *a
	f.updated = &cp
	return &cp, nil
}

func (f *fakeRepo) GetByID(context.Context, int64, int64) (*domain.Appointment, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.current == nil {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	cp := *f.current
	return &cp, nil
}

type txKey struct{}

// fakeTx помечает контекст, чтобы проверить, что все шаги идут внутри транзакции
type fakeTx struct {
	calls int
	err   error
}

func (f *fakeTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	return fn(context.WithValue(ctx, txKey{}, true))
}

type fixture struct {
	catalog *fakeCatalog
	engine  *fakeEngine
	repo    *fakeRepo
	tx      *fakeTx
	uc      *UseCase
}

func newFixture() *fixture {
	f := &fixture{
		catalog: &fakeCatalog{duration: 45 * time.Minute},
		engine: &fakeEngine{intervals: []domain.TimeWindow{
			domain.NewTimeWindow(at(9, 0), at(11, 15)),
			domain.NewTimeWindow(at(13, 0), at(17, 15)),
		}},
		repo: &fakeRepo{},
		tx:   &fakeTx{},
	}
	f.uc = NewUseCase(f.catalog, f.engine, f.repo, f.tx, time.UTC, logger.Nop())
	return f
}

func createRequest(startsAt time.Time) *CreateRequest {
	return &CreateRequest{
		CompanyID:  1,
		LocationID: 2,
		StaffID:    3,
		ClientID:   ptr.Ptr(int64(9)),
		StartsAt:   startsAt,
		ServiceIDs: []int64{4, 5},
		Info:       ptr.Ptr("first visit"),
	}
}

func TestCreate(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Create(context.Background(), createRequest(at(10, 0)))

	require.NoError(t, err)
	assert.Equal(t, int64(100), resp.Appointment.ID)
	assert.Equal(t, 45, f.repo.created.DurationMinutes)
	assert.Equal(t, []int64{4, 5}, f.repo.created.ServiceIDs)
	assert.Equal(t, 1, f.tx.calls)
	assert.Equal(t, true, f.engine.ctx.Value(txKey{}))
	assert.Nil(t, f.engine.got.ExcludedAppointmentID)
	assert.Equal(t, 45*time.Minute, f.engine.got.Duration)
}

func TestCreate_IntervalBoundsAreInclusive(t *testing.T) {
	for _, startsAt := range []time.Time{at(9, 0), at(11, 15), at(13, 0), at(17, 15)} {
		f := newFixture()

		_, err := f.uc.Create(context.Background(), createRequest(startsAt))

		assert.NoError(t, err, startsAt.Format("15:04"))
	}
}

func TestCreate_SlotTaken(t *testing.T) {
	for _, startsAt := range []time.Time{at(8, 59), at(11, 16), at(12, 0), at(17, 30)} {
		f := newFixture()

		_, err := f.uc.Create(context.Background(), createRequest(startsAt))

		assert.ErrorIs(t, err, ErrSlotNotAvailable, startsAt.Format("15:04"))
		assert.Nil(t, f.repo.created)
	}
}

func TestCreate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(f *fixture)
		req     *CreateRequest
		wantErr error
	}{
		{
			name:    "no services",
			req:     &CreateRequest{CompanyID: 1, LocationID: 2, StaffID: 3, StartsAt: at(10, 0)},
			wantErr: ErrInvalidInput,
		},
		{
			name: "too many services",
			req: func() *CreateRequest {
				r := createRequest(at(10, 0))
				r.ServiceIDs = make([]int64, domain.MaxServicesPerAppointment+1)
				for i := range r.ServiceIDs {
					r.ServiceIDs[i] = 4
				}
				return r
			}(),
			wantErr: ErrInvalidInput,
		},
		{
			name: "info too long",
			req: func() *CreateRequest {
				r := createRequest(at(10, 0))
				long := make([]rune, domain.MaxInfoLength+1)
				for i := range long {
					long[i] = 'x'
				}
				r.Info = ptr.Ptr(string(long))
				return r
			}(),
			wantErr: ErrInvalidInput,
		},
		{
			name:    "unknown service",
			setup:   func(f *fixture) { f.catalog.resolveErr = catalog.ErrServiceNotFound },
			wantErr: ErrServiceNotFound,
		},
		{
			name:    "service not offered",
			setup:   func(f *fixture) { f.catalog.offeredErr = catalog.ErrServiceNotOffered },
			wantErr: ErrServiceNotOffered,
		},
		{
			name:    "unknown staff",
			setup:   func(f *fixture) { f.engine.err = get_free_intervals.ErrStaffNotFound },
			wantErr: ErrStaffNotFound,
		},
		{
			name:    "insert failure",
			setup:   func(f *fixture) { f.repo.saveErr = errors.New("unique violation") },
			wantErr: ErrInternal,
		},
		{
			name:    "commit failure",
			setup:   func(f *fixture) { f.tx.err = errors.New("could not serialize access") },
			wantErr: ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			if tt.setup != nil {
				tt.setup(f)
			}
			req := tt.req
			if req == nil {
				req = createRequest(at(10, 0))
			}

			_, err := f.uc.Create(context.Background(), req)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestReschedule(t *testing.T) {
	f := newFixture()
	f.repo.current = &domain.Appointment{ID: 7, CompanyID: 1, LocationID: 2, StaffID: 3, StartsAt: at(9, 0), DurationMinutes: 30}

	resp, err := f.uc.Reschedule(context.Background(), &RescheduleRequest{
		CompanyID:     1,
		AppointmentID: 7,
		LocationID:    2,
		StaffID:       8,
		StartsAt:      at(14, 0),
		ServiceIDs:    []int64{4},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.Appointment.ID)
	assert.Equal(t, int64(8), f.repo.updated.StaffID)
	assert.Equal(t, at(14, 0), f.repo.updated.StartsAt)
	assert.Equal(t, 45, f.repo.updated.DurationMinutes)
	require.NotNil(t, f.engine.got.ExcludedAppointmentID)
	assert.Equal(t, int64(7), *f.engine.got.ExcludedAppointmentID)
}

func TestReschedule_ReplacesClientAndInfo(t *testing.T) {
	f := newFixture()
	f.repo.current = &domain.Appointment{
		ID: 7, CompanyID: 1, LocationID: 2, StaffID: 3, ClientID: ptr.Ptr(int64(9)),
		StartsAt: at(9, 0), DurationMinutes: 30, Info: ptr.Ptr("first visit"),
	}

	resp, err := f.uc.Reschedule(context.Background(), &RescheduleRequest{
		CompanyID:     1,
		AppointmentID: 7,
		LocationID:    2,
		StaffID:       3,
		ClientID:      ptr.Ptr(int64(77)),
		StartsAt:      at(9, 0),
		ServiceIDs:    []int64{4},
	})

	require.NoError(t, err)
	require.NotNil(t, f.repo.updated.ClientID)
	assert.Equal(t, int64(77), *f.repo.updated.ClientID)
	assert.Nil(t, f.repo.updated.Info)
	assert.Equal(t, f.repo.updated.ClientID, resp.Appointment.ClientID)
}

func TestReschedule_Errors(t *testing.T) {
	tests := []struct {
		name    string
		current *domain.Appointment
		wantErr error
	}{
		{name: "missing", current: nil, wantErr: ErrAppointmentNotFound},
		{name: "cancelled", current: &domain.Appointment{ID: 7, Cancelled: true}, wantErr: ErrAppointmentCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.repo.current = tt.current

			_, err := f.uc.Reschedule(context.Background(), &RescheduleRequest{
				CompanyID: 1, AppointmentID: 7, LocationID: 2, StaffID: 3, StartsAt: at(14, 0), ServiceIDs: []int64{4},
			})

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, f.repo.updated)
		})
	}
}
