package get_appointment

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingService/internal/service/appointments"
	"github.com/m04kA/SMC-SchedulingService/internal/service/appointments/models"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
)

type fakeService struct {
	getByID func(ctx context.Context, companyID, id int64) (*models.AppointmentResponse, error)
}

func (f *fakeService) GetByID(ctx context.Context, companyID, id int64) (*models.AppointmentResponse, error) {
	return f.getByID(ctx, companyID, id)
}

func get(svc AppointmentService, path string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/appointments/{appointmentId}", NewHandler(svc, logger.Nop()).Handle).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set(middleware.CompanyIDHeader, "3")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		err      error
		want     int
		wantBody string
	}{
		{name: "found", path: "/appointments/7", want: http.StatusOK, wantBody: `"id":7`},
		{name: "bad id", path: "/appointments/x", want: http.StatusBadRequest},
		{name: "not found", path: "/appointments/7", err: appointments.ErrAppointmentNotFound, want: http.StatusNotFound},
		{name: "internal", path: "/appointments/7", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{getByID: func(_ context.Context, companyID, id int64) (*models.AppointmentResponse, error) {
				assert.Equal(t, int64(3), companyID)
				if tt.err != nil {
					return nil, tt.err
				}
				return &models.AppointmentResponse{ID: id, CompanyID: companyID}, nil
			}}

			rec := get(svc, tt.path)

			assert.Equal(t, tt.want, rec.Code)
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
}
