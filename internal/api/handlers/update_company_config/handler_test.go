package update_company_config

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingService/internal/service/config"
	"github.com/m04kA/SMC-SchedulingService/internal/service/config/models"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
)

type fakeService struct {
	got *models.UpdateConfigRequest
	err error
}

func (f *fakeService) Update(_ context.Context, companyID int64, req *models.UpdateConfigRequest) (*models.ConfigResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.ConfigResponse{CompanyID: companyID, MinTimeIntervalMinutes: *req.MinTimeIntervalMinutes}, nil
}

func put(svc ConfigService, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, "/config", strings.NewReader(body))
	req = req.WithContext(middleware.WithCompanyID(req.Context(), 2))
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.Nop()).Handle(rec, req)
	return rec
}

func TestHandle_PartialUpdate(t *testing.T) {
	svc := &fakeService{}

	rec := put(svc, `{"minTimeIntervalMinutes":30,"defaultTimeFrom":"08:30"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.got.DefaultTimeFrom)
	assert.Equal(t, "08:30", svc.got.DefaultTimeFrom.String())
	assert.Nil(t, svc.got.DefaultTimeTo)
	assert.Nil(t, svc.got.SimpleMode)
	assert.Contains(t, rec.Body.String(), `"minTimeIntervalMinutes":30`)
}

func TestHandle_BadBody(t *testing.T) {
	for _, body := range []string{``, `{"defaultTimeFrom":"25:99"}`, `{"slotDurationMinutes":30}`} {
		svc := &fakeService{}

		rec := put(svc, body)

		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Nil(t, svc.got, body)
	}
}

func TestHandle_ServiceErrors(t *testing.T) {
	rec := put(&fakeService{err: fmt.Errorf("%w: granularity out of range", config.ErrInvalidInput)}, `{"minTimeIntervalMinutes":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = put(&fakeService{err: errors.New("db down")}, `{"minTimeIntervalMinutes":15}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
