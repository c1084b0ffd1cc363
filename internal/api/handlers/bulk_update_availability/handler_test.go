package bulk_update_availability

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/REM-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/REM-AvailabilityService/internal/domain"
	bulkUpdate "github.com/m04kA/REM-AvailabilityService/internal/usecase/bulk_update"
)

type fakeUseCase struct {
	resp *bulkUpdate.Response
	err  error

	lastReq *bulkUpdate.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *bulkUpdate.Request) (*bulkUpdate.Response, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, uc *fakeUseCase, body string, withUser bool) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(uc, noopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/availability/bulk", bytes.NewBufferString(body))
	if withUser {
		req.Header.Set("X-User-ID", "42")
	}

	rec := httptest.NewRecorder()
	middleware.Auth(http.HandlerFunc(handler.Handle)).ServeHTTP(rec, req)
	return rec
}

func TestHandleSuccess(t *testing.T) {
	uc := &fakeUseCase{resp: &bulkUpdate.Response{
		Records: []*domain.AvailabilityRecord{
			{ID: 1, UnitID: 1, Date: "2026-03-15", Status: domain.StatusMaintenance, UpdatedBy: 42},
			{ID: 2, UnitID: 2, Date: "2026-03-15", Status: domain.StatusMaintenance, UpdatedBy: 42},
		},
		Units: 2,
		Dates: 1,
	}}

	body := `{"unitIds": [1, 2], "dates": ["2026-03-15"], "status": "maintenance"}`
	rec := doRequest(t, uc, body, true)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp BulkUpdateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.UpdatedCells)
	assert.Equal(t, 2, resp.Units)
	assert.Equal(t, 1, resp.Dates)
	require.Len(t, resp.Records, 2)
	assert.Equal(t, "maintenance", resp.Records[0].Status)

	// user ID из заголовка прокинут в use case
	require.NotNil(t, uc.lastReq)
	assert.Equal(t, int64(42), uc.lastReq.UpdatedBy)
}

func TestHandleMissingUserID(t *testing.T) {
	uc := &fakeUseCase{}

	rec := doRequest(t, uc, `{"unitIds": [1], "dates": ["2026-03-15"], "status": "booked"}`, false)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, uc.lastReq)
}

func TestHandleMalformedBody(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, `{"unitIds": `, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleUnknownField(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, `{"unitIds": [1], "dates": ["2026-03-15"], "status": "booked", "force": true}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleUseCaseErrors(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"empty units", bulkUpdate.ErrNoUnits, http.StatusBadRequest},
		{"empty dates", bulkUpdate.ErrNoDates, http.StatusBadRequest},
		{"invalid status", bulkUpdate.ErrInvalidStatus, http.StatusBadRequest},
		{"invalid date", bulkUpdate.ErrInvalidDate, http.StatusBadRequest},
		{"too many cells", bulkUpdate.ErrTooManyCells, http.StatusBadRequest},
		{"invalid input", bulkUpdate.ErrInvalidInput, http.StatusBadRequest},
		{"storage unavailable", bulkUpdate.ErrStorageUnavailable, http.StatusServiceUnavailable},
		{"bulk write failed", bulkUpdate.ErrBulkWrite, http.StatusInternalServerError},
		{"internal error", bulkUpdate.ErrInternal, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := &fakeUseCase{err: tc.err}
			rec := doRequest(t, uc, `{"unitIds": [1], "dates": ["2026-03-15"], "status": "booked"}`, true)
			assert.Equal(t, tc.wantCode, rec.Code)
		})
	}
}
