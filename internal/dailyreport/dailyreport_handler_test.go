package dailyreport_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/dailyreport"
	dailyreporterrors "github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/dailyreport/errors"
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/dailyreport/mock"
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const actorID = "9e2d0c55-4b7a-4f0e-8a61-3c5d7e9f1a22"

func newRouter(h *dailyreport.Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", actorID)
		c.Set("role", "engineer")
		c.Next()
	})
	r.POST("/reports/hourly", h.CreateHourly)
	r.GET("/reports/hourly", h.ListHourly)
	r.POST("/reports/daily", h.CreateDaily)
	r.PUT("/reports/daily/:id", h.UpdateDaily)
	r.GET("/reports/daily", h.ListDaily)
	return r
}

func do(r http.Handler, method, path, body string) (*httptest.ResponseRecorder, string) {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env struct {
		Error *struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	if env.Error == nil {
		return w, ""
	}
	return w, env.Error.Code
}

func TestHandler_CreateHourly(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(svc *mock.MockService)
		wantStatus int
		wantCode   string
	}{
		{
			name: "created",
			body: `{"reportDate":"2026-03-15","hourSlot":"09:00-10:00","activity":"survey"}`,
			setup: func(svc *mock.MockService) {
				svc.EXPECT().CreateHourly(gomock.Any(), actorID, dailyreport.CreateHourlyRequest{
					ReportDate: "2026-03-15", HourSlot: "09:00-10:00", Activity: "survey",
				}).Return(dailyreport.HourlyReportResponse{ID: "r1"}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "reversed slot",
			body:       `{"reportDate":"2026-03-15","hourSlot":"10:00-09:00","activity":"survey"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   apperror.CodeValidationError,
		},
		{
			name:       "missing activity",
			body:       `{"reportDate":"2026-03-15","hourSlot":"09:00-10:00"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   apperror.CodeValidationError,
		},
		{
			name: "duplicate slot",
			body: `{"reportDate":"2026-03-15","hourSlot":"09:00-10:00","activity":"survey"}`,
			setup: func(svc *mock.MockService) {
				svc.EXPECT().CreateHourly(gomock.Any(), actorID, gomock.Any()).
					Return(dailyreport.HourlyReportResponse{}, dailyreporterrors.ErrDuplicateHourlyReport)
			},
			wantStatus: http.StatusConflict,
			wantCode:   apperror.CodeConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := mock.NewMockService(ctrl)
			if tt.setup != nil {
				tt.setup(svc)
			}

			w, code := do(newRouter(dailyreport.NewHandler(svc)), http.MethodPost, "/reports/hourly", tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}

func TestHandler_ListDaily(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockService(ctrl)
	r := newRouter(dailyreport.NewHandler(svc))

	svc.EXPECT().ListDaily(gomock.Any(), actorID, "engineer", dailyreport.ListDailyQuery{From: "2026-03-01", To: "2026-03-15"}).
		Return([]dailyreport.DailyReportResponse{{ID: "d1", ProjectID: "P1"}}, nil)

	w, _ := do(r, http.MethodGet, "/reports/daily?from=2026-03-01&to=2026-03-15", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"projectId":"P1"`)

	w, code := do(r, http.MethodGet, "/reports/daily?from=March", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, apperror.CodeValidationError, code)
}

func TestHandler_UpdateDaily_Forbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockService(ctrl)
	r := newRouter(dailyreport.NewHandler(svc))

	svc.EXPECT().UpdateDaily(gomock.Any(), actorID, "d1", gomock.Any()).
		Return(dailyreport.DailyReportResponse{}, dailyreporterrors.ErrNotReportOwner)

	w, code := do(r, http.MethodPut, "/reports/daily/d1", `{"status":"COMPLETED"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, apperror.CodeForbidden, code)
}
