package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"complaint-management/internal/middleware"
	"complaint-management/internal/servicetype"
	stHTTP "complaint-management/internal/servicetype/delivery/http"
	"complaint-management/pkg/log"
)

type fakeUseCase struct {
	servicetype.UseCase
	err error
}

func (f fakeUseCase) Create(ctx context.Context, input servicetype.CreateInput) (servicetype.ServiceType, error) {
	return servicetype.ServiceType{}, f.err
}

func (f fakeUseCase) Detail(ctx context.Context, id int64) (servicetype.ServiceType, error) {
	return servicetype.ServiceType{ID: id, IssueID: 2, Name: "FIBER", IssueType: "NO SIGNAL"}, f.err
}

func newRouter(uc servicetype.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.New(log.NewNop(), nil).ErrorReporter())
	stHTTP.RegisterRoutes(r.Group("/api"), stHTTP.New(log.NewNop(), uc))
	return r
}

func TestCreate(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{name: "Created", status: http.StatusCreated, msg: "Service type created."},
		{name: "Missing Fields", err: servicetype.ErrFieldsRequired, status: http.StatusBadRequest, msg: "issue_id and service_name required."},
		{name: "Unknown Issue", err: servicetype.ErrIssueNotFound, status: http.StatusNotFound, msg: "Issue not found."},
		{name: "Duplicate", err: servicetype.ErrDuplicateName, status: http.StatusConflict, msg: "Service type already exists for this issue."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/service-types/new", strings.NewReader(`{"issue_id":2,"service_name":"fiber"}`))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			newRouter(fakeUseCase{err: tt.err}).ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.msg, body["message"])
		})
	}
}

func TestDetail(t *testing.T) {
	w := httptest.NewRecorder()
	newRouter(fakeUseCase{}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/service-types/4", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(4), body["service_id"])
	assert.Equal(t, "FIBER", body["service_name"])
	assert.Equal(t, "NO SIGNAL", body["issue_type"])

	w = httptest.NewRecorder()
	newRouter(fakeUseCase{err: servicetype.ErrServiceTypeNotFound}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/service-types/4", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Service type not found.")
}
