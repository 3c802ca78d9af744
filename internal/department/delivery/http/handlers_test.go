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

	"complaint-management/internal/department"
	deptHTTP "complaint-management/internal/department/delivery/http"
	"complaint-management/internal/middleware"
	"complaint-management/pkg/log"
	"complaint-management/pkg/scope"
)

type fakeUseCase struct {
	err error
}

func (f fakeUseCase) Create(ctx context.Context, input department.CreateInput) (department.Department, error) {
	return department.Department{ID: 1, Name: input.Name}, f.err
}

func (f fakeUseCase) List(ctx context.Context) ([]department.Department, error) {
	return []department.Department{{ID: 1, Name: "BILLING"}}, f.err
}

func (f fakeUseCase) Detail(ctx context.Context, id int64) (department.Department, error) {
	return department.Department{ID: id, Name: "BILLING"}, f.err
}

func (f fakeUseCase) Update(ctx context.Context, input department.UpdateInput) error { return f.err }
func (f fakeUseCase) Delete(ctx context.Context, id int64) error                    { return f.err }

type testServer struct {
	r     *gin.Engine
	token string
}

func newServer(t *testing.T, uc department.UseCase) testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtManager, err := scope.New(scope.Config{AccessSecret: "a-secret", RefreshSecret: "r-secret"})
	require.NoError(t, err)
	token, err := jwtManager.CreateAccessToken(scope.Payload{UserID: 3, RoleID: 1, Name: "Ravi"})
	require.NoError(t, err)

	l := log.NewNop()
	mw := middleware.New(l, jwtManager)
	r := gin.New()
	r.Use(mw.ErrorReporter())
	deptHTTP.RegisterRoutes(r.Group("/api"), deptHTTP.New(l, uc), mw)
	return testServer{r: r, token: token}
}

func (s testServer) do(method, path, body string, authed bool) (int, map[string]any) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	w := httptest.NewRecorder()
	s.r.ServeHTTP(w, req)

	var out map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return w.Code, out
}

func TestRoutesRequireToken(t *testing.T) {
	s := newServer(t, fakeUseCase{})
	status, body := s.do(http.MethodGet, "/api/departments", "", false)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "No token", body["message"])
}

func TestCreate(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{name: "Created", status: http.StatusOK, msg: "Department created successfully"},
		{name: "Missing Name", err: department.ErrNameRequired, status: http.StatusBadRequest, msg: "Department name is required and must be valid"},
		{name: "Duplicate", err: department.ErrDuplicateName, status: http.StatusConflict, msg: "Department name already exists"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newServer(t, fakeUseCase{err: tt.err})
			status, body := s.do(http.MethodPost, "/api/departments/new", `{"deptt_name":"billing"}`, true)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.msg, body["message"])
		})
	}
}

func TestUpdateMessages(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{name: "Updated", status: http.StatusOK, msg: "Department updated successfully"},
		{name: "Missing Name", err: department.ErrNameRequired, status: http.StatusBadRequest, msg: "Department name is required to update"},
		{name: "Duplicate", err: department.ErrDuplicateName, status: http.StatusConflict, msg: "Another department with the same name already exists"},
		{name: "Not Found", err: department.ErrDepartmentNotFound, status: http.StatusNotFound, msg: "Department not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newServer(t, fakeUseCase{err: tt.err})
			status, body := s.do(http.MethodPut, "/api/departments/4", `{"deptt_name":"billing"}`, true)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.msg, body["message"])
		})
	}
}

func TestDetailAndDelete(t *testing.T) {
	s := newServer(t, fakeUseCase{})
	status, body := s.do(http.MethodGet, "/api/departments/4", "", true)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(4), body["deptt_id"])
	assert.Equal(t, "BILLING", body["deptt_name"])

	status, body = s.do(http.MethodDelete, "/api/departments/4", "", true)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Department deleted successfully", body["message"])

	status, body = newServer(t, fakeUseCase{err: department.ErrDepartmentNotFound}).
		do(http.MethodDelete, "/api/departments/4", "", true)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Department not found", body["message"])
}
