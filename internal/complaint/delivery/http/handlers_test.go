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

	"complaint-management/internal/complaint"
	complaintHTTP "complaint-management/internal/complaint/delivery/http"
	"complaint-management/internal/middleware"
	"complaint-management/pkg/log"
	"complaint-management/pkg/scope"
)

type fakeUseCase struct {
	complaint.UseCase
	err     error
	created complaint.CreateInput
	updated complaint.UpdateInput
	mineFor int64
}

func (f *fakeUseCase) Create(ctx context.Context, input complaint.CreateInput) (int64, error) {
	f.created = input
	return 1, f.err
}

func (f *fakeUseCase) List(ctx context.Context) ([]complaint.Complaint, error) {
	return []complaint.Complaint{{ID: 1, Detail: "no water", Status: "Pending", DepartmentName: "WATER", IssueType: "SUPPLY"}}, f.err
}

func (f *fakeUseCase) ListByUser(ctx context.Context, userID int64) ([]complaint.Complaint, error) {
	f.mineFor = userID
	if f.err != nil {
		return nil, f.err
	}
	return []complaint.Complaint{{ID: 1, UserID: userID, UserName: "Ravi"}}, nil
}

func (f *fakeUseCase) Detail(ctx context.Context, id int64) (complaint.Complaint, error) {
	return complaint.Complaint{ID: id, Status: "Pending"}, f.err
}

func (f *fakeUseCase) Update(ctx context.Context, input complaint.UpdateInput) error {
	f.updated = input
	return f.err
}

func (f *fakeUseCase) Delete(ctx context.Context, id int64) error { return f.err }

type testServer struct {
	r     *gin.Engine
	token string
}

func newServer(t *testing.T, uc complaint.UseCase) testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtManager, err := scope.New(scope.Config{AccessSecret: "a-secret", RefreshSecret: "r-secret"})
	require.NoError(t, err)
	token, err := jwtManager.CreateAccessToken(scope.Payload{UserID: 9, RoleID: 2, Name: "Ravi"})
	require.NoError(t, err)

	l := log.NewNop()
	mw := middleware.New(l, jwtManager)
	r := gin.New()
	r.Use(mw.ErrorReporter())
	complaintHTTP.RegisterRoutes(r.Group("/api"), complaintHTTP.New(l, uc), mw)
	return testServer{r: r, token: token}
}

func (s testServer) do(method, path, body string) (int, []byte) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.token)
	w := httptest.NewRecorder()
	s.r.ServeHTTP(w, req)
	return w.Code, w.Body.Bytes()
}

func message(t *testing.T, raw []byte) string {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	msg, _ := body["message"].(string)
	return msg
}

func TestCreateUsesCaller(t *testing.T) {
	uc := &fakeUseCase{}
	status, raw := newServer(t, uc).do(http.MethodPost, "/api/complaints/new",
		`{"department_id":1,"issue_id":2,"complaint_detail":"no water","user_id":77}`)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Complaint created successfully", message(t, raw))
	assert.Equal(t, int64(9), uc.created.UserID)
	assert.Equal(t, "no water", uc.created.Detail)
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		body   string
		err    error
		status int
		msg    string
	}{
		{name: "Create Missing Fields", method: http.MethodPost, path: "/api/complaints/new", body: `{}`, err: complaint.ErrFieldsRequired, status: http.StatusBadRequest, msg: "department_id, issue_id and complaint_detail are required"},
		{name: "Create Blank Detail", method: http.MethodPost, path: "/api/complaints/new", body: `{}`, err: complaint.ErrEmptyDetail, status: http.StatusBadRequest, msg: "complaint_detail cannot be empty"},
		{name: "Update No Fields", method: http.MethodPut, path: "/api/complaints/3", body: `{}`, err: complaint.ErrNoUpdateFields, status: http.StatusBadRequest, msg: "At least one field is required to update"},
		{name: "Update Missing", method: http.MethodPut, path: "/api/complaints/3", body: `{"status":"Resolved"}`, err: complaint.ErrComplaintNotFound, status: http.StatusNotFound, msg: "Complaint not found"},
		{name: "Mine Empty", method: http.MethodGet, path: "/api/complaints/my-complaints", err: complaint.ErrNoUserComplaints, status: http.StatusNotFound, msg: "No complaints found for this user"},
		{name: "Detail Missing", method: http.MethodGet, path: "/api/complaints/3", err: complaint.ErrComplaintNotFound, status: http.StatusNotFound, msg: "Complaint not found"},
		{name: "Detail Bad ID", method: http.MethodGet, path: "/api/complaints/abc", status: http.StatusNotFound, msg: "Complaint not found"},
		{name: "Delete Missing", method: http.MethodDelete, path: "/api/complaints/3", err: complaint.ErrComplaintNotFound, status: http.StatusNotFound, msg: "Complaint not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, raw := newServer(t, &fakeUseCase{err: tt.err}).do(tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.msg, message(t, raw))
		})
	}
}

func TestUpdatePartial(t *testing.T) {
	uc := &fakeUseCase{}
	status, raw := newServer(t, uc).do(http.MethodPut, "/api/complaints/3", `{"status":"Resolved"}`)

	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Complaint updated successfully", message(t, raw))
	assert.Equal(t, int64(3), uc.updated.ID)
	require.NotNil(t, uc.updated.Status)
	assert.Equal(t, "Resolved", *uc.updated.Status)
	assert.Nil(t, uc.updated.Detail)
	assert.Nil(t, uc.updated.DepartmentID)
}

func TestListing(t *testing.T) {
	uc := &fakeUseCase{}
	s := newServer(t, uc)

	status, raw := s.do(http.MethodGet, "/api/complaints", "")
	require.Equal(t, http.StatusOK, status)
	var all []map[string]any
	require.NoError(t, json.Unmarshal(raw, &all))
	require.Len(t, all, 1)
	assert.Equal(t, "WATER", all[0]["deptt_name"])
	assert.Equal(t, "SUPPLY", all[0]["issue_type"])
	assert.NotContains(t, all[0], "user_name")

	status, raw = s.do(http.MethodGet, "/api/complaints/my-complaints", "")
	require.Equal(t, http.StatusOK, status)
	var mine []map[string]any
	require.NoError(t, json.Unmarshal(raw, &mine))
	require.Len(t, mine, 1)
	assert.Equal(t, "Ravi", mine[0]["user_name"])
	assert.Equal(t, int64(9), uc.mineFor)

	status, raw = s.do(http.MethodDelete, "/api/complaints/1", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Complaint deleted successfully", message(t, raw))
}
