package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"complaint-management/internal/middleware"
	pkgErrors "complaint-management/pkg/errors"
	"complaint-management/pkg/log"
	"complaint-management/pkg/response"
	"complaint-management/pkg/scope"
)

const (
	accessSecret  = "access-secret"
	refreshSecret = "refresh-secret"
)

func newManager(t *testing.T) scope.Manager {
	t.Helper()
	m, err := scope.New(scope.Config{AccessSecret: accessSecret, RefreshSecret: refreshSecret})
	require.NoError(t, err)
	return m
}

func newEngine(t *testing.T) (*gin.Engine, scope.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtManager := newManager(t)
	mw := middleware.New(log.NewNop(), jwtManager)

	r := gin.New()
	r.Use(mw.ErrorReporter(), mw.Recovery(), mw.RequestID())

	protected := r.Group("/protected", mw.Auth())
	protected.GET("", middleware.Authed(func(req middleware.AuthedRequest) error {
		response.OK(req.Context, gin.H{"id": req.Scope.UserID, "name": req.Scope.Name})
		return nil
	}))

	r.GET("/fail", response.Wrap(func(c *gin.Context) error {
		return pkgErrors.NewConflictError("Role name already exists.")
	}))
	r.GET("/boom", response.Wrap(func(c *gin.Context) error {
		panic("boom")
	}))
	r.GET("/plain", response.Wrap(func(c *gin.Context) error {
		return errors.New("mssql: connection reset")
	}))
	r.GET("/unwrapped", func(c *gin.Context) {
		panic("outside wrap")
	})
	r.GET("/no-auth", middleware.Authed(func(req middleware.AuthedRequest) error {
		return nil
	}))

	return r, jwtManager
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) response.ErrorResp {
	t.Helper()
	var body response.ErrorResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func do(r *gin.Engine, path, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth(t *testing.T) {
	r, jwtManager := newEngine(t)

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  1,
		"exp": time.Now().Add(-time.Minute).Unix(),
	}).SignedString([]byte(accessSecret))
	require.NoError(t, err)

	refresh, err := jwtManager.CreateRefreshToken(1)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		msg    string
	}{
		{name: "Missing Header", header: "", msg: "No token"},
		{name: "Malformed Header", header: "Bearer", msg: "No token"},
		{name: "Empty Token Segment", header: "Bearer ", msg: "No token"},
		{name: "Garbage Token", header: "Bearer not-a-jwt", msg: "Invalid token"},
		{name: "Expired Token", header: "Bearer " + expired, msg: "Invalid token"},
		{name: "Refresh Token Used As Access", header: "Bearer " + refresh, msg: "Invalid token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, "/protected", tt.header)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			body := decodeError(t, w)
			assert.False(t, body.Success)
			assert.Equal(t, tt.msg, body.Message)
		})
	}

	t.Run("Valid Token", func(t *testing.T) {
		token, err := jwtManager.CreateAccessToken(scope.Payload{UserID: 7, RoleID: 2, Name: "Asha"})
		require.NoError(t, err)

		w := do(r, "/protected", "Bearer "+token)
		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, float64(7), body["id"])
		assert.Equal(t, "Asha", body["name"])
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("Authed Without Auth", func(t *testing.T) {
		w := do(r, "/no-auth", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "No token", decodeError(t, w).Message)
	})
}

func TestErrorReporter(t *testing.T) {
	r, _ := newEngine(t)

	t.Run("HTTPError Keeps Status And Message", func(t *testing.T) {
		w := do(r, "/fail", "")
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, response.ErrorResp{Success: false, Message: "Role name already exists."}, decodeError(t, w))
	})

	t.Run("Plain Error Becomes 500", func(t *testing.T) {
		w := do(r, "/plain", "")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Internal Server Error", decodeError(t, w).Message)
	})

	t.Run("Panic In Wrapped Handler", func(t *testing.T) {
		w := do(r, "/boom", "")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Internal Server Error", decodeError(t, w).Message)
	})

	t.Run("Panic Outside Wrap", func(t *testing.T) {
		w := do(r, "/unwrapped", "")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.False(t, decodeError(t, w).Success)
	})

	t.Run("Request ID Propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/fail", nil)
		req.Header.Set("X-Request-ID", "req-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))
	})
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw := middleware.New(log.NewNop(), newManager(t))

	r := gin.New()
	r.Use(mw.ErrorReporter())
	r.POST("/login", mw.RateLimit(1, 2, 10), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// a different client has its own bucket
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
