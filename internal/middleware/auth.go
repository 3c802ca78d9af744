package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"complaint-management/internal/model"
	"complaint-management/pkg/response"
)

const (
	authHeader = "Authorization"
	scopeKey   = "middleware.scope"
)

// AuthedRequest pairs a request with the identity resolved by Auth. Handlers
// of protected routes take it instead of a bare *gin.Context.
type AuthedRequest struct {
	*gin.Context
	Scope model.Scope
}

// AuthedHandlerFunc is a protected handler reporting failure by returning an error.
type AuthedHandlerFunc func(r AuthedRequest) error

// Auth verifies the bearer access token and stores the decoded scope for the
// rest of the chain. Failures are forwarded to the error reporter.
func (m Middleware) Auth() gin.HandlerFunc {
	return response.Wrap(func(c *gin.Context) error {
		header := c.GetHeader(authHeader)
		if header == "" {
			return errNoToken
		}

		// "Bearer <token>": the token is the second segment
		parts := strings.Split(header, " ")
		if len(parts) < 2 || parts[1] == "" {
			return errNoToken
		}

		payload, err := m.jwtManager.VerifyAccessToken(parts[1])
		if err != nil {
			m.l.Debugf(c.Request.Context(), "middleware.Auth: %v", err)
			return errInvalidToken
		}

		c.Set(scopeKey, model.Scope{
			UserID:       payload.UserID,
			RoleID:       payload.RoleID,
			IsTeamMember: payload.IsTeamMember,
			Name:         payload.Name,
		})
		return nil
	})
}

// Authed adapts a protected handler to gin. It must run after Auth; a request
// that reaches it without a scope is rejected as unauthenticated.
func Authed(h AuthedHandlerFunc) gin.HandlerFunc {
	return response.Wrap(func(c *gin.Context) error {
		sc, ok := ScopeFromContext(c)
		if !ok {
			return errNoToken
		}
		return h(AuthedRequest{Context: c, Scope: sc})
	})
}

// ScopeFromContext returns the scope stored by Auth.
func ScopeFromContext(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
