package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "complaint-management/pkg/errors"
	"complaint-management/pkg/response"
)

// ErrorReporter is the single place where error responses are rendered. It
// must be the first middleware so it observes every forwarded error.
func (m Middleware) ErrorReporter() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status, message := pkgErrors.Resolve(err)

		ctx := c.Request.Context()
		if status >= http.StatusInternalServerError {
			m.l.Errorf(ctx, "middleware.ErrorReporter: %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		} else {
			m.l.Infof(ctx, "middleware.ErrorReporter: %s %s -> %d %s", c.Request.Method, c.Request.URL.Path, status, message)
		}

		response.Error(c, err)
	}
}

// Recovery turns a panic outside response.Wrap into a forwarded error.
func (m Middleware) Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		_ = c.Error(fmt.Errorf("panic: %v", recovered))
		c.Abort()
	})
}
