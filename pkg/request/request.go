package request

import (
	"errors"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"

	pkgErrors "complaint-management/pkg/errors"
)

// ErrInvalidBody is reported when the request body is not the expected JSON.
var ErrInvalidBody = pkgErrors.NewValidationError("Invalid request body")

// BindJSON decodes the body into dst. An empty body leaves dst untouched so
// the caller's field checks produce the entity-specific message.
func BindJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return ErrInvalidBody
	}
	return nil
}

// ParamID parses the named path parameter as a positive integer id.
func ParamID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
