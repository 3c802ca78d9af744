package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "complaint-management/pkg/errors"
)

// OK sends 200 JSON with data as the whole body.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created sends 201 JSON with data as the whole body.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// Message sends a {message} body with the given status.
func Message(c *gin.Context, status int, message string) {
	c.JSON(status, MessageResp{Message: message})
}

// Error sends the uniform {success:false, message} body for err. The status
// and message come from pkg/errors.Resolve.
func Error(c *gin.Context, err error) {
	status, message := pkgErrors.Resolve(err)
	c.JSON(status, NewErrorResp(message))
}
