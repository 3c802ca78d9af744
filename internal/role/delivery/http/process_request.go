package http

import (
	"github.com/gin-gonic/gin"

	"complaint-management/pkg/request"
)

func (h *handler) processRoleReq(c *gin.Context) (roleReq, error) {
	var req roleReq
	if err := request.BindJSON(c, &req); err != nil {
		return req, err
	}
	return req, nil
}

// processID reads the :id parameter. An id that cannot name a role is
// reported like a missing one.
func (h *handler) processID(c *gin.Context) (int64, error) {
	id, ok := request.ParamID(c, "id")
	if !ok {
		return 0, errNotFound
	}
	return id, nil
}
