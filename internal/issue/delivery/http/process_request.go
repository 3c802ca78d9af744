package http

import (
	"github.com/gin-gonic/gin"

	"complaint-management/pkg/request"
)

func (h *handler) processIssueReq(c *gin.Context) (issueReq, error) {
	var req issueReq
	err := request.BindJSON(c, &req)
	return req, err
}

func (h *handler) processID(c *gin.Context) (int64, error) {
	id, ok := request.ParamID(c, "id")
	if !ok {
		return 0, errNotFound
	}
	return id, nil
}
