package http

import (
	"github.com/gin-gonic/gin"

	"complaint-management/pkg/request"
)

func (h *handler) processServiceTypeReq(c *gin.Context) (serviceTypeReq, error) {
	var req serviceTypeReq
	if err := request.BindJSON(c, &req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processID(c *gin.Context) (int64, error) {
	id, ok := request.ParamID(c, "id")
	if !ok {
		return 0, errNotFound
	}
	return id, nil
}
