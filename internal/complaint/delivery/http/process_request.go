package http

import (
	"github.com/gin-gonic/gin"

	"complaint-management/pkg/request"
)

func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	err := request.BindJSON(c, &req)
	return req, err
}

func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
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
