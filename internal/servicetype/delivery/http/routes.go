package http

import (
	"github.com/gin-gonic/gin"

	"complaint-management/pkg/response"
)

// RegisterRoutes mounts the public service type endpoints.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	sts := rg.Group("/service-types")
	{
		sts.POST("/new", response.Wrap(h.Create))
		sts.GET("", response.Wrap(h.List))
		sts.GET("/:id", response.Wrap(h.Detail))
		sts.PUT("/:id", response.Wrap(h.Update))
		sts.DELETE("/:id", response.Wrap(h.Delete))
	}
}
