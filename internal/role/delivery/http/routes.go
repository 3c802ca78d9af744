package http

import (
	"github.com/gin-gonic/gin"

	"complaint-management/pkg/response"
)

// RegisterRoutes mounts the role endpoints. They are public.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	roles := rg.Group("/roles")
	{
		roles.POST("/new", response.Wrap(h.Create))
		roles.GET("", response.Wrap(h.List))
		roles.GET("/:id", response.Wrap(h.Detail))
		roles.PUT("/:id", response.Wrap(h.Update))
		roles.DELETE("/:id", response.Wrap(h.Delete))
	}
}
