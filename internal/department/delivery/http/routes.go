package http

import (
	"github.com/gin-gonic/gin"

	"complaint-management/internal/middleware"
)

// RegisterRoutes mounts the department endpoints behind bearer auth.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	depts := rg.Group("/departments", mw.Auth())
	{
		depts.POST("/new", middleware.Authed(h.Create))
		depts.GET("", middleware.Authed(h.List))
		depts.GET("/:id", middleware.Authed(h.Detail))
		depts.PUT("/:id", middleware.Authed(h.Update))
		depts.DELETE("/:id", middleware.Authed(h.Delete))
	}
}
