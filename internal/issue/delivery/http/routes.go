package http

import (
	"github.com/gin-gonic/gin"

	"complaint-management/internal/middleware"
)

// RegisterRoutes mounts the issue endpoints behind bearer auth.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	issues := rg.Group("/issues", mw.Auth())
	{
		issues.POST("/new", middleware.Authed(h.Create))
		issues.GET("", middleware.Authed(h.List))
		issues.GET("/:id", middleware.Authed(h.Detail))
		issues.PUT("/:id", middleware.Authed(h.Update))
		issues.DELETE("/:id", middleware.Authed(h.Delete))
	}
}
