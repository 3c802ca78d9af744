package http

import (
	"github.com/gin-gonic/gin"

	"complaint-management/internal/middleware"
)

// RegisterRoutes mounts the complaint endpoints behind bearer auth.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	complaints := rg.Group("/complaints", mw.Auth())
	{
		complaints.POST("/new", middleware.Authed(h.Create))
		complaints.GET("", middleware.Authed(h.List))
		complaints.GET("/my-complaints", middleware.Authed(h.ListMine))
		complaints.GET("/:id", middleware.Authed(h.Detail))
		complaints.PUT("/:id", middleware.Authed(h.Update))
		complaints.DELETE("/:id", middleware.Authed(h.Delete))
	}
}
