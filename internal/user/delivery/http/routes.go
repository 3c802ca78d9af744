package http

import (
	"github.com/gin-gonic/gin"

	"complaint-management/internal/middleware"
	"complaint-management/pkg/response"
)

// RegisterRoutes mounts the user endpoints. Registration and the session
// routes are public; loginLimit guards the login route.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware, loginLimit gin.HandlerFunc) {
	users := rg.Group("/users")
	{
		users.POST("/new", response.Wrap(h.Create))
		users.POST("/login", loginLimit, response.Wrap(h.Login))
		users.GET("/refresh", response.Wrap(h.Refresh))
		users.POST("/logout", response.Wrap(h.Logout))

		users.GET("", mw.Auth(), middleware.Authed(h.List))
		users.GET("/:id", mw.Auth(), middleware.Authed(h.Detail))
		users.PUT("/:id", mw.Auth(), middleware.Authed(h.Update))
		users.DELETE("/:id", mw.Auth(), middleware.Authed(h.Delete))
	}
}
