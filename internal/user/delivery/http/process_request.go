package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"complaint-management/pkg/request"
)

const (
	cookieRefresh = "rtk"
	cookieAccess  = "accessToken"
)

func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	err := request.BindJSON(c, &req)
	return req, err
}

func (h *handler) processUpdateReq(c *gin.Context) (int64, updateReq, error) {
	var req updateReq
	id, ok := request.ParamID(c, "id")
	if !ok {
		return 0, req, errNotFound
	}
	if err := request.BindJSON(c, &req); err != nil {
		return 0, req, err
	}
	return id, req, nil
}

func (h *handler) processLoginReq(c *gin.Context) (loginReq, error) {
	var req loginReq
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

// setSessionCookies writes both tokens as HttpOnly, SameSite=None cookies.
// A negative maxAge deletes them.
func (h *handler) setSessionCookies(c *gin.Context, accessToken, refreshToken string, maxAge int) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(cookieRefresh, refreshToken, maxAge, "/", h.cookie.Domain, h.cookie.Secure, true)
	c.SetCookie(cookieAccess, accessToken, maxAge, "/", h.cookie.Domain, h.cookie.Secure, true)
}

func (h *handler) cookieMaxAge() int {
	return int(h.cookie.MaxAge.Seconds())
}
