package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"complaint-management/internal/middleware"
	"complaint-management/pkg/response"
)

// Create godoc
// @Summary     Register a user
// @Description The initial password is the last four digits of the phone.
// @Tags        Users
// @Accept      json
// @Produce     json
// @Param       body body createReq true "User"
// @Success     201 {object} createResp
// @Failure     400 {object} response.ErrorResp
// @Failure     409 {object} response.ErrorResp
// @Router      /api/users/new [POST]
func (h *handler) Create(c *gin.Context) error {
	req, err := h.processCreateReq(c)
	if err != nil {
		return err
	}

	id, err := h.uc.Create(c.Request.Context(), req.toInput())
	if err != nil {
		return h.mapError(err)
	}
	response.Created(c, createResp{Message: msgCreated, UserID: id})
	return nil
}

// List godoc
// @Summary     List users
// @Tags        Users
// @Security    BearerAuth
// @Produce     json
// @Success     200 {array} userResp
// @Failure     401 {object} response.ErrorResp
// @Router      /api/users [GET]
func (h *handler) List(r middleware.AuthedRequest) error {
	users, err := h.uc.List(r.Request.Context())
	if err != nil {
		return h.mapError(err)
	}
	response.OK(r.Context, newListResp(users))
	return nil
}

// Detail godoc
// @Summary     Get a user
// @Tags        Users
// @Security    BearerAuth
// @Produce     json
// @Param       id path int true "User ID"
// @Success     200 {object} userResp
// @Failure     404 {object} response.ErrorResp
// @Router      /api/users/{id} [GET]
func (h *handler) Detail(r middleware.AuthedRequest) error {
	id, err := h.processID(r.Context)
	if err != nil {
		return err
	}
	u, err := h.uc.Detail(r.Request.Context(), id)
	if err != nil {
		return h.mapError(err)
	}
	response.OK(r.Context, newUserResp(u))
	return nil
}

// Update godoc
// @Summary     Update a user
// @Description Partial update: omitted fields keep their value.
// @Tags        Users
// @Security    BearerAuth
// @Accept      json
// @Produce     json
// @Param       id   path int       true "User ID"
// @Param       body body updateReq true "Fields to change"
// @Success     200 {object} response.MessageResp
// @Failure     404 {object} response.ErrorResp
// @Failure     409 {object} response.ErrorResp
// @Router      /api/users/{id} [PUT]
func (h *handler) Update(r middleware.AuthedRequest) error {
	id, req, err := h.processUpdateReq(r.Context)
	if err != nil {
		return err
	}
	if err := h.uc.Update(r.Request.Context(), req.toInput(id)); err != nil {
		return h.mapError(err)
	}
	response.Message(r.Context, http.StatusOK, msgUpdated)
	return nil
}

// Delete godoc
// @Summary     Delete a user
// @Tags        Users
// @Security    BearerAuth
// @Produce     json
// @Param       id path int true "User ID"
// @Success     200 {object} response.MessageResp
// @Failure     404 {object} response.ErrorResp
// @Router      /api/users/{id} [DELETE]
func (h *handler) Delete(r middleware.AuthedRequest) error {
	id, err := h.processID(r.Context)
	if err != nil {
		return err
	}
	if err := h.uc.Delete(r.Request.Context(), id); err != nil {
		return h.mapError(err)
	}
	h.l.Infof(r.Request.Context(), "user.http.Delete: user %d removed by %d", id, r.Scope.UserID)
	response.Message(r.Context, http.StatusOK, msgDeleted)
	return nil
}

// Login godoc
// @Summary     Log in
// @Description Sets the rtk and accessToken cookies.
// @Tags        Session
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Credentials"
// @Success     200 {object} loginResp
// @Failure     401 {object} response.ErrorResp
// @Failure     429 {object} response.ErrorResp
// @Router      /api/users/login [POST]
func (h *handler) Login(c *gin.Context) error {
	req, err := h.processLoginReq(c)
	if err != nil {
		return err
	}

	out, err := h.uc.Login(c.Request.Context(), req.toInput())
	if err != nil {
		return h.mapError(err)
	}

	h.setSessionCookies(c, out.AccessToken, out.RefreshToken, h.cookieMaxAge())
	response.OK(c, newLoginResp(out))
	return nil
}

// Refresh godoc
// @Summary     Issue a new access token from the rtk cookie
// @Tags        Session
// @Produce     json
// @Success     200 {object} refreshResp
// @Failure     401 {object} response.ErrorResp
// @Router      /api/users/refresh [GET]
func (h *handler) Refresh(c *gin.Context) error {
	token, _ := c.Cookie(cookieRefresh)

	accessToken, err := h.uc.Refresh(c.Request.Context(), token)
	if err != nil {
		return h.mapError(err)
	}
	response.OK(c, refreshResp{AccessToken: accessToken})
	return nil
}

// Logout godoc
// @Summary     Log out
// @Description Clears the session cookies and the stored refresh token.
// @Tags        Session
// @Produce     json
// @Success     200 {object} response.MessageResp
// @Router      /api/users/logout [POST]
func (h *handler) Logout(c *gin.Context) error {
	token, _ := c.Cookie(cookieRefresh)

	if err := h.uc.Logout(c.Request.Context(), token); err != nil {
		return h.mapError(err)
	}
	h.setSessionCookies(c, "", "", -1)
	response.Message(c, http.StatusOK, msgLoggedOut)
	return nil
}
