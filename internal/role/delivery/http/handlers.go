package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"complaint-management/pkg/response"
)

// Create godoc
// @Summary     Create a role
// @Tags        Roles
// @Accept      json
// @Produce     json
// @Param       body body roleReq true "Role"
// @Success     201 {object} response.MessageResp
// @Failure     400 {object} response.ErrorResp
// @Failure     409 {object} response.ErrorResp
// @Failure     500 {object} response.ErrorResp
// @Router      /api/roles/new [POST]
func (h *handler) Create(c *gin.Context) error {
	req, err := h.processRoleReq(c)
	if err != nil {
		return err
	}

	if _, err := h.uc.Create(c.Request.Context(), req.toCreateInput()); err != nil {
		return h.mapError(err)
	}

	response.Message(c, http.StatusCreated, msgCreated)
	return nil
}

// List godoc
// @Summary     List roles
// @Tags        Roles
// @Produce     json
// @Success     200 {array}  roleResp
// @Failure     500 {object} response.ErrorResp
// @Router      /api/roles [GET]
func (h *handler) List(c *gin.Context) error {
	roles, err := h.uc.List(c.Request.Context())
	if err != nil {
		return h.mapError(err)
	}
	response.OK(c, newListResp(roles))
	return nil
}

// Detail godoc
// @Summary     Get a role
// @Tags        Roles
// @Produce     json
// @Param       id path int true "Role ID"
// @Success     200 {object} roleResp
// @Failure     404 {object} response.ErrorResp
// @Failure     500 {object} response.ErrorResp
// @Router      /api/roles/{id} [GET]
func (h *handler) Detail(c *gin.Context) error {
	id, err := h.processID(c)
	if err != nil {
		return err
	}

	r, err := h.uc.Detail(c.Request.Context(), id)
	if err != nil {
		return h.mapError(err)
	}
	response.OK(c, newRoleResp(r))
	return nil
}

// Update godoc
// @Summary     Rename a role
// @Tags        Roles
// @Accept      json
// @Produce     json
// @Param       id   path int     true "Role ID"
// @Param       body body roleReq true "Role"
// @Success     200 {object} response.MessageResp
// @Failure     400 {object} response.ErrorResp
// @Failure     404 {object} response.ErrorResp
// @Failure     409 {object} response.ErrorResp
// @Failure     500 {object} response.ErrorResp
// @Router      /api/roles/{id} [PUT]
func (h *handler) Update(c *gin.Context) error {
	id, err := h.processID(c)
	if err != nil {
		return err
	}
	req, err := h.processRoleReq(c)
	if err != nil {
		return err
	}

	if err := h.uc.Update(c.Request.Context(), req.toUpdateInput(id)); err != nil {
		return h.mapError(err)
	}
	response.Message(c, http.StatusOK, msgUpdated)
	return nil
}

// Delete godoc
// @Summary     Delete a role
// @Tags        Roles
// @Produce     json
// @Param       id path int true "Role ID"
// @Success     200 {object} response.MessageResp
// @Failure     404 {object} response.ErrorResp
// @Failure     500 {object} response.ErrorResp
// @Router      /api/roles/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) error {
	id, err := h.processID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request.Context(), id); err != nil {
		return h.mapError(err)
	}
	response.Message(c, http.StatusOK, msgDeleted)
	return nil
}
