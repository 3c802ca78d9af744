package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"complaint-management/pkg/response"
)

// Create godoc
// @Summary     Create a service type under an issue
// @Tags        ServiceTypes
// @Accept      json
// @Produce     json
// @Param       body body serviceTypeReq true "Service type"
// @Success     201 {object} response.MessageResp
// @Failure     400 {object} response.ErrorResp
// @Failure     404 {object} response.ErrorResp "Issue not found"
// @Failure     409 {object} response.ErrorResp
// @Router      /api/service-types/new [POST]
func (h *handler) Create(c *gin.Context) error {
	req, err := h.processServiceTypeReq(c)
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
// @Summary     List service types with their issue type
// @Tags        ServiceTypes
// @Produce     json
// @Success     200 {array} serviceTypeResp
// @Router      /api/service-types [GET]
func (h *handler) List(c *gin.Context) error {
	sts, err := h.uc.List(c.Request.Context())
	if err != nil {
		return h.mapError(err)
	}
	response.OK(c, newListResp(sts))
	return nil
}

// Detail godoc
// @Summary     Get a service type
// @Tags        ServiceTypes
// @Produce     json
// @Param       id path int true "Service type ID"
// @Success     200 {object} serviceTypeResp
// @Failure     404 {object} response.ErrorResp
// @Router      /api/service-types/{id} [GET]
func (h *handler) Detail(c *gin.Context) error {
	id, err := h.processID(c)
	if err != nil {
		return err
	}
	st, err := h.uc.Detail(c.Request.Context(), id)
	if err != nil {
		return h.mapError(err)
	}
	response.OK(c, newServiceTypeResp(st))
	return nil
}

// Update godoc
// @Summary     Update a service type
// @Tags        ServiceTypes
// @Accept      json
// @Produce     json
// @Param       id   path int            true "Service type ID"
// @Param       body body serviceTypeReq true "Service type"
// @Success     200 {object} response.MessageResp
// @Failure     400 {object} response.ErrorResp
// @Failure     404 {object} response.ErrorResp
// @Failure     409 {object} response.ErrorResp
// @Router      /api/service-types/{id} [PUT]
func (h *handler) Update(c *gin.Context) error {
	id, err := h.processID(c)
	if err != nil {
		return err
	}
	req, err := h.processServiceTypeReq(c)
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
// @Summary     Delete a service type
// @Tags        ServiceTypes
// @Produce     json
// @Param       id path int true "Service type ID"
// @Success     200 {object} response.MessageResp
// @Failure     404 {object} response.ErrorResp
// @Router      /api/service-types/{id} [DELETE]
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
