package http

import (
	"net/http"

	"complaint-management/internal/middleware"
	"complaint-management/pkg/response"
)

// Create godoc
// @Summary     File a complaint
// @Description The complaint is filed for the authenticated user. Status defaults to Pending.
// @Tags        Complaints
// @Security    BearerAuth
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Complaint"
// @Success     200 {object} response.MessageResp
// @Failure     400 {object} response.ErrorResp
// @Failure     401 {object} response.ErrorResp
// @Router      /api/complaints/new [POST]
func (h *handler) Create(r middleware.AuthedRequest) error {
	req, err := h.processCreateReq(r.Context)
	if err != nil {
		return err
	}

	ctx := r.Request.Context()
	id, err := h.uc.Create(ctx, req.toInput(r.Scope.UserID))
	if err != nil {
		return h.mapError(err)
	}
	h.l.Infof(ctx, "complaint.http.Create: complaint %d by user %d", id, r.Scope.UserID)

	response.Message(r.Context, http.StatusOK, msgCreated)
	return nil
}

// List godoc
// @Summary     List complaints
// @Tags        Complaints
// @Security    BearerAuth
// @Produce     json
// @Success     200 {array} complaintResp
// @Failure     401 {object} response.ErrorResp
// @Router      /api/complaints [GET]
func (h *handler) List(r middleware.AuthedRequest) error {
	cs, err := h.uc.List(r.Request.Context())
	if err != nil {
		return h.mapError(err)
	}
	response.OK(r.Context, newListResp(cs))
	return nil
}

// ListMine godoc
// @Summary     List the caller's complaints
// @Tags        Complaints
// @Security    BearerAuth
// @Produce     json
// @Success     200 {array} complaintResp
// @Failure     401 {object} response.ErrorResp
// @Failure     404 {object} response.ErrorResp
// @Router      /api/complaints/my-complaints [GET]
func (h *handler) ListMine(r middleware.AuthedRequest) error {
	cs, err := h.uc.ListByUser(r.Request.Context(), r.Scope.UserID)
	if err != nil {
		return h.mapError(err)
	}
	response.OK(r.Context, newListResp(cs))
	return nil
}

// Detail godoc
// @Summary     Get a complaint
// @Tags        Complaints
// @Security    BearerAuth
// @Produce     json
// @Param       id path int true "Complaint ID"
// @Success     200 {object} complaintResp
// @Failure     404 {object} response.ErrorResp
// @Router      /api/complaints/{id} [GET]
func (h *handler) Detail(r middleware.AuthedRequest) error {
	id, err := h.processID(r.Context)
	if err != nil {
		return err
	}
	c, err := h.uc.Detail(r.Request.Context(), id)
	if err != nil {
		return h.mapError(err)
	}
	response.OK(r.Context, newComplaintResp(c))
	return nil
}

// Update godoc
// @Summary     Update a complaint
// @Description Only the fields present in the body are changed.
// @Tags        Complaints
// @Security    BearerAuth
// @Accept      json
// @Produce     json
// @Param       id   path int       true "Complaint ID"
// @Param       body body updateReq true "Fields to change"
// @Success     200 {object} response.MessageResp
// @Failure     400 {object} response.ErrorResp
// @Failure     404 {object} response.ErrorResp
// @Router      /api/complaints/{id} [PUT]
func (h *handler) Update(r middleware.AuthedRequest) error {
	id, err := h.processID(r.Context)
	if err != nil {
		return err
	}
	req, err := h.processUpdateReq(r.Context)
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
// @Summary     Delete a complaint
// @Tags        Complaints
// @Security    BearerAuth
// @Produce     json
// @Param       id path int true "Complaint ID"
// @Success     200 {object} response.MessageResp
// @Failure     404 {object} response.ErrorResp
// @Router      /api/complaints/{id} [DELETE]
func (h *handler) Delete(r middleware.AuthedRequest) error {
	id, err := h.processID(r.Context)
	if err != nil {
		return err
	}
	if err := h.uc.Delete(r.Request.Context(), id); err != nil {
		return h.mapError(err)
	}
	response.Message(r.Context, http.StatusOK, msgDeleted)
	return nil
}
