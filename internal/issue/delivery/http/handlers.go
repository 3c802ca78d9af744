package http

import (
	"net/http"

	"complaint-management/internal/issue"
	"complaint-management/internal/middleware"
	"complaint-management/pkg/response"
)

// Create godoc
// @Summary     Create an issue
// @Tags        Issues
// @Security    BearerAuth
// @Accept      json
// @Produce     json
// @Param       body body issueReq true "Issue"
// @Success     200 {object} response.MessageResp
// @Failure     400 {object} response.ErrorResp
// @Failure     401 {object} response.ErrorResp
// @Failure     409 {object} response.ErrorResp
// @Router      /api/issues/new [POST]
func (h *handler) Create(r middleware.AuthedRequest) error {
	req, err := h.processIssueReq(r.Context)
	if err != nil {
		return err
	}

	if _, err := h.uc.Create(r.Request.Context(), issue.CreateInput{Type: req.Type}); err != nil {
		return h.mapError(err)
	}

	response.Message(r.Context, http.StatusOK, msgCreated)
	return nil
}

// List godoc
// @Summary     List issues
// @Tags        Issues
// @Security    BearerAuth
// @Produce     json
// @Success     200 {array} issueResp
// @Failure     401 {object} response.ErrorResp
// @Router      /api/issues [GET]
func (h *handler) List(r middleware.AuthedRequest) error {
	issues, err := h.uc.List(r.Request.Context())
	if err != nil {
		return h.mapError(err)
	}
	response.OK(r.Context, newListResp(issues))
	return nil
}

// Detail godoc
// @Summary     Get an issue
// @Tags        Issues
// @Security    BearerAuth
// @Produce     json
// @Param       id path int true "Issue ID"
// @Success     200 {object} issueResp
// @Failure     404 {object} response.ErrorResp
// @Router      /api/issues/{id} [GET]
func (h *handler) Detail(r middleware.AuthedRequest) error {
	id, err := h.processID(r.Context)
	if err != nil {
		return err
	}
	it, err := h.uc.Detail(r.Request.Context(), id)
	if err != nil {
		return h.mapError(err)
	}
	response.OK(r.Context, newIssueResp(it))
	return nil
}

// Update godoc
// @Summary     Change an issue type
// @Tags        Issues
// @Security    BearerAuth
// @Accept      json
// @Produce     json
// @Param       id   path int           true "Issue ID"
// @Param       body body issueReq true "Issue"
// @Success     200 {object} response.MessageResp
// @Failure     400 {object} response.ErrorResp
// @Failure     404 {object} response.ErrorResp
// @Failure     409 {object} response.ErrorResp
// @Router      /api/issues/{id} [PUT]
func (h *handler) Update(r middleware.AuthedRequest) error {
	id, err := h.processID(r.Context)
	if err != nil {
		return err
	}
	req, err := h.processIssueReq(r.Context)
	if err != nil {
		return err
	}

	if err := h.uc.Update(r.Request.Context(), issue.UpdateInput{ID: id, Type: req.Type}); err != nil {
		return h.mapUpdateError(err)
	}
	response.Message(r.Context, http.StatusOK, msgUpdated)
	return nil
}

// Delete godoc
// @Summary     Delete an issue
// @Tags        Issues
// @Security    BearerAuth
// @Produce     json
// @Param       id path int true "Issue ID"
// @Success     200 {object} response.MessageResp
// @Failure     404 {object} response.ErrorResp
// @Router      /api/issues/{id} [DELETE]
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
