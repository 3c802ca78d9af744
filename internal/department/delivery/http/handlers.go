package http

import (
	"net/http"

	"complaint-management/internal/department"
	"complaint-management/internal/middleware"
	"complaint-management/pkg/response"
)

// Create godoc
// @Summary     Create a department
// @Tags        Departments
// @Security    BearerAuth
// @Accept      json
// @Produce     json
// @Param       body body departmentReq true "Department"
// @Success     200 {object} response.MessageResp
// @Failure     400 {object} response.ErrorResp
// @Failure     401 {object} response.ErrorResp
// @Failure     409 {object} response.ErrorResp
// @Router      /api/departments/new [POST]
func (h *handler) Create(r middleware.AuthedRequest) error {
	req, err := h.processDepartmentReq(r.Context)
	if err != nil {
		return err
	}

	ctx := r.Request.Context()
	if _, err := h.uc.Create(ctx, department.CreateInput{Name: req.Name}); err != nil {
		return h.mapError(err)
	}
	h.l.Infof(ctx, "department.http.Create: by user %d", r.Scope.UserID)

	response.Message(r.Context, http.StatusOK, msgCreated)
	return nil
}

// List godoc
// @Summary     List departments
// @Tags        Departments
// @Security    BearerAuth
// @Produce     json
// @Success     200 {array} departmentResp
// @Failure     401 {object} response.ErrorResp
// @Router      /api/departments [GET]
func (h *handler) List(r middleware.AuthedRequest) error {
	depts, err := h.uc.List(r.Request.Context())
	if err != nil {
		return h.mapError(err)
	}
	response.OK(r.Context, newListResp(depts))
	return nil
}

// Detail godoc
// @Summary     Get a department
// @Tags        Departments
// @Security    BearerAuth
// @Produce     json
// @Param       id path int true "Department ID"
// @Success     200 {object} departmentResp
// @Failure     404 {object} response.ErrorResp
// @Router      /api/departments/{id} [GET]
func (h *handler) Detail(r middleware.AuthedRequest) error {
	id, err := h.processID(r.Context)
	if err != nil {
		return err
	}
	d, err := h.uc.Detail(r.Request.Context(), id)
	if err != nil {
		return h.mapError(err)
	}
	response.OK(r.Context, newDepartmentResp(d))
	return nil
}

// Update godoc
// @Summary     Rename a department
// @Tags        Departments
// @Security    BearerAuth
// @Accept      json
// @Produce     json
// @Param       id   path int           true "Department ID"
// @Param       body body departmentReq true "Department"
// @Success     200 {object} response.MessageResp
// @Failure     400 {object} response.ErrorResp
// @Failure     404 {object} response.ErrorResp
// @Failure     409 {object} response.ErrorResp
// @Router      /api/departments/{id} [PUT]
func (h *handler) Update(r middleware.AuthedRequest) error {
	id, err := h.processID(r.Context)
	if err != nil {
		return err
	}
	req, err := h.processDepartmentReq(r.Context)
	if err != nil {
		return err
	}

	if err := h.uc.Update(r.Request.Context(), department.UpdateInput{ID: id, Name: req.Name}); err != nil {
		return h.mapUpdateError(err)
	}
	response.Message(r.Context, http.StatusOK, msgUpdated)
	return nil
}

// Delete godoc
// @Summary     Delete a department
// @Tags        Departments
// @Security    BearerAuth
// @Produce     json
// @Param       id path int true "Department ID"
// @Success     200 {object} response.MessageResp
// @Failure     404 {object} response.ErrorResp
// @Router      /api/departments/{id} [DELETE]
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
