package http

import (
	"complaint-management/internal/complaint"
	pkgErrors "complaint-management/pkg/errors"
)

var (
	errFieldsRequired   = pkgErrors.NewValidationError("department_id, issue_id and complaint_detail are required")
	errEmptyDetail      = pkgErrors.NewValidationError("complaint_detail cannot be empty")
	errNoUpdateFields   = pkgErrors.NewValidationError("At least one field is required to update")
	errNotFound         = pkgErrors.NewNotFoundError("Complaint not found")
	errNoUserComplaints = pkgErrors.NewNotFoundError("No complaints found for this user")
)

func (h *handler) mapError(err error) error {
	switch err {
	case complaint.ErrFieldsRequired:
		return errFieldsRequired
	case complaint.ErrEmptyDetail:
		return errEmptyDetail
	case complaint.ErrNoUpdateFields:
		return errNoUpdateFields
	case complaint.ErrComplaintNotFound:
		return errNotFound
	case complaint.ErrNoUserComplaints:
		return errNoUserComplaints
	default:
		return err
	}
}
