package repository

import (
	"context"

	"complaint-management/internal/complaint"
)

type Repository interface {
	CreateComplaint(ctx context.Context, opt CreateComplaintOptions) (int64, error)
	// GetOneComplaint returns the zero Complaint when id does not exist.
	GetOneComplaint(ctx context.Context, id int64) (complaint.Complaint, error)
	// ListComplaints joins departments and issues; filtering by user also
	// joins users to fill UserName.
	ListComplaints(ctx context.Context, opt ListComplaintsOptions) ([]complaint.Complaint, error)
	UpdateComplaint(ctx context.Context, opt UpdateComplaintOptions) (bool, error)
	DeleteComplaint(ctx context.Context, id int64) (bool, error)
}
