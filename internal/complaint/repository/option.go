package repository

type CreateComplaintOptions struct {
	DepartmentID int64
	IssueID      int64
	UserID       int64
	Detail       string
	Status       string
}

type ListComplaintsOptions struct {
	UserID int64
}

// UpdateComplaintOptions sets only the non-nil fields.
type UpdateComplaintOptions struct {
	ID           int64
	DepartmentID *int64
	IssueID      *int64
	Detail       *string
	Status       *string
}
