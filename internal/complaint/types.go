package complaint

import "time"

// DefaultStatus is assigned when a complaint is filed without one.
const DefaultStatus = "Pending"

// Complaint is a grievance filed by a user against a department and issue.
// DepartmentName, IssueType and UserName are filled by joins on reads.
type Complaint struct {
	ID             int64
	DepartmentID   int64
	IssueID        int64
	UserID         int64
	Detail         string
	Status         string
	DepartmentName string
	IssueType      string
	UserName       string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type CreateInput struct {
	DepartmentID int64
	IssueID      int64
	UserID       int64
	Detail       string
	Status       string
}

// UpdateInput carries a partial update; only non-nil fields are written.
type UpdateInput struct {
	ID           int64
	DepartmentID *int64
	IssueID      *int64
	Detail       *string
	Status       *string
}
