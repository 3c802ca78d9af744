package servicetype

import "time"

// ServiceType is a named service offered under one issue. IssueType is
// filled from the owning issue on reads.
type ServiceType struct {
	ID        int64
	IssueID   int64
	Name      string
	IssueType string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CreateInput struct {
	IssueID int64
	Name    string
}

type UpdateInput struct {
	ID      int64
	IssueID int64
	Name    string
}
