package http

import (
	"time"

	"complaint-management/internal/complaint"
)

const (
	msgCreated = "Complaint created successfully"
	msgUpdated = "Complaint updated successfully"
	msgDeleted = "Complaint deleted successfully"
)

type createReq struct {
	DepartmentID int64  `json:"department_id"`
	IssueID      int64  `json:"issue_id"`
	Detail       string `json:"complaint_detail"`
	Status       string `json:"status"`
}

// updateReq uses pointers so absent fields are left untouched.
type updateReq struct {
	DepartmentID *int64  `json:"department_id"`
	IssueID      *int64  `json:"issue_id"`
	Detail       *string `json:"complaint_detail"`
	Status       *string `json:"status"`
}

type complaintResp struct {
	ID             int64     `json:"complaint_id"`
	Detail         string    `json:"complaint_detail"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	DepartmentName string    `json:"deptt_name"`
	IssueType      string    `json:"issue_type"`
	UserName       string    `json:"user_name,omitempty"`
}

func newComplaintResp(c complaint.Complaint) complaintResp {
	return complaintResp{
		ID:             c.ID,
		Detail:         c.Detail,
		Status:         c.Status,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
		DepartmentName: c.DepartmentName,
		IssueType:      c.IssueType,
		UserName:       c.UserName,
	}
}

func newListResp(cs []complaint.Complaint) []complaintResp {
	resp := make([]complaintResp, len(cs))
	for i, c := range cs {
		resp[i] = newComplaintResp(c)
	}
	return resp
}

func (req createReq) toInput(userID int64) complaint.CreateInput {
	return complaint.CreateInput{
		DepartmentID: req.DepartmentID,
		IssueID:      req.IssueID,
		UserID:       userID,
		Detail:       req.Detail,
		Status:       req.Status,
	}
}

func (req updateReq) toInput(id int64) complaint.UpdateInput {
	return complaint.UpdateInput{
		ID:           id,
		DepartmentID: req.DepartmentID,
		IssueID:      req.IssueID,
		Detail:       req.Detail,
		Status:       req.Status,
	}
}
