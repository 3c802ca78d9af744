package http

import (
	"time"

	"complaint-management/internal/issue"
)

const (
	msgCreated = "Issue created successfully"
	msgUpdated = "Issue updated successfully"
	msgDeleted = "Issue deleted successfully"
)

type issueReq struct {
	Type string `json:"issue_type"`
}

type issueResp struct {
	ID        int64     `json:"issue_id"`
	Type      string    `json:"issue_type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newIssueResp(it issue.Issue) issueResp {
	return issueResp{
		ID:        it.ID,
		Type:      it.Type,
		CreatedAt: it.CreatedAt,
		UpdatedAt: it.UpdatedAt,
	}
}

func newListResp(issues []issue.Issue) []issueResp {
	resp := make([]issueResp, len(issues))
	for i, it := range issues {
		resp[i] = newIssueResp(it)
	}
	return resp
}
