package http

import (
	"time"

	"complaint-management/internal/servicetype"
)

const (
	msgCreated = "Service type created."
	msgUpdated = "Service type updated successfully."
	msgDeleted = "Service type deleted successfully."
)

type serviceTypeReq struct {
	IssueID     int64  `json:"issue_id"`
	ServiceName string `json:"service_name"`
}

func (r serviceTypeReq) toCreateInput() servicetype.CreateInput {
	return servicetype.CreateInput{IssueID: r.IssueID, Name: r.ServiceName}
}

func (r serviceTypeReq) toUpdateInput(id int64) servicetype.UpdateInput {
	return servicetype.UpdateInput{ID: id, IssueID: r.IssueID, Name: r.ServiceName}
}

type serviceTypeResp struct {
	ID          int64     `json:"service_id"`
	IssueID     int64     `json:"issue_id"`
	ServiceName string    `json:"service_name"`
	IssueType   string    `json:"issue_type"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newServiceTypeResp(st servicetype.ServiceType) serviceTypeResp {
	return serviceTypeResp{
		ID:          st.ID,
		IssueID:     st.IssueID,
		ServiceName: st.Name,
		IssueType:   st.IssueType,
		CreatedAt:   st.CreatedAt,
		UpdatedAt:   st.UpdatedAt,
	}
}

func newListResp(sts []servicetype.ServiceType) []serviceTypeResp {
	resp := make([]serviceTypeResp, len(sts))
	for i, st := range sts {
		resp[i] = newServiceTypeResp(st)
	}
	return resp
}
