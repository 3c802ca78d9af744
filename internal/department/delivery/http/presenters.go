package http

import (
	"time"

	"complaint-management/internal/department"
)

const (
	msgCreated = "Department created successfully"
	msgUpdated = "Department updated successfully"
	msgDeleted = "Department deleted successfully"
)

type departmentReq struct {
	Name string `json:"deptt_name"`
}

type departmentResp struct {
	ID        int64     `json:"deptt_id"`
	Name      string    `json:"deptt_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newDepartmentResp(d department.Department) departmentResp {
	return departmentResp{
		ID:        d.ID,
		Name:      d.Name,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func newListResp(depts []department.Department) []departmentResp {
	resp := make([]departmentResp, len(depts))
	for i, d := range depts {
		resp[i] = newDepartmentResp(d)
	}
	return resp
}
