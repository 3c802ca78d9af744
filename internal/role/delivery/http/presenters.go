package http

import (
	"time"

	"complaint-management/internal/role"
)

const (
	msgCreated = "Role created."
	msgUpdated = "Role updated successfully."
	msgDeleted = "Role deleted successfully."
)

// --- Request DTOs ---

type roleReq struct {
	RoleName string `json:"role_name"`
}

func (r roleReq) toCreateInput() role.CreateInput {
	return role.CreateInput{Name: r.RoleName}
}

func (r roleReq) toUpdateInput(id int64) role.UpdateInput {
	return role.UpdateInput{ID: id, Name: r.RoleName}
}

// --- Response DTOs ---

type roleResp struct {
	ID        int64     `json:"role_id"`
	Name      string    `json:"role_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newRoleResp(r role.Role) roleResp {
	return roleResp{
		ID:        r.ID,
		Name:      r.Name,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func newListResp(roles []role.Role) []roleResp {
	resp := make([]roleResp, len(roles))
	for i, r := range roles {
		resp[i] = newRoleResp(r)
	}
	return resp
}
