package repository

import (
	"context"

	"complaint-management/internal/role"
)

// Repository is the data store of the role domain.
type Repository interface {
	CreateRole(ctx context.Context, opt CreateRoleOptions) (int64, error)
	// GetOneRole returns the zero Role (ID == 0) when nothing matches.
	GetOneRole(ctx context.Context, opt GetOneRoleOptions) (role.Role, error)
	ListRoles(ctx context.Context) ([]role.Role, error)
	// UpdateRole and DeleteRole report whether a row was affected.
	UpdateRole(ctx context.Context, opt UpdateRoleOptions) (bool, error)
	DeleteRole(ctx context.Context, id int64) (bool, error)
}
