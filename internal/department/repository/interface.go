package repository

import (
	"context"

	"complaint-management/internal/department"
)

type Repository interface {
	CreateDepartment(ctx context.Context, opt CreateDepartmentOptions) (int64, error)
	// GetOneDepartment returns the zero Department when nothing matches.
	GetOneDepartment(ctx context.Context, opt GetOneDepartmentOptions) (department.Department, error)
	ListDepartments(ctx context.Context) ([]department.Department, error)
	UpdateDepartment(ctx context.Context, opt UpdateDepartmentOptions) (bool, error)
	DeleteDepartment(ctx context.Context, id int64) (bool, error)
}
