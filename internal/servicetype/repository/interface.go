package repository

import (
	"context"

	"complaint-management/internal/servicetype"
)

type Repository interface {
	CreateServiceType(ctx context.Context, opt CreateServiceTypeOptions) (int64, error)
	// GetOneServiceType returns the zero ServiceType when nothing matches.
	GetOneServiceType(ctx context.Context, opt GetOneServiceTypeOptions) (servicetype.ServiceType, error)
	// ListServiceTypes returns service types joined with their issue.
	ListServiceTypes(ctx context.Context) ([]servicetype.ServiceType, error)
	UpdateServiceType(ctx context.Context, opt UpdateServiceTypeOptions) (bool, error)
	DeleteServiceType(ctx context.Context, id int64) (bool, error)
}
