package usecase

import (
	"context"

	"complaint-management/internal/role"
)

func (uc *implUseCase) List(ctx context.Context) ([]role.Role, error) {
	roles, err := uc.repo.ListRoles(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "role.usecase.List.ListRoles: %v", err)
		return nil, err
	}
	return roles, nil
}
