package usecase

import (
	"context"

	"complaint-management/internal/role"
	repo "complaint-management/internal/role/repository"
)

// Create stores a new role after checking the normalized name is unused.
func (uc *implUseCase) Create(ctx context.Context, input role.CreateInput) (role.Role, error) {
	name, err := uc.normalizeName(input.Name)
	if err != nil {
		return role.Role{}, err
	}

	existing, err := uc.repo.GetOneRole(ctx, repo.GetOneRoleOptions{Name: name})
	if err != nil {
		uc.l.Errorf(ctx, "role.usecase.Create.GetOneRole: %v", err)
		return role.Role{}, err
	}
	if existing.ID != 0 {
		return role.Role{}, role.ErrDuplicateName
	}

	id, err := uc.repo.CreateRole(ctx, repo.CreateRoleOptions{Name: name})
	if err != nil {
		uc.l.Errorf(ctx, "role.usecase.Create.CreateRole: %v", err)
		return role.Role{}, err
	}
	return role.Role{ID: id, Name: name}, nil
}
