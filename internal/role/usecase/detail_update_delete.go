package usecase

import (
	"context"

	"complaint-management/internal/role"
	repo "complaint-management/internal/role/repository"
)

// Detail returns ErrRoleNotFound when no role has the id.
func (uc *implUseCase) Detail(ctx context.Context, id int64) (role.Role, error) {
	r, err := uc.repo.GetOneRole(ctx, repo.GetOneRoleOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "role.usecase.Detail.GetOneRole: %v", err)
		return role.Role{}, err
	}
	if r.ID == 0 {
		return role.Role{}, role.ErrRoleNotFound
	}
	return r, nil
}

// Update renames a role. The uniqueness check ignores the role itself.
func (uc *implUseCase) Update(ctx context.Context, input role.UpdateInput) error {
	name, err := uc.normalizeName(input.Name)
	if err != nil {
		return err
	}

	existing, err := uc.repo.GetOneRole(ctx, repo.GetOneRoleOptions{Name: name, ExcludeID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "role.usecase.Update.GetOneRole: %v", err)
		return err
	}
	if existing.ID != 0 {
		return role.ErrDuplicateName
	}

	ok, err := uc.repo.UpdateRole(ctx, repo.UpdateRoleOptions{ID: input.ID, Name: name})
	if err != nil {
		uc.l.Errorf(ctx, "role.usecase.Update.UpdateRole: %v", err)
		return err
	}
	if !ok {
		return role.ErrRoleNotFound
	}
	return nil
}

func (uc *implUseCase) Delete(ctx context.Context, id int64) error {
	ok, err := uc.repo.DeleteRole(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "role.usecase.Delete.DeleteRole: %v", err)
		return err
	}
	if !ok {
		return role.ErrRoleNotFound
	}
	return nil
}
