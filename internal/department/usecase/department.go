package usecase

import (
	"context"
	"strings"

	"complaint-management/internal/department"
	repo "complaint-management/internal/department/repository"
)

func normalizeName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", department.ErrNameRequired
	}
	return strings.ToUpper(name), nil
}

func (uc *implUseCase) Create(ctx context.Context, input department.CreateInput) (department.Department, error) {
	name, err := normalizeName(input.Name)
	if err != nil {
		return department.Department{}, err
	}

	existing, err := uc.repo.GetOneDepartment(ctx, repo.GetOneDepartmentOptions{Name: name})
	if err != nil {
		uc.l.Errorf(ctx, "department.usecase.Create.GetOneDepartment: %v", err)
		return department.Department{}, err
	}
	if existing.ID != 0 {
		return department.Department{}, department.ErrDuplicateName
	}

	id, err := uc.repo.CreateDepartment(ctx, repo.CreateDepartmentOptions{Name: name})
	if err != nil {
		uc.l.Errorf(ctx, "department.usecase.Create.CreateDepartment: %v", err)
		return department.Department{}, err
	}
	return department.Department{ID: id, Name: name}, nil
}

func (uc *implUseCase) List(ctx context.Context) ([]department.Department, error) {
	depts, err := uc.repo.ListDepartments(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "department.usecase.List.ListDepartments: %v", err)
		return nil, err
	}
	return depts, nil
}

func (uc *implUseCase) Detail(ctx context.Context, id int64) (department.Department, error) {
	d, err := uc.repo.GetOneDepartment(ctx, repo.GetOneDepartmentOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "department.usecase.Detail.GetOneDepartment: %v", err)
		return department.Department{}, err
	}
	if d.ID == 0 {
		return department.Department{}, department.ErrDepartmentNotFound
	}
	return d, nil
}

// Update renames a department; another department already holding the name
// is a conflict.
func (uc *implUseCase) Update(ctx context.Context, input department.UpdateInput) error {
	name, err := normalizeName(input.Name)
	if err != nil {
		return err
	}

	existing, err := uc.repo.GetOneDepartment(ctx, repo.GetOneDepartmentOptions{Name: name, ExcludeID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "department.usecase.Update.GetOneDepartment: %v", err)
		return err
	}
	if existing.ID != 0 {
		return department.ErrDuplicateName
	}

	ok, err := uc.repo.UpdateDepartment(ctx, repo.UpdateDepartmentOptions{ID: input.ID, Name: name})
	if err != nil {
		uc.l.Errorf(ctx, "department.usecase.Update.UpdateDepartment: %v", err)
		return err
	}
	if !ok {
		return department.ErrDepartmentNotFound
	}
	return nil
}

func (uc *implUseCase) Delete(ctx context.Context, id int64) error {
	ok, err := uc.repo.DeleteDepartment(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "department.usecase.Delete.DeleteDepartment: %v", err)
		return err
	}
	if !ok {
		return department.ErrDepartmentNotFound
	}
	return nil
}
