package usecase

import (
	"context"

	"complaint-management/internal/servicetype"
	repo "complaint-management/internal/servicetype/repository"
)

func (uc *implUseCase) Create(ctx context.Context, input servicetype.CreateInput) (servicetype.ServiceType, error) {
	name := normalizeName(input.Name)
	if input.IssueID <= 0 || name == "" {
		return servicetype.ServiceType{}, servicetype.ErrFieldsRequired
	}

	if err := uc.checkIssueAndName(ctx, input.IssueID, name, 0); err != nil {
		return servicetype.ServiceType{}, err
	}

	id, err := uc.repo.CreateServiceType(ctx, repo.CreateServiceTypeOptions{IssueID: input.IssueID, Name: name})
	if err != nil {
		uc.l.Errorf(ctx, "servicetype.usecase.Create.CreateServiceType: %v", err)
		return servicetype.ServiceType{}, err
	}
	return servicetype.ServiceType{ID: id, IssueID: input.IssueID, Name: name}, nil
}

func (uc *implUseCase) List(ctx context.Context) ([]servicetype.ServiceType, error) {
	sts, err := uc.repo.ListServiceTypes(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "servicetype.usecase.List.ListServiceTypes: %v", err)
		return nil, err
	}
	return sts, nil
}

func (uc *implUseCase) Detail(ctx context.Context, id int64) (servicetype.ServiceType, error) {
	st, err := uc.repo.GetOneServiceType(ctx, repo.GetOneServiceTypeOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "servicetype.usecase.Detail.GetOneServiceType: %v", err)
		return servicetype.ServiceType{}, err
	}
	if st.ID == 0 {
		return servicetype.ServiceType{}, servicetype.ErrServiceTypeNotFound
	}
	return st, nil
}

// Update replaces both the issue and the name of a service type.
func (uc *implUseCase) Update(ctx context.Context, input servicetype.UpdateInput) error {
	name := normalizeName(input.Name)
	if input.IssueID <= 0 || name == "" {
		return servicetype.ErrFieldsRequired
	}

	if err := uc.checkIssueAndName(ctx, input.IssueID, name, input.ID); err != nil {
		return err
	}

	ok, err := uc.repo.UpdateServiceType(ctx, repo.UpdateServiceTypeOptions{
		ID:      input.ID,
		IssueID: input.IssueID,
		Name:    name,
	})
	if err != nil {
		uc.l.Errorf(ctx, "servicetype.usecase.Update.UpdateServiceType: %v", err)
		return err
	}
	if !ok {
		return servicetype.ErrServiceTypeNotFound
	}
	return nil
}

func (uc *implUseCase) Delete(ctx context.Context, id int64) error {
	ok, err := uc.repo.DeleteServiceType(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "servicetype.usecase.Delete.DeleteServiceType: %v", err)
		return err
	}
	if !ok {
		return servicetype.ErrServiceTypeNotFound
	}
	return nil
}
