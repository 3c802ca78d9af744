package usecase

import (
	"context"
	"strings"

	"complaint-management/internal/user"
	repo "complaint-management/internal/user/repository"
)

// Create registers a user whose initial password is derived from the phone.
func (uc *implUseCase) Create(ctx context.Context, input user.CreateInput) (int64, error) {
	name := strings.TrimSpace(input.Name)
	phone := strings.TrimSpace(input.Phone)
	if name == "" || phone == "" || input.RoleID <= 0 {
		return 0, user.ErrFieldsRequired
	}

	existing, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Phone: phone})
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.Create.GetOneUser: %v", err)
		return 0, err
	}
	if existing.ID != 0 {
		return 0, user.ErrDuplicatePhone
	}

	hash, err := uc.encrypter.HashPassword(initialPassword(phone))
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.Create.HashPassword: %v", err)
		return 0, err
	}

	id, err := uc.repo.CreateUser(ctx, repo.CreateUserOptions{
		Name:         name,
		Phone:        phone,
		Email:        strings.TrimSpace(input.Email),
		PasswordHash: hash,
		RoleID:       input.RoleID,
		IsTeamMember: input.IsTeamMember,
	})
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.Create.CreateUser: %v", err)
		return 0, err
	}
	return id, nil
}

func (uc *implUseCase) List(ctx context.Context) ([]user.User, error) {
	users, err := uc.repo.ListUsers(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.List.ListUsers: %v", err)
		return nil, err
	}
	return users, nil
}

func (uc *implUseCase) Detail(ctx context.Context, id int64) (user.User, error) {
	u, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.Detail.GetOneUser: %v", err)
		return user.User{}, err
	}
	if u.ID == 0 {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

// Update merges the provided fields over the stored profile. A changed phone
// must not belong to another user.
func (uc *implUseCase) Update(ctx context.Context, input user.UpdateInput) error {
	existing, err := uc.Detail(ctx, input.ID)
	if err != nil {
		return err
	}

	opt := repo.UpdateUserOptions{
		ID:           existing.ID,
		Name:         coalesce(input.Name, existing.Name),
		Phone:        coalesce(input.Phone, existing.Phone),
		Email:        coalesce(input.Email, existing.Email),
		RoleID:       existing.RoleID,
		IsTeamMember: existing.IsTeamMember,
	}
	if input.RoleID != nil && *input.RoleID > 0 {
		opt.RoleID = *input.RoleID
	}
	if input.IsTeamMember != nil {
		opt.IsTeamMember = *input.IsTeamMember
	}

	if opt.Phone != existing.Phone {
		dup, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Phone: opt.Phone, ExcludeID: existing.ID})
		if err != nil {
			uc.l.Errorf(ctx, "user.usecase.Update.GetOneUser: %v", err)
			return err
		}
		if dup.ID != 0 {
			return user.ErrDuplicatePhone
		}
	}

	ok, err := uc.repo.UpdateUser(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.Update.UpdateUser: %v", err)
		return err
	}
	if !ok {
		return user.ErrUserNotFound
	}
	return nil
}

func (uc *implUseCase) Delete(ctx context.Context, id int64) error {
	ok, err := uc.repo.DeleteUser(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.Delete.DeleteUser: %v", err)
		return err
	}
	if !ok {
		return user.ErrUserNotFound
	}
	return nil
}
