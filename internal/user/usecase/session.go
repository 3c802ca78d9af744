package usecase

import (
	"context"
	"strings"

	"complaint-management/internal/user"
	repo "complaint-management/internal/user/repository"
)

// Login checks the credentials and issues an access/refresh token pair. An
// unknown email and a wrong password are indistinguishable to the caller.
func (uc *implUseCase) Login(ctx context.Context, input user.LoginInput) (user.LoginOutput, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" {
		return user.LoginOutput{}, user.ErrInvalidCredentials
	}

	u, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: email})
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.Login.GetOneUser: %v", err)
		return user.LoginOutput{}, err
	}
	if u.ID == 0 || !uc.encrypter.ComparePassword(u.PasswordHash, input.Password) {
		return user.LoginOutput{}, user.ErrInvalidCredentials
	}

	accessToken, err := uc.jwtManager.CreateAccessToken(payloadOf(u))
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.Login.CreateAccessToken: %v", err)
		return user.LoginOutput{}, err
	}
	refreshToken, err := uc.jwtManager.CreateRefreshToken(u.ID)
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.Login.CreateRefreshToken: %v", err)
		return user.LoginOutput{}, err
	}

	if err := uc.repo.SetRefreshToken(ctx, u.ID, refreshToken); err != nil {
		uc.l.Errorf(ctx, "user.usecase.Login.SetRefreshToken: %v", err)
		return user.LoginOutput{}, err
	}
	u.RefreshToken = refreshToken

	return user.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         u,
	}, nil
}

// Refresh issues a new access token for the holder of a valid refresh token.
// The token must still be the one stored at login; it is not rotated.
func (uc *implUseCase) Refresh(ctx context.Context, refreshToken string) (string, error) {
	if refreshToken == "" {
		return "", user.ErrNoSession
	}

	id, err := uc.jwtManager.VerifyRefreshToken(refreshToken)
	if err != nil {
		uc.l.Debugf(ctx, "user.usecase.Refresh.VerifyRefreshToken: %v", err)
		return "", user.ErrInvalidSession
	}

	u, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.Refresh.GetOneUser: %v", err)
		return "", err
	}
	if u.ID == 0 || u.RefreshToken != refreshToken {
		return "", user.ErrInvalidSession
	}

	accessToken, err := uc.jwtManager.CreateAccessToken(payloadOf(u))
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.Refresh.CreateAccessToken: %v", err)
		return "", err
	}
	return accessToken, nil
}

// Logout forgets the stored refresh token of the session owner. Missing or
// invalid tokens are ignored so logging out always succeeds.
func (uc *implUseCase) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	id, err := uc.jwtManager.VerifyRefreshToken(refreshToken)
	if err != nil {
		return nil
	}
	if err := uc.repo.SetRefreshToken(ctx, id, ""); err != nil {
		uc.l.Errorf(ctx, "user.usecase.Logout.SetRefreshToken: %v", err)
		return err
	}
	return nil
}
