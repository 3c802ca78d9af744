package repository

import (
	"context"

	"complaint-management/internal/user"
)

type Repository interface {
	CreateUser(ctx context.Context, opt CreateUserOptions) (int64, error)
	// GetOneUser returns the zero User when nothing matches.
	GetOneUser(ctx context.Context, opt GetOneUserOptions) (user.User, error)
	ListUsers(ctx context.Context) ([]user.User, error)
	UpdateUser(ctx context.Context, opt UpdateUserOptions) (bool, error)
	DeleteUser(ctx context.Context, id int64) (bool, error)
	// SetRefreshToken stores token on the user row; an empty token clears it.
	SetRefreshToken(ctx context.Context, id int64, token string) error
}
