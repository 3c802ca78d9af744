package user

import "context"

type UseCase interface {
	Create(ctx context.Context, input CreateInput) (int64, error)
	List(ctx context.Context) ([]User, error)
	Detail(ctx context.Context, id int64) (User, error)
	Update(ctx context.Context, input UpdateInput) error
	Delete(ctx context.Context, id int64) error

	// Session
	Login(ctx context.Context, input LoginInput) (LoginOutput, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	Logout(ctx context.Context, refreshToken string) error
}
