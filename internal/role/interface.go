package role

import "context"

type UseCase interface {
	Create(ctx context.Context, input CreateInput) (Role, error)
	List(ctx context.Context) ([]Role, error)
	Detail(ctx context.Context, id int64) (Role, error)
	Update(ctx context.Context, input UpdateInput) error
	Delete(ctx context.Context, id int64) error
}
