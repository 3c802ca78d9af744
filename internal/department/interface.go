package department

import "context"

type UseCase interface {
	Create(ctx context.Context, input CreateInput) (Department, error)
	List(ctx context.Context) ([]Department, error)
	Detail(ctx context.Context, id int64) (Department, error)
	Update(ctx context.Context, input UpdateInput) error
	Delete(ctx context.Context, id int64) error
}
