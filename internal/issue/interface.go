package issue

import "context"

type UseCase interface {
	Create(ctx context.Context, input CreateInput) (Issue, error)
	List(ctx context.Context) ([]Issue, error)
	Detail(ctx context.Context, id int64) (Issue, error)
	Update(ctx context.Context, input UpdateInput) error
	Delete(ctx context.Context, id int64) error
}
