package servicetype

import "context"

type UseCase interface {
	Create(ctx context.Context, input CreateInput) (ServiceType, error)
	List(ctx context.Context) ([]ServiceType, error)
	Detail(ctx context.Context, id int64) (ServiceType, error)
	Update(ctx context.Context, input UpdateInput) error
	Delete(ctx context.Context, id int64) error
}
