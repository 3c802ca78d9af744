package complaint

import "context"

type UseCase interface {
	Create(ctx context.Context, input CreateInput) (int64, error)
	List(ctx context.Context) ([]Complaint, error)
	ListByUser(ctx context.Context, userID int64) ([]Complaint, error)
	Detail(ctx context.Context, id int64) (Complaint, error)
	Update(ctx context.Context, input UpdateInput) error
	Delete(ctx context.Context, id int64) error
}
