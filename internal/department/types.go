package department

import "time"

// Department is the organizational unit a complaint is routed to.
type Department struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CreateInput struct {
	Name string
}

type UpdateInput struct {
	ID   int64
	Name string
}
