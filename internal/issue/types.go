package issue

import "time"

// Issue is a complaint category such as "BILLING" or "NETWORK".
type Issue struct {
	ID        int64
	Type      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CreateInput struct {
	Type string
}

type UpdateInput struct {
	ID   int64
	Type string
}
