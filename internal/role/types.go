package role

import "time"

// Role is a named permission group users are assigned to.
type Role struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// --- UseCase Inputs ---

type CreateInput struct {
	Name string
}

type UpdateInput struct {
	ID   int64
	Name string
}
