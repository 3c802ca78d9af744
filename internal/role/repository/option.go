package repository

type CreateRoleOptions struct {
	Name string
}

// GetOneRoleOptions filters are ANDed; zero values are ignored.
type GetOneRoleOptions struct {
	ID        int64
	Name      string
	ExcludeID int64
}

type UpdateRoleOptions struct {
	ID   int64
	Name string
}
