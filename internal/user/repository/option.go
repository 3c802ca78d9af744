package repository

type CreateUserOptions struct {
	Name         string
	Phone        string
	Email        string
	PasswordHash string
	RoleID       int64
	IsTeamMember bool
}

// GetOneUserOptions filters are ANDed; zero values are ignored.
type GetOneUserOptions struct {
	ID        int64
	Phone     string
	Email     string
	ExcludeID int64
}

// UpdateUserOptions holds the full profile to write.
type UpdateUserOptions struct {
	ID           int64
	Name         string
	Phone        string
	Email        string
	RoleID       int64
	IsTeamMember bool
}
