package user

import "time"

// User is an account holder. PasswordHash and RefreshToken never leave the
// service.
type User struct {
	ID           int64
	Name         string
	Phone        string
	Email        string
	PasswordHash string
	RoleID       int64
	IsTeamMember bool
	RefreshToken string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// --- UseCase Inputs/Outputs ---

type CreateInput struct {
	Name         string
	Phone        string
	Email        string
	RoleID       int64
	IsTeamMember bool
}

// UpdateInput carries a partial update; nil fields keep their stored value.
type UpdateInput struct {
	ID           int64
	Name         *string
	Phone        *string
	Email        *string
	RoleID       *int64
	IsTeamMember *bool
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         User
}
