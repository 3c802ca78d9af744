package http

import (
	"time"

	"complaint-management/internal/user"
)

const (
	msgCreated   = "User created successfully."
	msgUpdated   = "User updated successfully."
	msgDeleted   = "User deleted successfully."
	msgLoggedIn  = "Login successful"
	msgLoggedOut = "Logged out"
)

// --- Request DTOs ---

type createReq struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	RoleID       int64  `json:"role_id"`
	IsTeamMember bool   `json:"is_team_member"`
}

func (r createReq) toInput() user.CreateInput {
	return user.CreateInput{
		Name:         r.Name,
		Phone:        r.Phone,
		Email:        r.Email,
		RoleID:       r.RoleID,
		IsTeamMember: r.IsTeamMember,
	}
}

// updateReq distinguishes absent fields (nil) from sent ones.
type updateReq struct {
	Name         *string `json:"name"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email"`
	RoleID       *int64  `json:"role_id"`
	IsTeamMember *bool   `json:"is_team_member"`
}

func (r updateReq) toInput(id int64) user.UpdateInput {
	return user.UpdateInput{
		ID:           id,
		Name:         r.Name,
		Phone:        r.Phone,
		Email:        r.Email,
		RoleID:       r.RoleID,
		IsTeamMember: r.IsTeamMember,
	}
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r loginReq) toInput() user.LoginInput {
	return user.LoginInput{Email: r.Email, Password: r.Password}
}

// --- Response DTOs ---

type userResp struct {
	ID           int64     `json:"user_id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	RoleID       int64     `json:"role_id"`
	IsTeamMember bool      `json:"is_team_member"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func newUserResp(u user.User) userResp {
	return userResp{
		ID:           u.ID,
		Name:         u.Name,
		Phone:        u.Phone,
		Email:        u.Email,
		RoleID:       u.RoleID,
		IsTeamMember: u.IsTeamMember,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func newListResp(users []user.User) []userResp {
	resp := make([]userResp, len(users))
	for i, u := range users {
		resp[i] = newUserResp(u)
	}
	return resp
}

type createResp struct {
	Message string `json:"message"`
	UserID  int64  `json:"user_id"`
}

type sessionUser struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Role int64  `json:"role"`
}

type loginResp struct {
	Message     string      `json:"message"`
	AccessToken string      `json:"accessToken"`
	User        sessionUser `json:"user"`
}

func newLoginResp(out user.LoginOutput) loginResp {
	return loginResp{
		Message:     msgLoggedIn,
		AccessToken: out.AccessToken,
		User: sessionUser{
			ID:   out.User.ID,
			Name: out.User.Name,
			Role: out.User.RoleID,
		},
	}
}

type refreshResp struct {
	AccessToken string `json:"accessToken"`
}
