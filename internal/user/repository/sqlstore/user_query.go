package sqlstore

import (
	"database/sql"
	"strings"

	"complaint-management/internal/user"
	repo "complaint-management/internal/user/repository"
)

const userColumns = `user_id, name, phone, email, password, role_id, is_team_member, refresh_token, created_at, updated_at`

type scanner interface {
	Scan(dest ...any) error
}

// scanUser reads one row of userColumns. email and refresh_token are nullable.
func scanUser(s scanner) (user.User, error) {
	var (
		u            user.User
		email        sql.NullString
		refreshToken sql.NullString
	)
	err := s.Scan(&u.ID, &u.Name, &u.Phone, &email, &u.PasswordHash, &u.RoleID,
		&u.IsTeamMember, &refreshToken, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return user.User{}, err
	}
	u.Email = email.String
	u.RefreshToken = refreshToken.String
	return u, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func (r *implRepository) buildGetOneQuery(opt repo.GetOneUserOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.ID != 0 {
		conditions = append(conditions, "user_id = ?")
		args = append(args, opt.ID)
	}
	if opt.Phone != "" {
		conditions = append(conditions, "phone = ?")
		args = append(args, opt.Phone)
	}
	if opt.Email != "" {
		conditions = append(conditions, "email = ?")
		args = append(args, opt.Email)
	}
	// ExcludeID alone would match an arbitrary row.
	if len(conditions) == 0 {
		return "", nil
	}
	if opt.ExcludeID != 0 {
		conditions = append(conditions, "user_id <> ?")
		args = append(args, opt.ExcludeID)
	}
	return strings.Join(conditions, " AND "), args
}
