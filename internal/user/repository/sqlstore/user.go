package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"complaint-management/internal/user"
	repo "complaint-management/internal/user/repository"
)

func (r *implRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (int64, error) {
	query := r.dialect.InsertReturningID("Users", "user_id",
		"name", "phone", "email", "password", "role_id", "is_team_member", "created_at", "updated_at")

	now := time.Now().UTC()
	var id int64
	err := r.db.QueryRowContext(ctx, query,
		opt.Name, opt.Phone, nullable(opt.Email), opt.PasswordHash, opt.RoleID, opt.IsTeamMember, now, now,
	).Scan(&id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateUser"), err)
		return 0, repo.ErrFailedToInsert
	}
	return id, nil
}

func (r *implRepository) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (user.User, error) {
	where, args := r.buildGetOneQuery(opt)
	if where == "" {
		return user.User{}, nil
	}
	query := r.dialect.Rebind(`SELECT ` + userColumns + ` FROM Users WHERE ` + where)

	u, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return user.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneUser"), err)
		return user.User{}, repo.ErrFailedToGet
	}
	return u, nil
}

func (r *implRepository) ListUsers(ctx context.Context) ([]user.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+userColumns+` FROM Users ORDER BY user_id`)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListUsers"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	users := make([]user.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListUsers"), err)
			return nil, repo.ErrFailedToList
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListUsers"), err)
		return nil, repo.ErrFailedToList
	}
	return users, nil
}

func (r *implRepository) UpdateUser(ctx context.Context, opt repo.UpdateUserOptions) (bool, error) {
	query := r.dialect.Rebind(`UPDATE Users
SET name = ?, phone = ?, email = ?, role_id = ?, is_team_member = ?, updated_at = ?
WHERE user_id = ?`)

	res, err := r.db.ExecContext(ctx, query,
		opt.Name, opt.Phone, nullable(opt.Email), opt.RoleID, opt.IsTeamMember, time.Now().UTC(), opt.ID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateUser"), err)
		return false, repo.ErrFailedToUpdate
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows affected: %v", r.dsn("UpdateUser"), err)
		return false, repo.ErrFailedToUpdate
	}
	return n > 0, nil
}

func (r *implRepository) DeleteUser(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, r.dialect.Rebind(`DELETE FROM Users WHERE user_id = ?`), id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteUser"), err)
		return false, repo.ErrFailedToDelete
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows affected: %v", r.dsn("DeleteUser"), err)
		return false, repo.ErrFailedToDelete
	}
	return n > 0, nil
}

func (r *implRepository) SetRefreshToken(ctx context.Context, id int64, token string) error {
	query := r.dialect.Rebind(`UPDATE Users SET refresh_token = ? WHERE user_id = ?`)
	if _, err := r.db.ExecContext(ctx, query, nullable(token), id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SetRefreshToken"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}
