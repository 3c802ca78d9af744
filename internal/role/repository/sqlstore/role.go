package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"complaint-management/internal/role"
	repo "complaint-management/internal/role/repository"
)

func (r *implRepository) CreateRole(ctx context.Context, opt repo.CreateRoleOptions) (int64, error) {
	query := r.dialect.InsertReturningID("Roles", "role_id", "role_name", "created_at", "updated_at")

	now := time.Now().UTC()
	var id int64
	if err := r.db.QueryRowContext(ctx, query, opt.Name, now, now).Scan(&id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateRole"), err)
		return 0, repo.ErrFailedToInsert
	}
	return id, nil
}

// GetOneRole returns the first role matching opt, or the zero Role.
func (r *implRepository) GetOneRole(ctx context.Context, opt repo.GetOneRoleOptions) (role.Role, error) {
	where, args := r.buildGetOneQuery(opt)
	if where == "" {
		return role.Role{}, nil
	}
	query := r.dialect.Rebind(`SELECT ` + roleColumns + ` FROM Roles WHERE ` + where)

	var rl role.Role
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&rl.ID, &rl.Name, &rl.CreatedAt, &rl.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return role.Role{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneRole"), err)
		return role.Role{}, repo.ErrFailedToGet
	}
	return rl, nil
}

func (r *implRepository) ListRoles(ctx context.Context) ([]role.Role, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+roleColumns+` FROM Roles ORDER BY role_id`)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListRoles"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	roles := make([]role.Role, 0)
	for rows.Next() {
		var rl role.Role
		if err := rows.Scan(&rl.ID, &rl.Name, &rl.CreatedAt, &rl.UpdatedAt); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListRoles"), err)
			return nil, repo.ErrFailedToList
		}
		roles = append(roles, rl)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListRoles"), err)
		return nil, repo.ErrFailedToList
	}
	return roles, nil
}

func (r *implRepository) UpdateRole(ctx context.Context, opt repo.UpdateRoleOptions) (bool, error) {
	query := r.dialect.Rebind(`UPDATE Roles SET role_name = ?, updated_at = ? WHERE role_id = ?`)

	res, err := r.db.ExecContext(ctx, query, opt.Name, time.Now().UTC(), opt.ID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateRole"), err)
		return false, repo.ErrFailedToUpdate
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows affected: %v", r.dsn("UpdateRole"), err)
		return false, repo.ErrFailedToUpdate
	}
	return n > 0, nil
}

func (r *implRepository) DeleteRole(ctx context.Context, id int64) (bool, error) {
	query := r.dialect.Rebind(`DELETE FROM Roles WHERE role_id = ?`)

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteRole"), err)
		return false, repo.ErrFailedToDelete
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows affected: %v", r.dsn("DeleteRole"), err)
		return false, repo.ErrFailedToDelete
	}
	return n > 0, nil
}
