package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"complaint-management/internal/department"
	repo "complaint-management/internal/department/repository"
)

const departmentColumns = `deptt_id, deptt_name, created_at, updated_at`

func (r *implRepository) CreateDepartment(ctx context.Context, opt repo.CreateDepartmentOptions) (int64, error) {
	query := r.dialect.InsertReturningID("Departments", "deptt_id", "deptt_name", "created_at", "updated_at")

	now := time.Now().UTC()
	var id int64
	if err := r.db.QueryRowContext(ctx, query, opt.Name, now, now).Scan(&id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateDepartment"), err)
		return 0, repo.ErrFailedToInsert
	}
	return id, nil
}

func (r *implRepository) GetOneDepartment(ctx context.Context, opt repo.GetOneDepartmentOptions) (department.Department, error) {
	var conditions []string
	var args []any
	if opt.ID != 0 {
		conditions = append(conditions, "deptt_id = ?")
		args = append(args, opt.ID)
	}
	if opt.Name != "" {
		conditions = append(conditions, "deptt_name = ?")
		args = append(args, opt.Name)
	}
	if len(conditions) == 0 {
		return department.Department{}, nil
	}
	if opt.ExcludeID != 0 {
		conditions = append(conditions, "deptt_id <> ?")
		args = append(args, opt.ExcludeID)
	}
	where := strings.Join(conditions, " AND ")
	query := r.dialect.Rebind(`SELECT ` + departmentColumns + ` FROM Departments WHERE ` + where)

	var d department.Department
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&d.ID, &d.Name, &d.CreatedAt, &d.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return department.Department{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneDepartment"), err)
		return department.Department{}, repo.ErrFailedToGet
	}
	return d, nil
}

func (r *implRepository) ListDepartments(ctx context.Context) ([]department.Department, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+departmentColumns+` FROM Departments ORDER BY deptt_id`)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListDepartments"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	depts := make([]department.Department, 0)
	for rows.Next() {
		var d department.Department
		if err := rows.Scan(&d.ID, &d.Name, &d.CreatedAt, &d.UpdatedAt); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListDepartments"), err)
			return nil, repo.ErrFailedToList
		}
		depts = append(depts, d)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListDepartments"), err)
		return nil, repo.ErrFailedToList
	}
	return depts, nil
}

func (r *implRepository) UpdateDepartment(ctx context.Context, opt repo.UpdateDepartmentOptions) (bool, error) {
	query := r.dialect.Rebind(`UPDATE Departments SET deptt_name = ?, updated_at = ? WHERE deptt_id = ?`)

	res, err := r.db.ExecContext(ctx, query, opt.Name, time.Now().UTC(), opt.ID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateDepartment"), err)
		return false, repo.ErrFailedToUpdate
	}
	return r.affected(ctx, "UpdateDepartment", res, repo.ErrFailedToUpdate)
}

func (r *implRepository) DeleteDepartment(ctx context.Context, id int64) (bool, error) {
	query := r.dialect.Rebind(`DELETE FROM Departments WHERE deptt_id = ?`)

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteDepartment"), err)
		return false, repo.ErrFailedToDelete
	}
	return r.affected(ctx, "DeleteDepartment", res, repo.ErrFailedToDelete)
}

func (r *implRepository) affected(ctx context.Context, method string, res sql.Result, failure error) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows affected: %v", r.dsn(method), err)
		return false, failure
	}
	return n > 0, nil
}
