package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"complaint-management/internal/complaint"
	repo "complaint-management/internal/complaint/repository"
)

type scanner interface {
	Scan(dest ...any) error
}

func scanComplaint(row scanner, extra ...any) (complaint.Complaint, error) {
	var c complaint.Complaint
	dest := []any{
		&c.ID, &c.DepartmentID, &c.IssueID, &c.UserID, &c.Detail, &c.Status,
		&c.CreatedAt, &c.UpdatedAt, &c.DepartmentName, &c.IssueType,
	}
	err := row.Scan(append(dest, extra...)...)
	return c, err
}

func (r *implRepository) CreateComplaint(ctx context.Context, opt repo.CreateComplaintOptions) (int64, error) {
	query := r.dialect.InsertReturningID("Complaints", "complaint_id",
		"department_id", "issue_id", "user_id", "complaint_detail", "status", "created_at", "updated_at")

	now := time.Now().UTC()
	var id int64
	err := r.db.QueryRowContext(ctx, query,
		opt.DepartmentID, opt.IssueID, opt.UserID, opt.Detail, opt.Status, now, now,
	).Scan(&id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateComplaint"), err)
		return 0, repo.ErrFailedToInsert
	}
	return id, nil
}

func (r *implRepository) GetOneComplaint(ctx context.Context, id int64) (complaint.Complaint, error) {
	query := r.dialect.Rebind(`SELECT ` + complaintColumns + "\n" + complaintJoins + "\nWHERE c.complaint_id = ?")

	c, err := scanComplaint(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return complaint.Complaint{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneComplaint"), err)
		return complaint.Complaint{}, repo.ErrFailedToGet
	}
	return c, nil
}

func (r *implRepository) ListComplaints(ctx context.Context, opt repo.ListComplaintsOptions) ([]complaint.Complaint, error) {
	query, args := r.buildListQuery(opt)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListComplaints"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	cs := make([]complaint.Complaint, 0)
	for rows.Next() {
		var (
			c   complaint.Complaint
			err error
		)
		if opt.UserID != 0 {
			var userName string
			c, err = scanComplaint(rows, &userName)
			c.UserName = userName
		} else {
			c, err = scanComplaint(rows)
		}
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListComplaints"), err)
			return nil, repo.ErrFailedToList
		}
		cs = append(cs, c)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListComplaints"), err)
		return nil, repo.ErrFailedToList
	}
	return cs, nil
}

func (r *implRepository) UpdateComplaint(ctx context.Context, opt repo.UpdateComplaintOptions) (bool, error) {
	query, args, err := r.buildUpdateQuery(opt, time.Now().UTC())
	if err != nil {
		return false, err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateComplaint"), err)
		return false, repo.ErrFailedToUpdate
	}
	return r.affected(ctx, "UpdateComplaint", res, repo.ErrFailedToUpdate)
}

func (r *implRepository) DeleteComplaint(ctx context.Context, id int64) (bool, error) {
	query := r.dialect.Rebind(`DELETE FROM Complaints WHERE complaint_id = ?`)

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteComplaint"), err)
		return false, repo.ErrFailedToDelete
	}
	return r.affected(ctx, "DeleteComplaint", res, repo.ErrFailedToDelete)
}

func (r *implRepository) affected(ctx context.Context, method string, res sql.Result, failure error) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows affected: %v", r.dsn(method), err)
		return false, failure
	}
	return n > 0, nil
}
