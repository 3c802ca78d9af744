package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"complaint-management/internal/issue"
	repo "complaint-management/internal/issue/repository"
)

const issueColumns = `issue_id, issue_type, created_at, updated_at`

func (r *implRepository) CreateIssue(ctx context.Context, opt repo.CreateIssueOptions) (int64, error) {
	query := r.dialect.InsertReturningID("Issues", "issue_id", "issue_type", "created_at", "updated_at")

	now := time.Now().UTC()
	var id int64
	if err := r.db.QueryRowContext(ctx, query, opt.Type, now, now).Scan(&id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateIssue"), err)
		return 0, repo.ErrFailedToInsert
	}
	return id, nil
}

func (r *implRepository) GetOneIssue(ctx context.Context, opt repo.GetOneIssueOptions) (issue.Issue, error) {
	var conditions []string
	var args []any
	if opt.ID != 0 {
		conditions = append(conditions, "issue_id = ?")
		args = append(args, opt.ID)
	}
	if opt.Type != "" {
		conditions = append(conditions, "issue_type = ?")
		args = append(args, opt.Type)
	}
	if len(conditions) == 0 {
		return issue.Issue{}, nil
	}
	if opt.ExcludeID != 0 {
		conditions = append(conditions, "issue_id <> ?")
		args = append(args, opt.ExcludeID)
	}
	where := strings.Join(conditions, " AND ")
	query := r.dialect.Rebind(`SELECT ` + issueColumns + ` FROM Issues WHERE ` + where)

	var it issue.Issue
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&it.ID, &it.Type, &it.CreatedAt, &it.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return issue.Issue{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneIssue"), err)
		return issue.Issue{}, repo.ErrFailedToGet
	}
	return it, nil
}

func (r *implRepository) ListIssues(ctx context.Context) ([]issue.Issue, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+issueColumns+` FROM Issues ORDER BY issue_id`)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListIssues"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	issues := make([]issue.Issue, 0)
	for rows.Next() {
		var it issue.Issue
		if err := rows.Scan(&it.ID, &it.Type, &it.CreatedAt, &it.UpdatedAt); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListIssues"), err)
			return nil, repo.ErrFailedToList
		}
		issues = append(issues, it)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListIssues"), err)
		return nil, repo.ErrFailedToList
	}
	return issues, nil
}

func (r *implRepository) UpdateIssue(ctx context.Context, opt repo.UpdateIssueOptions) (bool, error) {
	query := r.dialect.Rebind(`UPDATE Issues SET issue_type = ?, updated_at = ? WHERE issue_id = ?`)

	res, err := r.db.ExecContext(ctx, query, opt.Type, time.Now().UTC(), opt.ID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateIssue"), err)
		return false, repo.ErrFailedToUpdate
	}
	return r.affected(ctx, "UpdateIssue", res, repo.ErrFailedToUpdate)
}

func (r *implRepository) DeleteIssue(ctx context.Context, id int64) (bool, error) {
	query := r.dialect.Rebind(`DELETE FROM Issues WHERE issue_id = ?`)

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteIssue"), err)
		return false, repo.ErrFailedToDelete
	}
	return r.affected(ctx, "DeleteIssue", res, repo.ErrFailedToDelete)
}

func (r *implRepository) affected(ctx context.Context, method string, res sql.Result, failure error) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows affected: %v", r.dsn(method), err)
		return false, failure
	}
	return n > 0, nil
}
