package sqlstore

import (
	"strings"
	"time"

	repo "complaint-management/internal/complaint/repository"
)

const (
	complaintColumns = `c.complaint_id, c.department_id, c.issue_id, c.user_id, c.complaint_detail, c.status, c.created_at, c.updated_at, d.deptt_name, i.issue_type`
	complaintJoins   = `FROM Complaints c
JOIN Departments d ON c.department_id = d.deptt_id
JOIN Issues i ON c.issue_id = i.issue_id`
)

func (r *implRepository) buildListQuery(opt repo.ListComplaintsOptions) (string, []any) {
	if opt.UserID == 0 {
		return `SELECT ` + complaintColumns + "\n" + complaintJoins + "\nORDER BY c.complaint_id", nil
	}
	query := `SELECT ` + complaintColumns + `, u.name AS user_name` + "\n" + complaintJoins + `
JOIN Users u ON c.user_id = u.user_id
WHERE c.user_id = ?
ORDER BY c.complaint_id`
	return r.dialect.Rebind(query), []any{opt.UserID}
}

// buildUpdateQuery writes only the provided columns. Column names come from
// this fixed list; every value is bound.
func (r *implRepository) buildUpdateQuery(opt repo.UpdateComplaintOptions, now time.Time) (string, []any, error) {
	var sets []string
	var args []any
	if opt.DepartmentID != nil {
		sets = append(sets, "department_id = ?")
		args = append(args, *opt.DepartmentID)
	}
	if opt.IssueID != nil {
		sets = append(sets, "issue_id = ?")
		args = append(args, *opt.IssueID)
	}
	if opt.Detail != nil {
		sets = append(sets, "complaint_detail = ?")
		args = append(args, *opt.Detail)
	}
	if opt.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, *opt.Status)
	}
	if len(sets) == 0 {
		return "", nil, repo.ErrNoFieldsToSet
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, now, opt.ID)

	query := `UPDATE Complaints SET ` + strings.Join(sets, ", ") + ` WHERE complaint_id = ?`
	return r.dialect.Rebind(query), args, nil
}
