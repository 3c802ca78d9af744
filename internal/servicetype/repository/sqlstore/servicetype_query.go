package sqlstore

import (
	"strings"

	repo "complaint-management/internal/servicetype/repository"
)

// selectJoined reads service types with the type of their issue.
const selectJoined = `SELECT s.service_id, s.issue_id, s.service_name, i.issue_type, s.created_at, s.updated_at
FROM ServiceTypes s
JOIN Issues i ON s.issue_id = i.issue_id`

func (r *implRepository) buildGetOneQuery(opt repo.GetOneServiceTypeOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.ID != 0 {
		conditions = append(conditions, "s.service_id = ?")
		args = append(args, opt.ID)
	}
	if opt.IssueID != 0 {
		conditions = append(conditions, "s.issue_id = ?")
		args = append(args, opt.IssueID)
	}
	if opt.Name != "" {
		conditions = append(conditions, "s.service_name = ?")
		args = append(args, opt.Name)
	}
	// ExcludeID alone would match an arbitrary row.
	if len(conditions) == 0 {
		return "", nil
	}
	if opt.ExcludeID != 0 {
		conditions = append(conditions, "s.service_id <> ?")
		args = append(args, opt.ExcludeID)
	}
	return strings.Join(conditions, " AND "), args
}
