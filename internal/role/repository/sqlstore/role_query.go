package sqlstore

import (
	"strings"

	repo "complaint-management/internal/role/repository"
)

const roleColumns = `role_id, role_name, created_at, updated_at`

// buildGetOneQuery builds the WHERE clause for GetOneRole. Non-zero fields are ANDed;
// an empty clause means no identifying filter was set.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneRoleOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.ID != 0 {
		conditions = append(conditions, "role_id = ?")
		args = append(args, opt.ID)
	}
	if opt.Name != "" {
		conditions = append(conditions, "role_name = ?")
		args = append(args, opt.Name)
	}
	// ExcludeID alone would match an arbitrary row.
	if len(conditions) == 0 {
		return "", nil
	}
	if opt.ExcludeID != 0 {
		conditions = append(conditions, "role_id <> ?")
		args = append(args, opt.ExcludeID)
	}
	return strings.Join(conditions, " AND "), args
}
