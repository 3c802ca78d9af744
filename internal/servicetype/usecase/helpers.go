package usecase

import (
	"context"
	"strings"

	"complaint-management/internal/issue"
	"complaint-management/internal/servicetype"
	repo "complaint-management/internal/servicetype/repository"
)

func normalizeName(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// checkIssueAndName verifies the issue exists and that no other service type
// of that issue uses name.
func (uc *implUseCase) checkIssueAndName(ctx context.Context, issueID int64, name string, excludeID int64) error {
	if _, err := uc.issueUC.Detail(ctx, issueID); err != nil {
		if err == issue.ErrIssueNotFound {
			return servicetype.ErrIssueNotFound
		}
		return err
	}

	existing, err := uc.repo.GetOneServiceType(ctx, repo.GetOneServiceTypeOptions{
		IssueID:   issueID,
		Name:      name,
		ExcludeID: excludeID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "servicetype.usecase.checkIssueAndName.GetOneServiceType: %v", err)
		return err
	}
	if existing.ID != 0 {
		return servicetype.ErrDuplicateName
	}
	return nil
}
