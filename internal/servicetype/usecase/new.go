package usecase

import (
	"complaint-management/internal/issue"
	"complaint-management/internal/servicetype"
	"complaint-management/internal/servicetype/repository"
	"complaint-management/pkg/log"
)

type implUseCase struct {
	repo    repository.Repository
	issueUC issue.UseCase
	l       log.Logger
}

// New creates the service type UseCase. issueUC resolves the issue a
// service type is attached to.
func New(repo repository.Repository, issueUC issue.UseCase, l log.Logger) servicetype.UseCase {
	return &implUseCase{repo: repo, issueUC: issueUC, l: l}
}
