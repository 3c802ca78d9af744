package usecase

import (
	"complaint-management/internal/issue"
	"complaint-management/internal/issue/repository"
	"complaint-management/pkg/log"
)

type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new issue UseCase implementation.
func New(repo repository.Repository, l log.Logger) issue.UseCase {
	return &implUseCase{repo: repo, l: l}
}
