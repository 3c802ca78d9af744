package usecase

import (
	"complaint-management/internal/department"
	"complaint-management/internal/department/repository"
	"complaint-management/pkg/log"
)

type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new department UseCase implementation.
func New(repo repository.Repository, l log.Logger) department.UseCase {
	return &implUseCase{repo: repo, l: l}
}
