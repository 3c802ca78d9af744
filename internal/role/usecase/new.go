package usecase

import (
	"github.com/go-playground/validator/v10"

	"complaint-management/internal/role"
	"complaint-management/internal/role/repository"
	"complaint-management/pkg/log"
)

type implUseCase struct {
	repo     repository.Repository
	l        log.Logger
	validate *validator.Validate
}

// New creates a new role UseCase implementation.
func New(repo repository.Repository, l log.Logger) role.UseCase {
	return &implUseCase{
		repo:     repo,
		l:        l,
		validate: validator.New(),
	}
}
