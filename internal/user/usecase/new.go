package usecase

import (
	"complaint-management/internal/user"
	"complaint-management/internal/user/repository"
	"complaint-management/pkg/encrypter"
	"complaint-management/pkg/log"
	"complaint-management/pkg/scope"
)

type implUseCase struct {
	repo       repository.Repository
	encrypter  encrypter.Encrypter
	jwtManager scope.Manager
	l          log.Logger
}

// New creates the user UseCase, which also owns login sessions.
func New(repo repository.Repository, enc encrypter.Encrypter, jwtManager scope.Manager, l log.Logger) user.UseCase {
	return &implUseCase{
		repo:       repo,
		encrypter:  enc,
		jwtManager: jwtManager,
		l:          l,
	}
}
