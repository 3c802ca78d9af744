package usecase

import (
	"complaint-management/internal/complaint"
	"complaint-management/internal/complaint/repository"
	"complaint-management/pkg/log"
)

type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

func New(repo repository.Repository, l log.Logger) complaint.UseCase {
	return &implUseCase{repo: repo, l: l}
}
