package http

import (
	"complaint-management/internal/department"
	"complaint-management/pkg/log"
)

type handler struct {
	l  log.Logger
	uc department.UseCase
}

func New(l log.Logger, uc department.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
