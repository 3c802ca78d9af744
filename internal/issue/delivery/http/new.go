package http

import (
	"complaint-management/internal/issue"
	"complaint-management/pkg/log"
)

type handler struct {
	l  log.Logger
	uc issue.UseCase
}

func New(l log.Logger, uc issue.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
