package http

import (
	"complaint-management/internal/complaint"
	"complaint-management/pkg/log"
)

type handler struct {
	l  log.Logger
	uc complaint.UseCase
}

func New(l log.Logger, uc complaint.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
