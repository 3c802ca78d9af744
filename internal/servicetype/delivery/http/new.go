package http

import (
	"complaint-management/internal/servicetype"
	"complaint-management/pkg/log"
)

type handler struct {
	l  log.Logger
	uc servicetype.UseCase
}

func New(l log.Logger, uc servicetype.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
