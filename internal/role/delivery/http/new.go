package http

import (
	"complaint-management/internal/role"
	"complaint-management/pkg/log"
)

type handler struct {
	l  log.Logger
	uc role.UseCase
}

// New creates the HTTP handler of the role domain.
func New(l log.Logger, uc role.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
