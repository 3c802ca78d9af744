package middleware

import (
	"complaint-management/pkg/log"
	"complaint-management/pkg/scope"
)

type Middleware struct {
	l          log.Logger
	jwtManager scope.Manager
}

func New(l log.Logger, jwtManager scope.Manager) Middleware {
	return Middleware{
		l:          l,
		jwtManager: jwtManager,
	}
}
