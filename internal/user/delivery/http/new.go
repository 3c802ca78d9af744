package http

import (
	"time"

	"complaint-management/internal/user"
	"complaint-management/pkg/log"
)

// CookieConfig controls the session cookies written at login.
type CookieConfig struct {
	Secure bool
	Domain string
	MaxAge time.Duration
}

type handler struct {
	l      log.Logger
	uc     user.UseCase
	cookie CookieConfig
}

func New(l log.Logger, uc user.UseCase, cookie CookieConfig) *handler {
	return &handler{l: l, uc: uc, cookie: cookie}
}
