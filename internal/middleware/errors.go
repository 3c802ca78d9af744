package middleware

import pkgErrors "complaint-management/pkg/errors"

var (
	errNoToken         = pkgErrors.NewUnauthorizedError("No token")
	errInvalidToken    = pkgErrors.NewUnauthorizedError("Invalid token")
	errTooManyRequests = pkgErrors.NewTooManyRequestsError("Too many requests")
)
