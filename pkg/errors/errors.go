package errors

import (
	stderrors "errors"
	"net/http"
)

// DefaultMessage is used when an error carries no message of its own.
const DefaultMessage = "Internal Server Error"

// HTTPError is an application error carrying the HTTP status it should be
// reported with. It is returned unchanged up to the central error reporter.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError with the given status and message.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

func NewValidationError(message string) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, message)
}

func NewUnauthorizedError(message string) *HTTPError {
	return NewHTTPError(http.StatusUnauthorized, message)
}

func NewNotFoundError(message string) *HTTPError {
	return NewHTTPError(http.StatusNotFound, message)
}

func NewConflictError(message string) *HTTPError {
	return NewHTTPError(http.StatusConflict, message)
}

func NewTooManyRequestsError(message string) *HTTPError {
	return NewHTTPError(http.StatusTooManyRequests, message)
}

// As reports whether err is, or wraps, an *HTTPError.
func As(err error) (*HTTPError, bool) {
	var httpErr *HTTPError
	if stderrors.As(err, &httpErr) && httpErr != nil {
		return httpErr, true
	}
	return nil, false
}

// Resolve returns the status and message err should be reported with. A
// missing status becomes 500 and a missing message becomes DefaultMessage.
func Resolve(err error) (int, string) {
	status := http.StatusInternalServerError
	message := DefaultMessage
	if httpErr, ok := As(err); ok {
		if httpErr.StatusCode != 0 {
			status = httpErr.StatusCode
		}
		if httpErr.Message != "" {
			message = httpErr.Message
		}
	}
	return status, message
}
