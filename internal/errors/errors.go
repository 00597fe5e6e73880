package errors

import "net/http"

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

func New(message string, statusCode int) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: message, StatusCode: statusCode}
}

// Shorthand constructors for the error taxonomy used across services.

func NotFound(message string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusNotFound}
}

func Forbidden(message string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusForbidden}
}

func Unauthorized(message string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusUnauthorized}
}

// Conflict covers uniqueness violations (email/name/category name already
// taken). Clients receive these as 400, not 409.
func Conflict(message string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusBadRequest}
}

func BadRequest(message string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusBadRequest}
}

func statusCodeIs(err error, statusCode int) bool {
	e, ok := err.(*ErrorWithStatusCode)
	return ok && e.StatusCode == statusCode
}

func IsNotFound(err error) bool {
	return statusCodeIs(err, http.StatusNotFound)
}

func IsForbidden(err error) bool {
	return statusCodeIs(err, http.StatusForbidden)
}
