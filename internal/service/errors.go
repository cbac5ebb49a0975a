package service

import (
	"errors"
	"net/http"
)

type ErrorKind string

const (
	KindValidation            ErrorKind = "validation"
	KindUnauthenticated       ErrorKind = "unauthenticated"
	KindForbidden             ErrorKind = "forbidden"
	KindNotFound              ErrorKind = "not_found"
	KindUpstreamConfiguration ErrorKind = "upstream_configuration"
	KindUpstreamCall          ErrorKind = "upstream_call"
	KindInternal              ErrorKind = "internal"
)

// AppError carries a client-safe Message. Err is the cause and is only logged.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// HTTPStatus maps the kind to a response status.
func (e *AppError) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindUpstreamCall:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func NewValidationError(msg string) error { return &AppError{Kind: KindValidation, Message: msg} }
func NewForbiddenError(msg string) error  { return &AppError{Kind: KindForbidden, Message: msg} }
func NewNotFoundError(msg string) error   { return &AppError{Kind: KindNotFound, Message: msg} }
func NewUnauthenticatedError(msg string) error {
	return &AppError{Kind: KindUnauthenticated, Message: msg}
}

func wrapError(kind ErrorKind, msg string, err error) error {
	return &AppError{Kind: kind, Message: msg, Err: err}
}

func AsAppError(err error) (*AppError, bool) {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	ae, ok := AsAppError(err)
	return ok && ae.Kind == kind
}
