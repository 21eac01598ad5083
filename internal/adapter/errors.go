package adapter

import "errors"

// HTTP status errors of REST backends, mapped by mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
)

var (
	// ErrStorageUnavailable wraps every failure of a photo storage backend.
	ErrStorageUnavailable = errors.New("photo storage unavailable")

	// ErrMailNotSent wraps every failure of a mail backend.
	ErrMailNotSent = errors.New("mail was not sent")

	// ErrUnknownPhotoBackend is returned for an unsupported backend name.
	ErrUnknownPhotoBackend = errors.New("unknown photo storage backend")

	// ErrEmptyAddress is returned when a REST backend has no base URL.
	ErrEmptyAddress = errors.New("empty address")
)
