package adapter

import "errors"

// Sentinel errors mapped from HTTP status codes by mapHTTPError. Callers
// match them with [errors.Is] for transport-agnostic error handling.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
)
