package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")

	ErrInvalidBaseURL   = errors.New("invalid PostgREST base url")
	ErrDecodingResponse = errors.New("error decoding PostgREST response")
	ErrIssuingRoleToken = errors.New("error issuing role token")
	ErrInvalidQuery     = errors.New("invalid select query")
)
