package adapter

import "errors"

// ErrLookupFailure wraps every failure of a catalog lookup. Callers match
// on it and never need to tell the causes apart.
var ErrLookupFailure = errors.New("card lookup failed")

// Status errors returned by mapHTTPError. They are always wrapped in
// [ErrLookupFailure] before leaving the package.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
)

// ErrMalformedCard is returned when the catalog answers with a card that
// lacks an image or a USD price.
var ErrMalformedCard = errors.New("malformed card")
