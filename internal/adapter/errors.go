package adapter

import "errors"

// Operation errors. Every BlobStore failure wraps exactly one of these.
var (
	ErrUpload   = errors.New("upload failed")
	ErrNotFound = errors.New("object not found")
	ErrDownload = errors.New("download failed")
	ErrList     = errors.New("list failed")
	ErrDelete   = errors.New("delete failed")
)

// HTTP status errors produced by mapHTTPError. They are wrapped together
// with an operation error so callers can tell an expired token from a
// server outage.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrConflict            = errors.New("conflict")
	ErrTooLarge            = errors.New("payload too large")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnavailable         = errors.New("service unavailable")
)

// ErrInvalidKey is returned for empty keys or keys containing '/'.
var ErrInvalidKey = errors.New("invalid object key")
