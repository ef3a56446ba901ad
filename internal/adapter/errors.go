package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrNotSupported        = errors.New("operation not supported by server")
	ErrInternalServerError = errors.New("internal server error")
)
