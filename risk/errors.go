package risk

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnknownMode  = errors.New("unknown calculation mode")
)
