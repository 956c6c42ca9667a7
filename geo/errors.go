package geo

import "errors"

var (
	ErrConfiguration = errors.New("cell size is not set")
	ErrOutOfBounds   = errors.New("site is not on the grid")
	ErrBadPolygon    = errors.New("bad polygon")
)
