package curve

import "errors"

var (
	ErrEmptyCurve    = errors.New("empty curve")
	ErrOutOfDomain   = errors.New("out of domain")
	ErrNotInvertible = errors.New("not invertible")
	ErrBadData       = errors.New("bad data")
)
