package internal

import "errors"

var (
	ErrParameterOutOfDomain = errors.New("parameter outside of the curve domain")
	ErrDegenerateBlend      = errors.New("zero-length knot interval in blend, weight taken as 0")
)
