package bspline

import (
	"errors"

	"github.com/alexozer/bspline/internal"
)

var (
	ErrInsufficientControlPoints = errors.New("not enough control points for curve degree")
	ErrEmptyKnotVector           = errors.New("knot vector is empty")
	ErrMalformedKnotVector       = errors.New("malformed knot vector")
	ErrInvalidStep               = errors.New("sample step must be positive and finite")

	// ErrParameterOutOfDomain is returned when no knot span contains a parameter.
	ErrParameterOutOfDomain = internal.ErrParameterOutOfDomain

	// ErrDegenerateBlend is informational. It is traced, never returned by
	// Evaluate.
	ErrDegenerateBlend = internal.ErrDegenerateBlend
)
