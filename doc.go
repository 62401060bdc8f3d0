// Package bspline evaluates non-rational B-spline curves in 3D with de Boor's
// algorithm and samples them into polylines for a renderer.
//
// A CurveEvaluator holds a degree, an ordered slice of control points and a
// non-decreasing knot vector. Evaluate walks the parameter domain at a fixed
// step and returns one CurvePoint per sample, always including the domain's
// upper end:
//
//	c := bspline.NewCurveEvaluator(3)
//	c.AddControlPoint(vec3.T{-0.1, -0.5, 0})
//	...
//	c.SetKnots([]float64{0, 0, 0, 0, 1, 1, 1, 1})
//	pts, err := c.Evaluate()
//
// # Degenerate knot intervals
//
// Where the recurrence would divide by a zero-length knot interval the blend
// weight is taken as 0, collapsing the blend onto its left operand. Spans found
// by the sampler never meet such an interval; the convention matters only for
// knot vectors with multiplicity above degree+1 evaluated through lower-level
// entry points.
//
// # Tracing
//
// The package traces to the schuko tracer selected by key "bspline".
package bspline

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'bspline'.
func tracer() tracing.Trace {
	return tracing.Select("bspline")
}
