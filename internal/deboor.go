package internal

import (
	"fmt"

	"github.com/ungerik/go3d/float64/vec3"
)

// Degrees up to this blend in a stack buffer.
const maxStackDegree = 7

// Compute a point on a non-rational B-spline curve with de Boor's algorithm
//
// **params**
// + parameter on the curve at which the point is to be evaluated
// + index of the knot span containing u
// + degree of the curve
// + control points
// + knot vector, len(controlPoints) + degree + 1 long
//
// **returns**
// + the point on the curve
// + whether a zero-length knot interval was met during blending
//
// A blend across a zero-length knot interval has no defined weight. The weight
// is taken as 0, so the blended point collapses onto its left operand. For a
// span found by KnotVec.Span or KnotVec.SpanLeft this cannot happen; it only
// shows up when a caller passes an empty span of a repeated knot.
func DeBoor(u float64, span, degree int, controlPoints []vec3.T, knots KnotVec) (vec3.T, bool, error) {
	if span < degree || span >= len(controlPoints) || span+degree >= len(knots) {
		return vec3.T{}, false, fmt.Errorf("%w: span %d has no %d control points of support",
			ErrParameterOutOfDomain, span, degree+1)
	}

	var buf [maxStackDegree + 1]vec3.T
	var a []vec3.T
	if degree <= maxStackDegree {
		a = buf[:degree+1]
	} else {
		a = make([]vec3.T, degree+1)
	}

	for j := 0; j <= degree; j++ {
		a[degree-j] = controlPoints[span-j]
	}

	var degenerate bool
	for r := degree; r >= 1; r-- {
		j := span - r
		for i := 0; i < r; i++ {
			j++

			var w float64
			if denom := knots[j+r] - knots[j]; denom != 0 {
				w = (u - knots[j]) / denom
			} else {
				degenerate = true
			}

			left, right := a[i].Scaled(1-w), a[i+1].Scaled(w)
			a[i] = vec3.Add(&left, &right)
		}
	}

	return a[0], degenerate, nil
}
