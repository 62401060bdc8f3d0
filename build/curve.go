// Package build constructs common B-spline curves.
package build

import (
	"github.com/alexozer/bspline"
	"github.com/ungerik/go3d/float64/vec3"
)

// Generate a clamped uniform knot vector
//
// **params**
// + degree of the curve
// + number of control points, at least degree+1
//
// **returns**
// + n+degree+1 knots on [0, 1]: degree+1 zeros, evenly spaced interior
// knots, degree+1 ones
func ClampedKnots(degree, n int) []float64 {
	knots := make([]float64, n+degree+1)
	spans := n - degree

	for i := degree + 1; i < n; i++ {
		knots[i] = float64(i-degree) / float64(spans)
	}
	for i := n; i < len(knots); i++ {
		knots[i] = 1
	}

	return knots
}

// ClampedUniform creates a curve of the given degree through pts with a
// clamped uniform knot vector.
func ClampedUniform(degree int, pts []vec3.T) (*bspline.CurveEvaluator, error) {
	return curve(degree, pts, ClampedKnots(degree, len(pts)))
}

// Generate a Bézier curve
//
// **params**
// + control points; the degree is len(controlPoints)-1
//
// **returns**
// + a curve with knots [0 ... 0 1 ... 1]
func Bezier(controlPoints []vec3.T) (*bspline.CurveEvaluator, error) {
	degree := max(len(controlPoints)-1, 0)

	knots := make([]float64, 2*degree+2)
	for i := len(knots) / 2; i < len(knots); i++ {
		knots[i] = 1
	}

	return curve(degree, controlPoints, knots)
}

func Line(first, last vec3.T) (*bspline.CurveEvaluator, error) {
	return Polyline([]vec3.T{first, last})
}

// Generate a degree 1 curve through the given points
//
// **params**
// + points of the polyline
//
// **returns**
// + a curve whose knots are the normalized chord lengths, so that the
// parameter is proportional to distance travelled
func Polyline(pts []vec3.T) (*bspline.CurveEvaluator, error) {
	if len(pts) < 2 {
		return curve(1, pts, nil)
	}

	knots := make([]float64, len(pts)+2)

	var lsum float64
	for i := 0; i < len(pts)-1; i++ {
		lsum += vec3.Distance(&pts[i], &pts[i+1])
		knots[i+2] = lsum
	}
	knots[len(knots)-1] = lsum

	// coincident points give no length to normalize by
	if lsum > 0 {
		for i := range knots {
			knots[i] /= lsum
		}
	}

	return curve(1, pts, knots)
}

func curve(degree int, pts []vec3.T, knots []float64) (*bspline.CurveEvaluator, error) {
	c := bspline.NewCurveEvaluator(degree)
	for _, pt := range pts {
		c.AddControlPoint(pt)
	}
	c.SetKnots(knots)

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}
