package bspline

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ungerik/go3d/float64/vec3"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var scenarioPoints = []vec3.T{
	{-0.1, -0.5, 0},
	{-0.2, 0.6, 0},
	{0.3, 0.5, 0},
	{0.9, -0.1, 0},
}

func newCurve(degree int, pts []vec3.T, knots []float64) *CurveEvaluator {
	c := NewCurveEvaluator(degree)
	for _, pt := range pts {
		c.AddControlPoint(pt)
	}
	c.SetKnots(knots)
	return c
}

func scenarioCurve() *CurveEvaluator {
	return newCurve(3, scenarioPoints, []float64{0, 0, 0, 0, 1, 1, 1, 1})
}
