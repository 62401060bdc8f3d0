package internal

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ungerik/go3d/float64/vec3"
)

func TestDeBoorLinear(t *testing.T) {
	cpts := []vec3.T{{0, 0, 0}, {2, 0, 0}}
	knots := KnotVec{0, 0, 1, 1}

	pt, degenerate, err := DeBoor(0.25, 1, 1, cpts, knots)
	require.NoError(t, err)
	assert.False(t, degenerate)
	assert.Equal(t, vec3.T{0.5, 0, 0}, pt)
}

func TestDeBoorMatchesBernstein(t *testing.T) {
	cpts := []vec3.T{{-0.1, -0.5, 0}, {-0.2, 0.6, 0}, {0.3, 0.5, 0}, {0.9, -0.1, 0}}
	knots := KnotVec{0, 0, 0, 0, 1, 1, 1, 1}

	for _, u := range []float64{0, 0.1, 0.5, 0.77} {
		got, _, err := DeBoor(u, 3, 3, cpts, knots)
		require.NoError(t, err)

		s := 1 - u
		b := [4]float64{s * s * s, 3 * u * s * s, 3 * u * u * s, u * u * u}
		var want vec3.T
		for i, c := range cpts {
			scaled := c.Scaled(b[i])
			want.Add(&scaled)
		}

		if d := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); d != "" {
			t.Errorf("u = %v: %s", u, d)
		}
	}
}

func TestDeBoorMatchesBasis(t *testing.T) {
	cpts := []vec3.T{{0, 0, 0}, {1, 2, 0}, {2, -1, 1}, {3, 3, 2}, {4, 0, -1}, {5, 1, 0}, {6, 2, 3}}
	knots := KnotVec{0, 0, 0, 0, 0.3, 0.5, 0.8, 1, 1, 1, 1}

	for _, u := range []float64{0, 0.05, 0.3, 0.42, 0.5, 0.61, 0.8, 0.999} {
		span, err := knots.Span(u)
		require.NoError(t, err)

		got, degenerate, err := DeBoor(u, span, 3, cpts, knots)
		require.NoError(t, err)
		assert.False(t, degenerate)

		basis := knots.Basis(span, u, 3)
		var want vec3.T
		var sum float64
		for j, n := range basis {
			scaled := cpts[span-3+j].Scaled(n)
			want.Add(&scaled)
			sum += n
		}

		assert.InDelta(t, 1, sum, 1e-12, "partition of unity at u = %v", u)
		if d := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); d != "" {
			t.Errorf("u = %v: %s", u, d)
		}
	}
}

func TestDeBoorZeroLengthInterval(t *testing.T) {
	cpts := []vec3.T{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}}
	knots := KnotVec{0, 0, 0, 1, 1}

	// span 1 is [0, 0), so the only blend divides by zero
	pt, degenerate, err := DeBoor(0, 1, 1, cpts, knots)
	require.NoError(t, err)
	assert.True(t, degenerate)
	assert.Equal(t, cpts[0], pt)
}

func TestDeBoorOutsideSupport(t *testing.T) {
	cpts := []vec3.T{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {3, 0, 0}}
	knots := KnotVec{0, 1, 2, 3, 4, 5, 6, 7}

	for _, span := range []int{0, 2, 4, 6} {
		_, _, err := DeBoor(float64(span)+0.5, span, 3, cpts, knots)
		assert.ErrorIs(t, err, ErrParameterOutOfDomain, "span %d", span)
	}

	_, _, err := DeBoor(3.5, 3, 3, cpts, knots)
	assert.NoError(t, err)
}

func TestDeBoorHighDegree(t *testing.T) {
	const degree = maxStackDegree + 2

	cpts := make([]vec3.T, degree+1)
	for i := range cpts {
		cpts[i] = vec3.T{float64(i), float64(i * i), 1}
	}
	knots := make(KnotVec, 2*degree+2)
	for i := degree + 1; i < len(knots); i++ {
		knots[i] = 1
	}

	start, _, err := DeBoor(0, degree, degree, cpts, knots)
	require.NoError(t, err)
	assert.Equal(t, cpts[0], start)

	end, _, err := DeBoor(1, degree, degree, cpts, knots)
	require.NoError(t, err)
	assert.Equal(t, cpts[degree], end)

	mid, _, err := DeBoor(0.5, degree, degree, cpts, knots)
	require.NoError(t, err)
	// x runs linearly over the control points
	assert.InDelta(t, float64(degree)/2, mid[0], 1e-12)
	assert.InDelta(t, 1, mid[2], 1e-12)
}
