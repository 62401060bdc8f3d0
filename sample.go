package bspline

import (
	"fmt"
	"math"
)

// MaxSamples bounds the number of points a single evaluation may produce.
const MaxSamples = 1 << 24

// Evaluate samples the curve over its whole domain [knots[0], knots[last]].
//
// Samples are taken at knots[0] + k*step for every k whose parameter lies
// below the last knot, followed by one sample at exactly the last knot. For a
// domain that is a whole multiple of the step this yields
// floor(domain/step)+1 points; otherwise the end point adds one more.
//
// The result is a fresh slice on every call.
func (this *CurveEvaluator) Evaluate() ([]CurvePoint, error) {
	if err := this.Validate(); err != nil {
		tracer().Errorf("cannot evaluate curve: %v", err)
		return nil, err
	}

	return this.sampleRange(this.knots.First(), this.knots.Last())
}

// EvaluateRange samples the curve over [start, end], which must lie within
// the domain. Curves with unclamped knot vectors are sampled with
//
//	c.EvaluateRange(c.ValidDomain())
func (this *CurveEvaluator) EvaluateRange(start, end float64) ([]CurvePoint, error) {
	if err := this.Validate(); err != nil {
		tracer().Errorf("cannot evaluate curve: %v", err)
		return nil, err
	}

	if min, max := this.Domain(); !(min <= start && start <= end && end <= max) {
		return nil, fmt.Errorf("%w: range [%v, %v] not in [%v, %v]",
			ErrParameterOutOfDomain, start, end, min, max)
	}

	return this.sampleRange(start, end)
}

// SampleCount returns the number of points Evaluate produces.
func (this *CurveEvaluator) SampleCount() (int, error) {
	if err := this.Validate(); err != nil {
		return 0, err
	}

	return sampleCount(this.knots.First(), this.knots.Last(), this.step), nil
}

func (this *CurveEvaluator) sampleRange(start, end float64) ([]CurvePoint, error) {
	count := sampleCount(start, end, this.step)
	if count > MaxSamples {
		return nil, fmt.Errorf("%w: step %v over [%v, %v] exceeds %d samples",
			ErrInvalidStep, this.step, start, end, MaxSamples)
	}

	samples := make([]CurvePoint, 0, count)
	var degenerate int

	sample := func(u float64) error {
		pt, deg, err := this.point(u)
		if err != nil {
			return err
		}
		if deg {
			degenerate++
		}
		samples = append(samples, CurvePoint{u, pt})
		return nil
	}

	// u is computed from k rather than accumulated so rounding does not drift.
	for k := 0; k < count-1; k++ {
		if err := sample(start + float64(k)*this.step); err != nil {
			tracer().Errorf("sampling aborted at sample %d: %v", k, err)
			return nil, err
		}
	}

	if err := sample(end); err != nil {
		tracer().Errorf("sampling aborted at end point: %v", err)
		return nil, err
	}

	if degenerate > 0 {
		tracer().Infof("%v at %d of %d samples", ErrDegenerateBlend, degenerate, len(samples))
	}
	tracer().Debugf("sampled [%g, %g] at step %g into %d points", start, end, this.step, len(samples))

	return samples, nil
}

// sampleCount counts the parameters start + k*step below end, plus one for end.
func sampleCount(start, end, step float64) int {
	if !(end > start) {
		return 1
	}

	n := math.Floor((end - start) / step)
	if n >= MaxSamples {
		return MaxSamples + 1
	}

	interior := int(n) + 1
	for interior > 0 && start+float64(interior-1)*step >= end {
		interior--
	}

	return interior + 1
}
