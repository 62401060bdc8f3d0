package bspline

import (
	"fmt"
	"math"

	"github.com/alexozer/bspline/internal"

	"github.com/ungerik/go3d/float64/mat4"
	"github.com/ungerik/go3d/float64/vec3"
)

// DefaultStep is the parameter increment used by Evaluate unless SetStep is called.
const DefaultStep = 0.02

type (
	CurvePoint struct {
		U  float64
		Pt vec3.T
	}
)

// CurveEvaluator is a non-rational B-spline curve under construction.
//
// It is not safe for concurrent use: callers must not mutate the curve
// while another goroutine evaluates it.
type CurveEvaluator struct {
	// degree of curve, fixed at construction
	degree int

	// control polygon, in insertion order
	controlPoints []vec3.T

	// slice of nondecreasing knot values
	knots internal.KnotVec

	// parameter increment between samples
	step float64
}

// NewCurveEvaluator creates an empty curve of the given degree. It panics if
// degree is negative.
func NewCurveEvaluator(degree int) *CurveEvaluator {
	if degree < 0 {
		panic(fmt.Sprintf("bspline: negative curve degree %d", degree))
	}

	return &CurveEvaluator{degree: degree, step: DefaultStep}
}

func (this *CurveEvaluator) Degree() int {
	return this.degree
}

func (this *CurveEvaluator) Step() float64 {
	return this.step
}

// SetStep sets the parameter increment between samples.
func (this *CurveEvaluator) SetStep(step float64) error {
	if !(step > 0) || math.IsInf(step, 1) {
		return fmt.Errorf("%w: %v", ErrInvalidStep, step)
	}

	this.step = step
	return nil
}

func (this *CurveEvaluator) AddControlPoint(pt vec3.T) {
	this.controlPoints = append(this.controlPoints, pt)
}

func (this *CurveEvaluator) ClearControlPoints() {
	this.controlPoints = nil
}

func (this *CurveEvaluator) ControlPoints() []vec3.T {
	return append([]vec3.T(nil), this.controlPoints...)
}

// SetKnots replaces the knot vector with a copy of knots.
func (this *CurveEvaluator) SetKnots(knots []float64) {
	this.knots = internal.KnotVec(knots).Clone()
}

func (this *CurveEvaluator) AddKnot(knot float64) {
	this.knots = append(this.knots, knot)
}

func (this *CurveEvaluator) ClearKnots() {
	this.knots = nil
}

func (this *CurveEvaluator) Knots() []float64 {
	return []float64(this.knots.Clone())
}

// Determine the parameter domain of the curve
//
// **returns**
// + the first and last knot, or zeros for an empty knot vector
func (this *CurveEvaluator) Domain() (min, max float64) {
	if len(this.knots) == 0 {
		return
	}

	return this.knots.First(), this.knots.Last()
}

// ValidDomain returns [knots[degree], knots[n]] for n control points, the
// range on which every parameter has degree+1 supporting control points. It
// equals Domain for clamped knot vectors. The result is meaningful only for a
// curve that passes Validate.
func (this *CurveEvaluator) ValidDomain() (min, max float64) {
	n := len(this.controlPoints)
	if n <= this.degree || len(this.knots) <= n {
		return
	}

	return this.knots[this.degree], this.knots[n]
}

// IsClamped reports whether the end knots are repeated degree+1 times, which
// makes the curve start and end on its first and last control points.
func (this *CurveEvaluator) IsClamped() bool {
	return this.knots.IsClamped(this.degree)
}

// Validate checks the relations between degree, control points and knots
// that evaluation depends on.
func (this *CurveEvaluator) Validate() error {
	n := len(this.controlPoints)

	if need := max(2, this.degree+1); n < need {
		return fmt.Errorf("%w: degree %d needs %d, have %d",
			ErrInsufficientControlPoints, this.degree, need, n)
	}

	if len(this.knots) == 0 {
		return ErrEmptyKnotVector
	}

	if !this.knots.IsFinite() {
		return fmt.Errorf("%w: knots must be finite", ErrMalformedKnotVector)
	}

	if !this.knots.IsNonDecreasing() {
		return fmt.Errorf("%w: knots must be nondecreasing", ErrMalformedKnotVector)
	}

	if want := n + this.degree + 1; len(this.knots) != want {
		return fmt.Errorf("%w: have %d knots, %d control points of degree %d need %d",
			ErrMalformedKnotVector, len(this.knots), n, this.degree, want)
	}

	if this.knots.Domain() == 0 {
		return fmt.Errorf("%w: domain has zero length", ErrMalformedKnotVector)
	}

	return nil
}

// Point evaluates the curve at u. u may be any parameter of the closed
// valid domain, including its upper end.
func (this *CurveEvaluator) Point(u float64) (vec3.T, error) {
	if err := this.Validate(); err != nil {
		return vec3.T{}, err
	}

	pt, _, err := this.point(u)
	return pt, err
}

func (this *CurveEvaluator) point(u float64) (vec3.T, bool, error) {
	span, err := this.span(u)
	if err != nil {
		return vec3.T{}, false, err
	}

	return internal.DeBoor(u, span, this.degree, this.controlPoints, this.knots)
}

// span locates u, falling back to the span left of u where u closes the
// domain or the support of the control points.
func (this *CurveEvaluator) span(u float64) (int, error) {
	span, err := this.knots.Span(u)
	if err == nil && span < len(this.controlPoints) {
		return span, nil
	}

	if left, lerr := this.knots.SpanLeft(u); lerr == nil && left >= this.degree && left < len(this.controlPoints) {
		return left, nil
	}

	return span, err
}

// Basis returns the span containing u and the blending weights of the
// control points span-degree..span at u. The weights sum to one on the
// valid domain.
func (this *CurveEvaluator) Basis(u float64) (span int, weights []float64, err error) {
	if err = this.Validate(); err != nil {
		return
	}

	if span, err = this.span(u); err != nil {
		return
	}

	if span < this.degree || span >= len(this.controlPoints) {
		return 0, nil, fmt.Errorf("%w: span %d has no %d control points of support",
			ErrParameterOutOfDomain, span, this.degree+1)
	}

	return span, this.knots.Basis(span, u, this.degree), nil
}

// Transform returns a copy of the curve with mat applied to every control
// point. B-splines are affine invariant, so for affine mat the samples of the
// copy are the transformed samples of the original.
func (this *CurveEvaluator) Transform(mat *mat4.T) *CurveEvaluator {
	transformed := this.clone()

	for i := range transformed.controlPoints {
		transformed.controlPoints[i] = mat.MulVec3(&transformed.controlPoints[i])
	}

	return transformed
}

func (this *CurveEvaluator) clone() *CurveEvaluator {
	return &CurveEvaluator{
		degree:        this.degree,
		controlPoints: append([]vec3.T(nil), this.controlPoints...),
		knots:         this.knots.Clone(),
		step:          this.step,
	}
}
