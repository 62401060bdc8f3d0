package internal

import (
	"fmt"
	"math"
	"sort"
)

type KnotVec []float64

func (this KnotVec) Clone() KnotVec {
	return append(KnotVec(nil), this...)
}

func (this KnotVec) First() float64 {
	return this[0]
}

func (this KnotVec) Last() float64 {
	return this[len(this)-1]
}

func (this KnotVec) Domain() float64 {
	return this.Last() - this.First()
}

// Find the knot span containing u
//
// **params**
// + parameter
//
// **returns**
// + the index i with knots[i] <= u < knots[i+1]
//
// The span is one less than the first index whose knot is strictly greater
// than u, so among repeated knots the earliest span boundary wins. A u below
// the first knot or at/after the last knot has no containing span.
func (this KnotVec) Span(u float64) (int, error) {
	if len(this) == 0 || math.IsNaN(u) {
		return 0, fmt.Errorf("%w: u = %v", ErrParameterOutOfDomain, u)
	}

	i := sort.Search(len(this), func(i int) bool { return u < this[i] })
	if i == 0 || i == len(this) {
		return 0, fmt.Errorf("%w: u = %v not in [%v, %v)", ErrParameterOutOfDomain, u, this.First(), this.Last())
	}

	return i - 1, nil
}

// Find the knot span containing u from the left
//
// **params**
// + parameter
//
// **returns**
// + the largest index i with knots[i] < u <= knots[i+1]
//
// Used to evaluate the closed upper end of a domain, where Span has no answer.
func (this KnotVec) SpanLeft(u float64) (int, error) {
	if len(this) == 0 || math.IsNaN(u) {
		return 0, fmt.Errorf("%w: u = %v", ErrParameterOutOfDomain, u)
	}

	i := sort.Search(len(this), func(i int) bool { return u <= this[i] })
	if i == 0 || i == len(this) {
		return 0, fmt.Errorf("%w: u = %v not in (%v, %v]", ErrParameterOutOfDomain, u, this.First(), this.Last())
	}

	return i - 1, nil
}

//
// Determine the multiplicities of the values in a knot vector
//
// **returns**
// + slice of (knot value, multiplicity) pairs in knot order
//
// Knots are compared exactly; no tolerance is applied.
func (this KnotVec) Multiplicities() []KnotMultiplicity {
	if len(this) == 0 {
		return nil
	}

	mults := []KnotMultiplicity{{this[0], 0}}

	var currI int
	for _, knot := range this {
		if knot != mults[currI].Knot {
			mults = append(mults, KnotMultiplicity{knot, 0})
			currI++
		}

		mults[currI].Mult++
	}

	return mults
}

// IsClamped reports whether the first and last knots are each repeated at
// least degree+1 times.
func (this KnotVec) IsClamped(degree int) bool {
	mults := this.Multiplicities()
	if len(mults) < 2 {
		return false
	}

	return mults[0].Mult >= degree+1 && mults[len(mults)-1].Mult >= degree+1
}

func (this KnotVec) IsNonDecreasing() bool {
	for i := 1; i < len(this); i++ {
		if this[i] < this[i-1] {
			return false
		}
	}
	return true
}

func (this KnotVec) IsFinite() bool {
	for _, knot := range this {
		if math.IsNaN(knot) || math.IsInf(knot, 0) {
			return false
		}
	}
	return true
}

type KnotMultiplicity struct {
	Knot float64
	Mult int
}
