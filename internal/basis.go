package internal

// Compute the non-vanishing basis functions
// (corresponds to algorithm 2.2 from The NURBS book, Piegl & Tiller 2nd edition)
//
// **params**
// + integer knot span index
// + float parameter
// + integer degree of function
//
// **returns**
// + the degree+1 basis functions N[span-degree..span] at u
//
// A zero-width triangle entry contributes nothing, matching the zero-weight
// convention of DeBoor.
func (this KnotVec) Basis(span int, u float64, degree int) []float64 {
	basisFunctions := make([]float64, degree+1)
	left := make([]float64, degree+1)
	right := make([]float64, degree+1)

	basisFunctions[0] = 1

	for j := 1; j <= degree; j++ {
		left[j] = u - this[span+1-j]
		right[j] = this[span+j] - u
		var saved float64

		for r := 0; r < j; r++ {
			var temp float64
			if denom := right[r+1] + left[j-r]; denom != 0 {
				temp = basisFunctions[r] / denom
			}
			basisFunctions[r] = saved + right[r+1]*temp
			saved = left[j-r] * temp
		}

		basisFunctions[j] = saved
	}

	return basisFunctions
}
