package internal

import "fmt"

// Epsilon is the parameter-space tolerance used when snapping sample
// parameters onto knot values.
const Epsilon = 1e-9

type KnotVec []float64

// UniformKnots returns the knot vector 0, 1, ..., n-1.
func UniformKnots(n int) KnotVec {
	knots := make(KnotVec, n)
	for i := range knots {
		knots[i] = float64(i)
	}

	return knots
}

func (this KnotVec) Clone() KnotVec {
	return append(KnotVec(nil), this...)
}

// At returns the i-th knot. Index len(this) is allowed and reads the last
// knot, so a vector that omits its final knot behaves as if that knot
// repeated the last supplied one.
func (this KnotVec) At(i int) float64 {
	if i == len(this) {
		return this[len(this)-1]
	}

	return this[i]
}

func (this KnotVec) IsNonDecreasing() bool {
	if len(this) == 0 {
		return true
	}

	rep := this[0]
	for _, knot := range this[1:] {
		if knot < rep {
			return false
		}
		rep = knot
	}
	return true
}

// Find the span of the given parameter, searching only spans low..high
//
// **params**
// + first span index to consider, normally the degree
// + last span index to consider, normally the index of the last control point
// + parameter
//
// **returns**
// + the largest index s in [low, high] with knots[s] <= u, clamped to the range
//
func (this KnotVec) Span(low, high int, u float64) int {
	if u >= this.At(high+1) {
		return high
	}

	if u < this[low] {
		return low
	}

	for low < high {
		mid := (low + high + 1) / 2
		if u < this[mid] {
			high = mid - 1
		} else {
			low = mid
		}
	}

	return low
}

// LastSpan returns the last non-empty span in [low, high], or high when every
// span is empty.
func (this KnotVec) LastSpan(low, high int) int {
	for s := high; s >= low; s-- {
		if this[s] < this.At(s+1) {
			return s
		}
	}

	return high
}

func (this KnotVec) checkIndex(i, degree int) {
	if degree < 0 {
		panic(fmt.Sprintf("splines: negative basis degree %d", degree))
	}

	if i < 0 || i+degree > len(this)-1 {
		panic(fmt.Sprintf("splines: basis index %d of degree %d out of range for %d knots", i, degree, len(this)))
	}
}
