// Package domain contains the proportional veto core algorithms: exact
// veto-power arithmetic, profile validation, the brute-force veto-coalition
// search with its derived core, and the classical successive-elimination
// procedure kept as a display overlay.
package domain

import "fmt"

// epsilon bounds the absolute difference below which two floating-point
// quantities are treated as equal. Display-side scalars only; the veto
// inequality itself is decided in exact integer arithmetic.
const epsilon = 1e-9

// Fraction is an exact non-negative rational in lowest terms.
type Fraction struct {
	Num int64
	Den int64
}

// NewFraction returns num/den reduced by their greatest common divisor.
// den must be positive.
func NewFraction(num, den int64) Fraction {
	g := gcd(num, den)
	if g == 0 {
		return Fraction{Num: num, Den: den}
	}

	return Fraction{Num: num / g, Den: den / g}
}

// VetoPower returns the reduced fraction (m-1)/n, the veto power of a single
// voter among n over m alternatives. With m = 1 the numerator is zero: no
// coalition ever has positive veto power.
func VetoPower(m, n int) Fraction {
	return NewFraction(int64(m-1), int64(n))
}

// Scale returns k*f in lowest terms.
func (f Fraction) Scale(k int64) Fraction {
	return NewFraction(f.Num*k, f.Den)
}

// AtLeastInt reports whether f >= k, decided exactly by cross-multiplication.
func (f Fraction) AtLeastInt(k int64) bool {
	return f.Num >= k*f.Den
}

// IsZero reports whether the fraction is zero.
func (f Fraction) IsZero() bool {
	return f.Num == 0
}

// Float returns the fraction as a float64, for display scalars.
func (f Fraction) Float() float64 {
	return float64(f.Num) / float64(f.Den)
}

func (f Fraction) String() string {
	return fmt.Sprintf("%d/%d", f.Num, f.Den)
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// geqFloat is the tolerance-aware ">=" for floating display comparisons:
// a and b are considered equal when |a-b| < epsilon, so a rounding error
// never flips the decision.
func geqFloat(a, b float64) bool {
	return a > b || b-a < epsilon
}
