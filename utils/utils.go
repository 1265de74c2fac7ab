package utils

import (
	"golang.org/x/exp/constraints"
)

// Max returns the maximum of the two inputs.
func Max[V constraints.Ordered](a, b V) (r V) {
	if a >= b {
		return a
	}
	return b
}

// Abs returns |x|.
func Abs[V constraints.Float | constraints.Signed](x V) V {
	if x < 0 {
		return -x
	}
	return x
}

// AlmostEqual returns true if |a-b| <= tol.
func AlmostEqual[V constraints.Float](a, b, tol V) bool {
	return Abs(a-b) <= tol
}

// Pad returns a copy of s extended with zero values up to length n.
// If len(s) >= n, the copy has the same length as s.
func Pad[V any](s []V, n int) (r []V) {
	r = make([]V, Max(len(s), n))
	copy(r, s)
	return
}
