package orthobasis

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Rescale returns a copy of the basis where the element of degree n is scaled so that
// its leading coefficient equals lead(n). The result is orthogonal but not orthonormal.
func (b Basis[K]) Rescale(lead func(n int) K) (c Basis[K]) {
	c = make(Basis[K], len(b))
	for n := range b {
		c[n] = b[n].MulScalar(lead(n) / b[n].Leading())
	}
	return
}

// Monic is the leading coefficient of monic polynomials: 1 for every degree.
func Monic[K constraints.Float](n int) K {
	return 1
}

// ChebyshevLeading is the leading coefficient of the Chebyshev polynomial of the first
// kind T_n: 1 for n = 0 and 2^(n-1) otherwise.
func ChebyshevLeading[K constraints.Float](n int) K {
	if n == 0 {
		return 1
	}
	return K(math.Ldexp(1, n-1))
}

// ChebyshevSecondKindLeading is the leading coefficient of the Chebyshev polynomial of
// the second kind U_n: 2^n.
func ChebyshevSecondKindLeading[K constraints.Float](n int) K {
	return K(math.Ldexp(1, n))
}

// LegendreLeading is the leading coefficient of the Legendre polynomial P_n normalized
// by P_n(1) = 1: (2n)! / (2^n (n!)^2).
func LegendreLeading[K constraints.Float](n int) K {
	c := 1.0
	for k := 1; k <= n; k++ {
		// (2k)(2k-1) / (2 k^2)
		c *= float64(2*k-1) / float64(k)
	}
	return K(c)
}
