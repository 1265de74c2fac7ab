package bignum

import (
	"math/big"
)

// ChebyshevNodes returns the n roots of the Chebyshev polynomial of the first kind
// T_n, cos((2k-1)pi/(2n)) for k = 1..n, mapped onto the interval and sorted in
// increasing order.
func ChebyshevNodes(n int, interval Interval) (nodes []*big.Float) {

	prec := interval.A.Prec()

	nodes = make([]*big.Float, n)

	x, y := interval.affine()

	PiOverN := Pi(prec)
	PiOverN.Quo(PiOverN, new(big.Float).SetInt64(int64(n)))

	for k := 1; k < n+1; k++ {
		up := new(big.Float).SetPrec(prec).SetFloat64(float64(k) - 0.5)
		up.Mul(up, PiOverN)
		up = Cos(up)
		up.Mul(up, y)
		up.Add(up, x)
		nodes[n-k] = up
	}

	return
}

// ChebyshevSecondKindNodes returns the n roots of the Chebyshev polynomial of the
// second kind U_n, cos(k*pi/(n+1)) for k = 1..n, mapped onto the interval and sorted
// in increasing order.
func ChebyshevSecondKindNodes(n int, interval Interval) (nodes []*big.Float) {

	prec := interval.A.Prec()

	nodes = make([]*big.Float, n)

	x, y := interval.affine()

	PiOverN := Pi(prec)
	PiOverN.Quo(PiOverN, new(big.Float).SetInt64(int64(n+1)))

	for k := 1; k < n+1; k++ {
		up := new(big.Float).SetPrec(prec).SetInt64(int64(k))
		up.Mul(up, PiOverN)
		up = Cos(up)
		up.Mul(up, y)
		up.Add(up, x)
		nodes[n-k] = up
	}

	return
}
