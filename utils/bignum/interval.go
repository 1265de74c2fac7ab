package bignum

import (
	"math/big"
)

// Interval is a struct storing the domain [A, B] on which
// reference nodes are mapped.
type Interval struct {
	A, B big.Float
}

// NewInterval returns the interval [a, b] with prec bits of precision.
func NewInterval(a, b float64, prec uint) Interval {
	return Interval{
		A: *NewFloat(a, prec),
		B: *NewFloat(b, prec),
	}
}

// affine returns the midpoint (a+b)/2 and the half-width (b-a)/2 of the interval.
func (inter Interval) affine() (mid, half *big.Float) {
	prec := inter.A.Prec()
	h := NewFloat(0.5, prec)

	mid = new(big.Float).Add(&inter.A, &inter.B)
	mid.Mul(mid, h)
	half = new(big.Float).Sub(&inter.B, &inter.A)
	half.Mul(half, h)
	return
}

// Map returns the points x of [-1, 1] mapped onto the interval by x -> mid + half*x.
// The inputs are left untouched.
func (inter Interval) Map(x []*big.Float) (y []*big.Float) {
	mid, half := inter.affine()
	y = make([]*big.Float, len(x))
	for i := range x {
		y[i] = new(big.Float).SetPrec(inter.A.Prec()).Mul(x[i], half)
		y[i].Add(y[i], mid)
	}
	return
}
