// Package bignum implements high-precision reference values (Pi, cosines, Chebyshev nodes,
// Gauss-Legendre closed forms) used to check double-precision tables and roots.
package bignum

import (
	"math/big"
)

const pi = "3.1415926535897932384626433832795028841971693993751058209749445923078164062862089986280348253421170679821480865132823066470938446095505822317253594081284811174502841027019385211055596446229489549303819644288109756659334461284756482337867831652712019091456485669234603486104543266482133936072602491412737245870066063155881748815209209628292540917153643678925903600113305305488204665213841469519415116094330572703657595919530921861173819326117931051185480744623799627495673518857527248912279381830119491298336733624406566430860213949463952247371907021798609437027705392171762931767523846748184676694051320005681271452635608277857713427577896091736371787214684409012249534301465495853710507922796892589235420199561121290219608640344181598136297747713099605187072113499999983729780499510597317328160963185950244594553469083026425223082533446850352619311881710100031378387528865875332083814206171776691473035982534904287554687311595628638823537875937519577818577805321712268066130019278766111959092164201989"

// Pi returns Pi with prec bits of precision.
func Pi(prec uint) *big.Float {
	pi, _ := new(big.Float).SetPrec(prec).SetString(pi)
	return pi
}

// NewFloat returns x as a big.Float with prec bits of precision.
func NewFloat(x float64, prec uint) *big.Float {
	return new(big.Float).SetPrec(prec).SetFloat64(x)
}

// Quo returns a/b with prec bits of precision.
func Quo(a, b int64, prec uint) *big.Float {
	x := new(big.Float).SetPrec(prec).SetInt64(a)
	return x.Quo(x, new(big.Float).SetPrec(prec).SetInt64(b))
}

// Sqrt returns sqrt(x) with the precision of x.
func Sqrt(x *big.Float) *big.Float {
	return new(big.Float).SetPrec(x.Prec()).Sqrt(x)
}

// Cos returns cos(x) with the precision of x.
//
// With k = prec/2 halvings, s = (x/2^k)^2 approximates 2-2cos(x/2^k); each step
// s <- s(4-s) doubles the angle, and cos(x) = 1 - s/2 after k steps. The error
// shrinks as (1/4)^k (Johansson, An elementary algorithm to evaluate trigonometric
// functions to high precision, 2018).
func Cos(x *big.Float) *big.Float {

	prec := x.Prec()
	k := int(prec >> 1)

	s := new(big.Float).SetPrec(prec).SetMantExp(x, -k)
	s.Mul(s, s)

	four := NewFloat(4, prec)
	tmp := new(big.Float).SetPrec(prec)
	for i := 0; i < k; i++ {
		tmp.Sub(four, s)
		s.Mul(s, tmp)
	}

	s.SetMantExp(s, -1)
	return s.Sub(NewFloat(1, prec), s)
}

// Float64s rounds each element of x to the nearest float64.
func Float64s(x []*big.Float) (y []float64) {
	y = make([]float64, len(x))
	for i := range x {
		y[i], _ = x[i].Float64()
	}
	return
}
