package bignum

import (
	"fmt"
	"math/big"
)

// GaussLegendre returns the nodes and weights of the order-point Gauss-Legendre rule on
// [-1, 1], evaluated from their closed forms with prec bits of precision.
// Nodes are sorted in increasing order; they are also the roots of the Legendre
// polynomial of degree order.
// Supported orders are 1 to 5, any other value panics.
func GaussLegendre(order int, prec uint) (nodes, weights []*big.Float) {

	one := NewFloat(1, prec)
	two := NewFloat(2, prec)

	switch order {
	case 1:
		return []*big.Float{NewFloat(0, prec)}, []*big.Float{two}
	case 2:
		// 1/sqrt(3)
		x := new(big.Float).Quo(one, Sqrt(NewFloat(3, prec)))
		return symmetric(nil, []*big.Float{x}), []*big.Float{one, NewFloat(1, prec)}
	case 3:
		// sqrt(3/5)
		x := Sqrt(Quo(3, 5, prec))
		return symmetric(NewFloat(0, prec), []*big.Float{x}),
			[]*big.Float{Quo(5, 9, prec), Quo(8, 9, prec), Quo(5, 9, prec)}
	case 4:
		// sqrt(3/7 -/+ 2/7 * sqrt(6/5))
		r := new(big.Float).Mul(Quo(2, 7, prec), Sqrt(Quo(6, 5, prec)))
		x0 := Sqrt(new(big.Float).Sub(Quo(3, 7, prec), r))
		x1 := Sqrt(new(big.Float).Add(Quo(3, 7, prec), r))

		// (18 +/- sqrt(30))/36
		s := Sqrt(NewFloat(30, prec))
		w0 := new(big.Float).Add(NewFloat(18, prec), s)
		w0.Quo(w0, NewFloat(36, prec))
		w1 := new(big.Float).Sub(NewFloat(18, prec), s)
		w1.Quo(w1, NewFloat(36, prec))

		return symmetric(nil, []*big.Float{x0, x1}), []*big.Float{w1, w0, w0, w1}
	case 5:
		// 1/3 * sqrt(5 -/+ 2 * sqrt(10/7))
		r := new(big.Float).Mul(two, Sqrt(Quo(10, 7, prec)))
		x1 := Sqrt(new(big.Float).Sub(NewFloat(5, prec), r))
		x1.Quo(x1, NewFloat(3, prec))
		x2 := Sqrt(new(big.Float).Add(NewFloat(5, prec), r))
		x2.Quo(x2, NewFloat(3, prec))

		// (322 +/- 13 * sqrt(70))/900
		s := new(big.Float).Mul(NewFloat(13, prec), Sqrt(NewFloat(70, prec)))
		w1 := new(big.Float).Add(NewFloat(322, prec), s)
		w1.Quo(w1, NewFloat(900, prec))
		w2 := new(big.Float).Sub(NewFloat(322, prec), s)
		w2.Quo(w2, NewFloat(900, prec))

		return symmetric(NewFloat(0, prec), []*big.Float{x1, x2}), []*big.Float{w2, w1, Quo(128, 225, prec), w1, w2}
	default:
		panic(fmt.Sprintf("cannot GaussLegendre: no closed form for order %d", order))
	}
}

// symmetric returns the sorted nodes {-x_{n-1}, ..., -x_0, [center], x_0, ..., x_{n-1}}
// from the positive nodes sorted in increasing order.
func symmetric(center *big.Float, positive []*big.Float) (nodes []*big.Float) {
	for i := len(positive) - 1; i >= 0; i-- {
		nodes = append(nodes, new(big.Float).Neg(positive[i]))
	}
	if center != nil {
		nodes = append(nodes, center)
	}
	return append(nodes, positive...)
}
