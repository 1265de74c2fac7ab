// Package quadrature implements fixed-order Gauss-Legendre rules and a composite
// integrator summing them over equal-width panels.
package quadrature

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// ErrUnsupportedOrder is returned when a quadrature order outside [1, MaxOrder] is requested.
var ErrUnsupportedOrder = errors.New("unsupported quadrature order")

// MaxOrder is the largest supported quadrature order.
const MaxOrder = 5

// Rule is a Gauss-Legendre rule on the reference interval [-1, 1]:
// int_{-1}^{1} f(x) dx ~ sum_k Weights[k] * f(Nodes[k]).
// The rule of order n has n nodes, sorted in increasing order, and is exact
// for polynomials of degree up to 2n-1.
type Rule struct {
	Nodes   []float64
	Weights []float64
}

var rules = [MaxOrder + 1]Rule{
	1: {
		Nodes:   []float64{0},
		Weights: []float64{2},
	},
	2: symmetric(
		[]float64{1 / math.Sqrt(3)},
		[]float64{1},
		0),
	3: symmetric(
		[]float64{math.Sqrt(3.0 / 5.0)},
		[]float64{5.0 / 9.0},
		8.0/9.0),
	4: symmetric(
		[]float64{
			math.Sqrt(3.0/7.0 - 2.0/7.0*math.Sqrt(6.0/5.0)),
			math.Sqrt(3.0/7.0 + 2.0/7.0*math.Sqrt(6.0/5.0)),
		},
		[]float64{
			(18 + math.Sqrt(30)) / 36,
			(18 - math.Sqrt(30)) / 36,
		},
		0),
	5: symmetric(
		[]float64{
			math.Sqrt(5-2*math.Sqrt(10.0/7.0)) / 3,
			math.Sqrt(5+2*math.Sqrt(10.0/7.0)) / 3,
		},
		[]float64{
			(322 + 13*math.Sqrt(70)) / 900,
			(322 - 13*math.Sqrt(70)) / 900,
		},
		128.0/225.0),
}

// symmetric builds a rule from its positive nodes (increasing) and their weights.
// A non-zero center weight adds the node 0.
func symmetric(nodes, weights []float64, center float64) (r Rule) {
	for i := len(nodes) - 1; i >= 0; i-- {
		r.Nodes = append(r.Nodes, -nodes[i])
		r.Weights = append(r.Weights, weights[i])
	}
	if center != 0 {
		r.Nodes = append(r.Nodes, 0)
		r.Weights = append(r.Weights, center)
	}
	r.Nodes = append(r.Nodes, nodes...)
	r.Weights = append(r.Weights, weights...)
	return
}

// NewRule returns a copy of the Gauss-Legendre rule of the given order.
func NewRule(order int) (Rule, error) {
	if order < 1 || order > MaxOrder {
		return Rule{}, fmt.Errorf("cannot NewRule: %w: no quadrature for order %d, supported orders are 1 to %d", ErrUnsupportedOrder, order, MaxOrder)
	}
	r := rules[order]
	return Rule{
		Nodes:   append([]float64{}, r.Nodes...),
		Weights: append([]float64{}, r.Weights...),
	}, nil
}

// Order returns the number of nodes of the rule.
func (r Rule) Order() int {
	return len(r.Nodes)
}

// Quadrature approximates int_a^b f(x) dx with the Gauss-Legendre rule of the given order.
// The nodes are mapped from [-1, 1] to [a, b] by x -> alpha*x + beta with
// beta = (a+b)/2 and alpha = (b-a)/2; f is never evaluated at a or b.
func Quadrature[K constraints.Float](a, b K, f func(x K) (y K), order int) (K, error) {
	if order < 1 || order > MaxOrder {
		return 0, fmt.Errorf("cannot Quadrature: %w: no quadrature for order %d, supported orders are 1 to %d", ErrUnsupportedOrder, order, MaxOrder)
	}
	return apply(&rules[order], a, b, f), nil
}

func apply[K constraints.Float](r *Rule, a, b K, f func(x K) (y K)) (y K) {
	alpha := (b - a) / 2
	beta := (a + b) / 2
	for k := range r.Nodes {
		y += K(r.Weights[k]) * f(alpha*K(r.Nodes[k])+beta)
	}
	return alpha * y
}
