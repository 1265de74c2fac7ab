// Package innerproduct implements weighted inner products on polynomials,
// <P, Q> = int_a^b w(x) P(x) Q(x) dx, evaluated with the composite Gauss-Legendre
// integrator of the quadrature package.
package innerproduct

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"

	"github.com/tuneinsight/orthopoly/polynomial"
	"github.com/tuneinsight/orthopoly/quadrature"
)

// InnerProduct is an interface for inner products on polynomials.
type InnerProduct[K constraints.Float] interface {
	// Dot returns <p, q>.
	Dot(p, q polynomial.Polynomial[K]) (K, error)
}

// Option is a functional option for the inner product constructors.
type Option func(*settings)

type settings struct {
	panels int
}

// WithPanels sets the number of panels of the composite integrator.
// The default is quadrature.DefaultPanels.
func WithPanels(panels int) Option {
	return func(s *settings) {
		s.panels = panels
	}
}

// Weighted is the inner product <P, Q> = int_A^B w(x) P(x) Q(x) dx.
// It is immutable after construction and safe for concurrent use.
type Weighted[K constraints.Float] struct {
	weight func(x K) (y K)
	a, b   K
	order  int
	panels int
}

// NewWeighted returns the inner product of weight w on [a, b], integrated with the
// Gauss-Legendre rule of the given order on each panel. A nil weight is w(x) = 1.
// The order is checked when Dot is called.
func NewWeighted[K constraints.Float](weight func(x K) (y K), a, b K, order int, opts ...Option) *Weighted[K] {

	s := settings{panels: quadrature.DefaultPanels}
	for _, opt := range opts {
		opt(&s)
	}

	return &Weighted[K]{
		weight: weight,
		a:      a,
		b:      b,
		order:  order,
		panels: s.panels,
	}
}

// NewLegendre returns the inner product of weight 1 on [-1, 1].
func NewLegendre[K constraints.Float](order int, opts ...Option) *Weighted[K] {
	return NewWeighted[K](nil, -1, 1, order, opts...)
}

// NewUniform returns the inner product of weight 1 on [a, b].
func NewUniform[K constraints.Float](a, b K, order int, opts ...Option) *Weighted[K] {
	return NewWeighted[K](nil, a, b, order, opts...)
}

// NewChebyshev returns the inner product of weight 1/sqrt(1-x^2) on (-1, 1).
//
// The weight is singular at both endpoints. The Gauss nodes are interior to each
// panel so the endpoints are never evaluated, but the panels next to -1 and 1
// are integrated with a visible error: results are accurate to about 1e-3.
func NewChebyshev[K constraints.Float](order int, opts ...Option) *Weighted[K] {
	return NewWeighted(func(x K) K {
		return K(1 / math.Sqrt(float64(1-x*x)))
	}, -1, 1, order, opts...)
}

// NewChebyshevSecondKind returns the inner product of weight sqrt(1-x^2) on [-1, 1].
func NewChebyshevSecondKind[K constraints.Float](order int, opts ...Option) *Weighted[K] {
	return NewWeighted(func(x K) K {
		return K(math.Sqrt(float64(1 - x*x)))
	}, -1, 1, order, opts...)
}

// Domain returns the integration domain [a, b].
func (w *Weighted[K]) Domain() (a, b K) {
	return w.a, w.b
}

// Order returns the quadrature order.
func (w *Weighted[K]) Order() int {
	return w.order
}

// Panels returns the number of panels of the composite integrator.
func (w *Weighted[K]) Panels() int {
	return w.panels
}

// Weight returns w(x).
func (w *Weighted[K]) Weight(x K) K {
	if w.weight == nil {
		return 1
	}
	return w.weight(x)
}

// Dot returns int_a^b w(x) p(x) q(x) dx.
func (w *Weighted[K]) Dot(p, q polynomial.Polynomial[K]) (K, error) {

	f := func(x K) K {
		return w.Weight(x) * p.Evaluate(x) * q.Evaluate(x)
	}

	v, err := quadrature.IntegratePanels(w.a, w.b, f, w.order, w.panels)
	if err != nil {
		return 0, fmt.Errorf("cannot Dot: %w", err)
	}

	return v, nil
}

// Norm returns sqrt(<p, p>).
func Norm[K constraints.Float](ip InnerProduct[K], p polynomial.Polynomial[K]) (K, error) {
	v, err := ip.Dot(p, p)
	if err != nil {
		return 0, err
	}
	return K(math.Sqrt(float64(v))), nil
}
