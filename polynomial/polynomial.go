// Package polynomial implements dense univariate polynomials with real coefficients.
package polynomial

import (
	"errors"
	"fmt"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/constraints"

	"github.com/tuneinsight/orthopoly/utils"
)

// ErrIndexOutOfRange is returned when accessing a coefficient beyond the stored size.
var ErrIndexOutOfRange = errors.New("coefficient index out of range")

// Polynomial is a dense polynomial p(x) = sum_i Coeffs[i] * x^i.
//
// The stored size len(Coeffs) is Degree()+1 and is always at least one.
// Trailing zero coefficients are allowed: they do not change the value of the
// polynomial (see EffectiveDegree) but they are kept by every operation, so that
// the stored size of a result only depends on the stored sizes of its operands.
type Polynomial[K constraints.Float] struct {
	Coeffs []K
}

// New creates a new polynomial from a copy of the coefficients, given in
// increasing powers of x. An empty input returns the zero polynomial.
func New[K constraints.Float](coeffs ...K) Polynomial[K] {
	if len(coeffs) == 0 {
		return NewZero[K](0)
	}
	c := make([]K, len(coeffs))
	copy(c, coeffs)
	return Polynomial[K]{Coeffs: c}
}

// NewZero creates a new polynomial of the given degree with all coefficients set to zero.
func NewZero[K constraints.Float](degree int) Polynomial[K] {
	if degree < 0 {
		panic(fmt.Sprintf("cannot NewZero: degree must be positive or zero but is %d", degree))
	}
	return Polynomial[K]{Coeffs: make([]K, degree+1)}
}

// Canonical returns the monomial x^n.
func Canonical[K constraints.Float](n int) (p Polynomial[K]) {
	if n < 0 {
		panic(fmt.Sprintf("cannot Canonical: n must be positive or zero but is %d", n))
	}
	p = NewZero[K](n)
	p.Coeffs[n] = 1
	return
}

// Clone returns a deep copy of the polynomial.
func (p Polynomial[K]) Clone() Polynomial[K] {
	return New(p.Coeffs...)
}

// Degree returns the storage degree of the polynomial, that is len(p.Coeffs)-1.
func (p Polynomial[K]) Degree() int {
	return len(p.Coeffs) - 1
}

// EffectiveDegree returns the index of the highest non-zero coefficient,
// or -1 for the zero polynomial.
func (p Polynomial[K]) EffectiveDegree() int {
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		if p.Coeffs[i] != 0 {
			return i
		}
	}
	return -1
}

// Leading returns the coefficient of highest storage degree.
func (p Polynomial[K]) Leading() K {
	return p.Coeffs[len(p.Coeffs)-1]
}

// Trim returns a copy of p without its trailing zero coefficients.
// The zero polynomial is returned with a single coefficient.
func (p Polynomial[K]) Trim() Polynomial[K] {
	return New(p.Coeffs[:utils.Max(p.EffectiveDegree(), 0)+1]...)
}

// Coefficient returns the coefficient of x^i.
func (p Polynomial[K]) Coefficient(i int) (K, error) {
	if i < 0 || i >= len(p.Coeffs) {
		return 0, fmt.Errorf("cannot Coefficient: %w: index %d for degree %d", ErrIndexOutOfRange, i, p.Degree())
	}
	return p.Coeffs[i], nil
}

// SetCoefficient sets the coefficient of x^i to v.
// The storage is never extended: i must be at most Degree().
func (p *Polynomial[K]) SetCoefficient(i int, v K) error {
	if i < 0 || i >= len(p.Coeffs) {
		return fmt.Errorf("cannot SetCoefficient: %w: index %d for degree %d", ErrIndexOutOfRange, i, p.Degree())
	}
	p.Coeffs[i] = v
	return nil
}

// Evaluate returns p(x) using Horner's scheme.
func (p Polynomial[K]) Evaluate(x K) (y K) {
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		y = y*x + p.Coeffs[i]
	}
	return
}

// EvaluateSlice returns p(x) for each x of xs.
func (p Polynomial[K]) EvaluateSlice(xs []K) (ys []K) {
	ys = make([]K, len(xs))
	for i, x := range xs {
		ys[i] = p.Evaluate(x)
	}
	return
}

// Equal returns true if p and q have the same stored coefficients.
func (p Polynomial[K]) Equal(q Polynomial[K]) bool {
	return cmp.Equal(p.Coeffs, q.Coeffs)
}

// ApproxEqual returns true if every coefficient of p and q differ by at most tol.
// The shorter polynomial is treated as zero-padded.
func (p Polynomial[K]) ApproxEqual(q Polynomial[K], tol K) bool {
	n := utils.Max(len(p.Coeffs), len(q.Coeffs))
	a, b := utils.Pad(p.Coeffs, n), utils.Pad(q.Coeffs, n)
	for i := range a {
		if !utils.AlmostEqual(a[i], b[i], tol) {
			return false
		}
	}
	return true
}
