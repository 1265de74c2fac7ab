package polynomial

import (
	"golang.org/x/exp/constraints"

	"github.com/tuneinsight/orthopoly/utils"
)

// Add returns p + q. The result has the stored size of the larger operand.
func (p Polynomial[K]) Add(q Polynomial[K]) (r Polynomial[K]) {
	r = Polynomial[K]{Coeffs: utils.Pad(p.Coeffs, len(q.Coeffs))}
	for i, c := range q.Coeffs {
		r.Coeffs[i] += c
	}
	return
}

// Sub returns p - q. The result has the stored size of the larger operand.
func (p Polynomial[K]) Sub(q Polynomial[K]) (r Polynomial[K]) {
	r = Polynomial[K]{Coeffs: utils.Pad(p.Coeffs, len(q.Coeffs))}
	for i, c := range q.Coeffs {
		r.Coeffs[i] -= c
	}
	return
}

// Neg returns -p.
func (p Polynomial[K]) Neg() Polynomial[K] {
	return p.MulScalar(-1)
}

// MulScalar returns s * p.
func (p Polynomial[K]) MulScalar(s K) (r Polynomial[K]) {
	r = p.Clone()
	r.MulScalarAssign(s)
	return
}

// ScalarMul returns s * p. It is the scalar-first form of MulScalar and returns the same result.
func ScalarMul[K constraints.Float](s K, p Polynomial[K]) Polynomial[K] {
	return p.MulScalar(s)
}

// Mul returns the product p * q, of storage degree p.Degree() + q.Degree().
func (p Polynomial[K]) Mul(q Polynomial[K]) (r Polynomial[K]) {
	r = NewZero[K](p.Degree() + q.Degree())
	for i, a := range p.Coeffs {
		if a == 0 {
			continue
		}
		for j, b := range q.Coeffs {
			r.Coeffs[i+j] += a * b
		}
	}
	return
}

// Derivative returns dp/dx. The derivative of a constant is the zero polynomial of degree 0.
func (p Polynomial[K]) Derivative() (r Polynomial[K]) {
	if len(p.Coeffs) == 1 {
		return NewZero[K](0)
	}
	r = NewZero[K](p.Degree() - 1)
	for i := 1; i < len(p.Coeffs); i++ {
		r.Coeffs[i-1] = K(i) * p.Coeffs[i]
	}
	return
}

// AddAssign sets p to p + q, growing p if q is larger.
func (p *Polynomial[K]) AddAssign(q Polynomial[K]) {
	p.grow(len(q.Coeffs))
	for i, c := range q.Coeffs {
		p.Coeffs[i] += c
	}
}

// SubAssign sets p to p - q, growing p if q is larger.
func (p *Polynomial[K]) SubAssign(q Polynomial[K]) {
	p.grow(len(q.Coeffs))
	for i, c := range q.Coeffs {
		p.Coeffs[i] -= c
	}
}

// MulScalarAssign sets p to s * p.
func (p *Polynomial[K]) MulScalarAssign(s K) {
	for i := range p.Coeffs {
		p.Coeffs[i] *= s
	}
}

func (p *Polynomial[K]) grow(n int) {
	if n > len(p.Coeffs) {
		p.Coeffs = utils.Pad(p.Coeffs, n)
	}
}
