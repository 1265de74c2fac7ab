// Package orthobasis builds orthonormal polynomial bases with the modified
// Gram-Schmidt process applied to the monomials 1, x, x^2, ...
package orthobasis

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"

	"github.com/tuneinsight/orthopoly/innerproduct"
	"github.com/tuneinsight/orthopoly/polynomial"
)

var (
	// ErrInvalidDimension is returned when a basis of dimension smaller than one is requested.
	ErrInvalidDimension = errors.New("invalid basis dimension")

	// ErrDegenerateNormalization is returned when a vector to normalize has a
	// squared norm that is not positive and finite. This signals a broken inner product or
	// a quadrature too inaccurate for its weight.
	ErrDegenerateNormalization = errors.New("degenerate normalization")
)

// Basis is an ordered set of polynomials, the i-th element being of exact degree i.
type Basis[K constraints.Float] []polynomial.Polynomial[K]

// Build returns the orthonormal basis {b_0, ..., b_{dimension-1}} of the polynomials
// of degree smaller than dimension for the inner product ip.
//
// b_0 is the normalized constant 1. Each following b_i starts from x^i, from which the
// projections on b_0, ..., b_{i-1} are removed one at a time, each projection being
// computed on the already updated vector (modified Gram-Schmidt), before normalization.
//
// The basis is recomputed from scratch on each call: it costs O(dimension^2) inner
// products. Any error aborts the construction and no partial basis is returned.
func Build[K constraints.Float](dimension int, ip innerproduct.InnerProduct[K]) (Basis[K], error) {

	if dimension < 1 {
		return nil, fmt.Errorf("cannot Build: %w: %d", ErrInvalidDimension, dimension)
	}

	basis := make(Basis[K], 0, dimension)

	for i := 0; i < dimension; i++ {

		q := polynomial.Canonical[K](i)

		for j := 0; j < i; j++ {

			c, err := ip.Dot(q, basis[j])
			if err != nil {
				return nil, fmt.Errorf("cannot Build: projection of x^%d on b_%d: %w", i, j, err)
			}

			q.SubAssign(basis[j].MulScalar(c))
		}

		if err := normalize(ip, &q); err != nil {
			return nil, fmt.Errorf("cannot Build: b_%d: %w", i, err)
		}

		basis = append(basis, q)
	}

	return basis, nil
}

// normalize scales q by 1/sqrt(<q, q>).
func normalize[K constraints.Float](ip innerproduct.InnerProduct[K], q *polynomial.Polynomial[K]) error {

	n2, err := ip.Dot(*q, *q)
	if err != nil {
		return err
	}

	if !(n2 > 0) || math.IsInf(float64(n2), 1) {
		return fmt.Errorf("%w: squared norm is %v", ErrDegenerateNormalization, n2)
	}

	q.MulScalarAssign(K(math.Sqrt(float64(1 / n2))))

	return nil
}

// Dimension returns the number of elements of the basis.
func (b Basis[K]) Dimension() int {
	return len(b)
}

// Clone returns a deep copy of the basis.
func (b Basis[K]) Clone() (c Basis[K]) {
	c = make(Basis[K], len(b))
	for i := range b {
		c[i] = b[i].Clone()
	}
	return
}
