package orthobasis

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
	"github.com/zeebo/blake3"
	"gonum.org/v1/gonum/mat"

	"github.com/tuneinsight/orthopoly/innerproduct"
)

// Summary is a statistical summary of the deviations |G_ij - delta_ij| of a Gram matrix
// from the identity, over its upper triangle (diagonal included).
type Summary struct {
	Max    float64
	Mean   float64
	StdDev float64
}

// Gram returns the symmetric matrix of the inner products <b_i, b_j>.
// It costs dimension*(dimension+1)/2 inner products.
func (b Basis[K]) Gram(ip innerproduct.InnerProduct[K]) (*mat.SymDense, error) {

	if len(b) == 0 {
		return nil, fmt.Errorf("cannot Gram: %w: 0", ErrInvalidDimension)
	}

	g := mat.NewSymDense(len(b), nil)

	for i := range b {
		for j := i; j < len(b); j++ {
			v, err := ip.Dot(b[i], b[j])
			if err != nil {
				return nil, fmt.Errorf("cannot Gram: <b_%d, b_%d>: %w", i, j, err)
			}
			g.SetSym(i, j, float64(v))
		}
	}

	return g, nil
}

// Residuals summarizes the deviation of the Gram matrix g from the identity.
func Residuals(g mat.Symmetric) (s Summary, err error) {

	n := g.SymmetricDim()

	data := make(stats.Float64Data, 0, n*(n+1)/2)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := g.At(i, j)
			if i == j {
				v -= 1
			}
			data = append(data, math.Abs(v))
		}
	}

	if s.Max, err = data.Max(); err != nil {
		return s, fmt.Errorf("cannot Residuals: %w", err)
	}

	if s.Mean, err = data.Mean(); err != nil {
		return s, fmt.Errorf("cannot Residuals: %w", err)
	}

	if s.StdDev, err = data.StandardDeviation(); err != nil {
		return s, fmt.Errorf("cannot Residuals: %w", err)
	}

	return
}

// Digest returns the blake3 hash of the basis coefficients. Two bases have the same
// digest if and only if (up to hash collisions) they store the same coefficients,
// bit for bit, with the same sizes.
func (b Basis[K]) Digest() [32]byte {

	var buf []byte

	buf = binary.LittleEndian.AppendUint64(buf, uint64(len(b)))

	for i := range b {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(len(b[i].Coeffs)))
		for _, c := range b[i].Coeffs {
			buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(float64(c)))
		}
	}

	return blake3.Sum256(buf)
}
