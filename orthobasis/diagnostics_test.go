package orthobasis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/tuneinsight/orthopoly/innerproduct"
	"github.com/tuneinsight/orthopoly/polynomial"
)

func TestResiduals(t *testing.T) {

	t.Run("Identity", func(t *testing.T) {
		s, err := Residuals(mat.NewSymDense(3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}))
		require.NoError(t, err)
		require.Equal(t, Summary{}, s)
	})

	t.Run("OffDiagonal", func(t *testing.T) {
		s, err := Residuals(mat.NewSymDense(2, []float64{1, 0.3, 0.3, 1}))
		require.NoError(t, err)
		require.InDelta(t, 0.3, s.Max, 1e-15)
		require.InDelta(t, 0.1, s.Mean, 1e-15)
		require.Greater(t, s.StdDev, 0.0)
	})
}

func TestGram(t *testing.T) {

	ip := innerproduct.NewLegendre[float64](5, innerproduct.WithPanels(1))

	// 1 and x are orthogonal but not normalized.
	b := Basis[float64]{polynomial.Canonical[float64](0), polynomial.Canonical[float64](1)}

	g, err := b.Gram(ip)
	require.NoError(t, err)
	require.InDelta(t, 2, g.At(0, 0), 1e-14)
	require.InDelta(t, 0, g.At(0, 1), 1e-14)
	require.InDelta(t, 0, g.At(1, 0), 1e-14)
	require.InDelta(t, 2.0/3.0, g.At(1, 1), 1e-14)

	_, err = Basis[float64]{}.Gram(ip)
	require.ErrorIs(t, err, ErrInvalidDimension)

	_, err = b.Gram(innerproduct.NewLegendre[float64](0))
	require.Error(t, err)
}

func TestDigest(t *testing.T) {

	ip := innerproduct.NewLegendre[float64](5, innerproduct.WithPanels(3))

	b0, err := Build[float64](4, ip)
	require.NoError(t, err)
	b1, err := Build[float64](4, ip)
	require.NoError(t, err)

	require.Equal(t, b0.Digest(), b1.Digest(), "construction should be deterministic")
	require.Equal(t, b0.Digest(), b0.Clone().Digest())

	b2, err := Build[float64](5, ip)
	require.NoError(t, err)
	require.NotEqual(t, b0.Digest(), b2.Digest())

	c := b0.Clone()
	c[3].Coeffs = append(c[3].Coeffs, 0)
	require.NotEqual(t, b0.Digest(), c.Digest(), "stored size is part of the digest")
}

func TestRescale(t *testing.T) {

	b := Basis[float64]{polynomial.New(2.0), polynomial.New(1.0, 4.0)}

	r := b.Rescale(ChebyshevLeading[float64])
	require.Equal(t, []float64{1}, r[0].Coeffs)
	require.Equal(t, []float64{0.25, 1}, r[1].Coeffs)
	require.Equal(t, []float64{1, 4}, b[1].Coeffs, "should not modify the input basis")

	require.Equal(t, 8.0, ChebyshevLeading[float64](4))
	require.Equal(t, 16.0, ChebyshevSecondKindLeading[float64](4))
	require.Equal(t, math.Ldexp(1, 69), ChebyshevLeading[float64](70))
	require.Equal(t, math.Ldexp(1, 70), ChebyshevSecondKindLeading[float64](70))
	require.Equal(t, 1.0, Monic[float64](7))
	require.Equal(t, 1.0, LegendreLeading[float64](0))
	require.Equal(t, 1.5, LegendreLeading[float64](2))
	require.Equal(t, 2.5, LegendreLeading[float64](3))
}
