package bignum

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFloat(t *testing.T) {
	testFunc1("Cos", 1.4142135623730951, math.Cos, Cos, 1e-14, t)
	testFunc1("Cos/Negative", -0.7853981633974483, math.Cos, Cos, 1e-14, t)

	t.Run("Cos/Prec=128", func(t *testing.T) {
		// cos(pi/3) = 1/2
		x := Pi(128)
		x.Quo(x, NewFloat(3, 128))
		d := new(big.Float).Sub(Cos(x), NewFloat(0.5, 128))
		require.True(t, d.Abs(d).Cmp(new(big.Float).SetMantExp(NewFloat(1, 128), -100)) < 0, d.String())
	})
	testFunc1("Sqrt", 1.4142135623730951, math.Sqrt, Sqrt, 1e-15, t)

	t.Run("Pi", func(t *testing.T) {
		y, _ := Pi(53).Float64()
		require.Equal(t, math.Pi, y)
	})

	t.Run("Quo", func(t *testing.T) {
		y, _ := Quo(3, 5, 53).Float64()
		require.Equal(t, 0.6, y)
	})
}

func testFunc1(name string, x float64, f func(x float64) (y float64), g func(x *big.Float) (y *big.Float), delta float64, t *testing.T) {
	t.Run(name, func(t *testing.T) {
		y, _ := g(NewFloat(x, 53)).Float64()
		require.InDelta(t, f(x), y, delta)
	})
}
