package sampling_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuneinsight/orthopoly/utils/sampling"
)

var testKey = []byte{0x49, 0x0a, 0x42, 0x3d, 0x97, 0x9d, 0xc1, 0x07, 0xa1, 0xd7, 0xe9, 0x7b, 0x3b, 0xce, 0xa1, 0xdb,
	0x42, 0xf3, 0xa6, 0xd5, 0x75, 0xd2, 0x0c, 0x92, 0xb7, 0x35, 0xce, 0x0c, 0xee, 0x09, 0x7c, 0x98}

func newSource(t *testing.T, key []byte) *sampling.Source {
	src, err := sampling.NewSource(key)
	require.NoError(t, err)
	return src
}

func TestSource(t *testing.T) {

	t.Run("Reset", func(t *testing.T) {
		a, b := newSource(t, testKey), newSource(t, testKey)

		for i := 0; i < 128; i++ {
			b.Float64(0, 1)
		}

		b.Reset()

		require.Equal(t, sampling.Floats[float64](a, 32, -1, 1), sampling.Floats[float64](b, 32, -1, 1))
		require.Equal(t, testKey, a.Key())
	})

	t.Run("Range", func(t *testing.T) {
		src := newSource(t, testKey)
		for i := 0; i < 1024; i++ {
			x := src.Float64(-2, 3)
			require.GreaterOrEqual(t, x, -2.0)
			require.Less(t, x, 3.0)
		}

		for i := 0; i < 64; i++ {
			n := src.Intn(7)
			require.GreaterOrEqual(t, n, 0)
			require.Less(t, n, 7)
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		va := sampling.Floats[float64](newSource(t, testKey), 16, -1, 1)
		vb := sampling.Floats[float64](newSource(t, testKey), 16, -1, 1)
		require.Equal(t, va, vb)

		vc := sampling.Floats[float64](newSource(t, []byte{0x01}), 16, -1, 1)
		require.NotEqual(t, va, vc)
	})

	t.Run("Coefficients", func(t *testing.T) {
		src := newSource(t, nil)
		for i := 0; i < 64; i++ {
			c := sampling.Coefficients[float32](src, 5, 2)
			require.GreaterOrEqual(t, len(c), 1)
			require.LessOrEqual(t, len(c), 6)
			for _, v := range c {
				require.GreaterOrEqual(t, v, float32(-2))
				require.Less(t, v, float32(2))
			}
		}
	})
}
