// Package sampling implements deterministic sampling of floating-point values,
// used to draw reproducible random polynomials.
package sampling

import (
	"encoding/binary"
	"fmt"
	"io"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/exp/constraints"
)

// Source draws uniform floating-point values from the blake2b XOF of a key.
// Two sources with the same key draw the same values. A Source is not safe
// for concurrent use.
type Source struct {
	key []byte
	xof blake2b.XOF
	buf [8]byte
}

// NewSource returns a Source seeded with key. A nil key is the empty key.
func NewSource(key []byte) (*Source, error) {
	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, key)
	if err != nil {
		return nil, fmt.Errorf("cannot NewSource: %w", err)
	}
	return &Source{key: append([]byte{}, key...), xof: xof}, nil
}

// Key returns a copy of the seed of the source.
func (s *Source) Key() []byte {
	return append([]byte{}, s.key...)
}

// Reset rewinds the source to its first value.
func (s *Source) Reset() {
	s.xof.Reset()
}

// Float64 returns a value in [min, max).
func (s *Source) Float64(min, max float64) float64 {
	// The XOF output is unbounded, io.ReadFull cannot fail short of a broken hash.
	if _, err := io.ReadFull(s.xof, s.buf[:]); err != nil {
		panic(err)
	}
	// 53 random bits give a uniform value in [0, 1).
	f := float64(binary.LittleEndian.Uint64(s.buf[:])>>11) / (1 << 53)
	return min + f*(max-min)
}

// Intn returns a value in [0, n).
func (s *Source) Intn(n int) int {
	if n <= 0 {
		panic("cannot Intn: n <= 0")
	}
	return int(s.Float64(0, float64(n)))
}

// Floats returns n values in [min, max).
func Floats[K constraints.Float](s *Source, n int, min, max K) (v []K) {
	v = make([]K, n)
	for i := range v {
		v[i] = K(s.Float64(float64(min), float64(max)))
	}
	return
}

// Coefficients returns the coefficients of a polynomial of random degree in
// [0, maxDegree], each drawn in [-bound, bound).
func Coefficients[K constraints.Float](s *Source, maxDegree int, bound K) []K {
	return Floats(s, 1+s.Intn(maxDegree+1), -bound, bound)
}
