package main

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/tuneinsight/orthopoly/innerproduct"
	"github.com/tuneinsight/orthopoly/orthobasis"
	"github.com/tuneinsight/orthopoly/quadrature"
	"github.com/tuneinsight/orthopoly/utils/bignum"
)

const prec = 128

// family is a classical family of orthogonal polynomials.
type family struct {
	// symbol prefixes the printed polynomials, e.g. "T" for T_n(x).
	symbol string
	// newInnerProduct returns the inner product for which the family is orthogonal.
	newInnerProduct func(cfg Config) innerproduct.InnerProduct[float64]
	// leading returns the leading coefficient of the classical normalization.
	leading func(cfg Config) func(n int) float64
	// roots returns the n roots of the degree-n member, or nil if they are not tabulated.
	roots func(cfg Config) func(n int) []float64
}

var families = map[string]family{
	"legendre": {
		symbol: "L",
		newInnerProduct: func(cfg Config) innerproduct.InnerProduct[float64] {
			return innerproduct.NewLegendre[float64](cfg.Order, innerproduct.WithPanels(cfg.Panels))
		},
		leading: func(Config) func(n int) float64 {
			return orthobasis.LegendreLeading[float64]
		},
		roots: func(Config) func(n int) []float64 {
			return func(n int) []float64 {
				return legendreRoots(n, -1, 1)
			}
		},
	},
	"chebyshev": {
		symbol: "T",
		newInnerProduct: func(cfg Config) innerproduct.InnerProduct[float64] {
			return innerproduct.NewChebyshev[float64](cfg.Order, innerproduct.WithPanels(cfg.Panels))
		},
		leading: func(Config) func(n int) float64 {
			return orthobasis.ChebyshevLeading[float64]
		},
		roots: func(Config) func(n int) []float64 {
			return func(n int) []float64 {
				return bignum.Float64s(bignum.ChebyshevNodes(n, bignum.NewInterval(-1, 1, prec)))
			}
		},
	},
	"chebyshev2": {
		symbol: "U",
		newInnerProduct: func(cfg Config) innerproduct.InnerProduct[float64] {
			return innerproduct.NewChebyshevSecondKind[float64](cfg.Order, innerproduct.WithPanels(cfg.Panels))
		},
		leading: func(Config) func(n int) float64 {
			return orthobasis.ChebyshevSecondKindLeading[float64]
		},
		roots: func(Config) func(n int) []float64 {
			return func(n int) []float64 {
				return bignum.Float64s(bignum.ChebyshevSecondKindNodes(n, bignum.NewInterval(-1, 1, prec)))
			}
		},
	},
	// Shifted Legendre polynomials P_n((2x - a - b) / (b - a)) on the configured domain.
	"uniform": {
		symbol: "S",
		newInnerProduct: func(cfg Config) innerproduct.InnerProduct[float64] {
			return innerproduct.NewUniform(cfg.Domain[0], cfg.Domain[1], cfg.Order, innerproduct.WithPanels(cfg.Panels))
		},
		leading: func(cfg Config) func(n int) float64 {
			scale := 2 / (cfg.Domain[1] - cfg.Domain[0])
			return func(n int) float64 {
				return orthobasis.LegendreLeading[float64](n) * math.Pow(scale, float64(n))
			}
		},
		roots: func(cfg Config) func(n int) []float64 {
			return func(n int) []float64 {
				return legendreRoots(n, cfg.Domain[0], cfg.Domain[1])
			}
		},
	},
}

// legendreRoots returns the roots of P_n mapped from [-1, 1] onto [a, b]. They are
// the Gauss-Legendre nodes, known in closed form up to MaxOrder.
func legendreRoots(n int, a, b float64) []float64 {

	if n > quadrature.MaxOrder {
		return nil
	}

	nodes, _ := bignum.GaussLegendre(n, prec)
	interval := bignum.NewInterval(a, b, prec)

	return bignum.Float64s(interval.Map(nodes))
}

func familyNames() (names []string) {
	for name := range families {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

func lookupFamily(name string) (family, error) {
	f, ok := families[strings.ToLower(name)]
	if !ok {
		return family{}, fmt.Errorf("unknown family %q, available families are %s", name, strings.Join(familyNames(), ", "))
	}
	return f, nil
}
