package main

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/tuneinsight/orthopoly/orthobasis"
)

// result is a basis built for one family.
type result struct {
	name   string
	family family

	// basis is orthonormal, classical is rescaled to the classical normalization.
	basis     orthobasis.Basis[float64]
	classical orthobasis.Basis[float64]

	residuals orthobasis.Summary

	// rootError is the largest |p_n(x)| of the classical polynomials over their known roots.
	rootError float64
}

// construct builds the basis of the named family and its diagnostics.
func construct(ctx context.Context, name string, cfg Config) (*result, error) {

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := lookupFamily(name)
	if err != nil {
		return nil, err
	}

	ip := f.newInnerProduct(cfg)

	start := time.Now()

	basis, err := orthobasis.Build[float64](cfg.Dimension, ip)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	g, err := basis.Gram(ip)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	r := &result{
		name:      name,
		family:    f,
		basis:     basis,
		classical: basis.Rescale(f.leading(cfg)),
	}

	if r.residuals, err = orthobasis.Residuals(g); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	r.rootError = maxRootError(r.classical, f.roots(cfg))

	log.Info().
		Str("family", name).
		Int("dimension", cfg.Dimension).
		Int("order", cfg.Order).
		Int("panels", cfg.Panels).
		Float64("residual_max", r.residuals.Max).
		Float64("residual_mean", r.residuals.Mean).
		Float64("residual_stddev", r.residuals.StdDev).
		Float64("root_error", r.rootError).
		Dur("elapsed", time.Since(start)).
		Msg("basis built")

	return r, nil
}

// passes reports whether the root error is within tol. A NaN error never passes.
func (r *result) passes(tol float64) bool {
	return r.rootError <= tol
}

func maxRootError(b orthobasis.Basis[float64], roots func(n int) []float64) (max float64) {
	for n := 1; n < len(b); n++ {
		for _, y := range b[n].EvaluateSlice(roots(n)) {
			max = math.Max(max, math.Abs(y))
		}
	}
	return
}
