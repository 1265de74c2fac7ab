package main

import (
	"fmt"
	"io"
	"math"

	"github.com/spf13/cobra"
)

func demoCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Print the Legendre and Chebyshev bases and their values at the known roots",
		RunE: func(cmd *cobra.Command, args []string) error {

			w := cmd.OutOrStdout()

			cfg := o.cfg
			cfg.Dimension = max(cfg.Dimension, 4)

			legendre, err := construct(cmd.Context(), "legendre", cfg)
			if err != nil {
				return err
			}

			printLegendre(w, legendre)

			chebyshev, err := construct(cmd.Context(), "chebyshev", cfg)
			if err != nil {
				return err
			}

			printChebyshev(w, chebyshev)

			return nil
		},
	}
}

func printLegendre(w io.Writer, r *result) {

	fmt.Fprintln(w, "Legendre:")
	for i, p := range r.basis {
		fmt.Fprintf(w, "L_%d(x) = %s\n", i, p)
	}

	fmt.Fprintln(w, "VERIFICATION")
	fmt.Fprintln(w, "------------")

	for _, check := range []struct {
		n    int
		name string
		x    float64
	}{
		{2, "+1/sqrt(3)", 1 / math.Sqrt(3)},
		{2, "-1/sqrt(3)", -1 / math.Sqrt(3)},
		{3, "+sqrt(3/5)", math.Sqrt(3.0 / 5.0)},
		{3, "-sqrt(3/5)", -math.Sqrt(3.0 / 5.0)},
		{3, "0", 0},
	} {
		fmt.Fprintf(w, "%s must be a root of L_%d: L_%d(%s) = %g\n", check.name, check.n, check.n, check.name, r.basis[check.n].Evaluate(check.x))
	}
}

func printChebyshev(w io.Writer, r *result) {

	fmt.Fprintln(w, "Chebyshev:")
	for i, p := range r.classical {
		fmt.Fprintf(w, "T_%d(x) = %s\n", i, p)
	}

	fmt.Fprintln(w, "VERIFICATION")
	fmt.Fprintln(w, "------------")
	fmt.Fprintln(w, "Roots of the polynomials (to about 1e-3, the integration is not adapted to the weight):")

	for n := 1; n < len(r.classical); n++ {
		for i := 1; i <= n; i++ {
			x := math.Cos(float64(2*i-1) * math.Pi / float64(2*n))
			fmt.Fprintf(w, "T_%d(%g) = %g\n", n, x, r.classical[n].Evaluate(x))
		}
	}
}
