package main

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func buildCmd(o *options) *cobra.Command {

	var classical bool

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build and print the bases of the configured families",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range o.cfg.Families {
				r, err := construct(cmd.Context(), name, o.cfg)
				if err != nil {
					return err
				}
				printBasis(cmd.OutOrStdout(), r, o.cfg, classical)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&classical, "classical", false, "print the polynomials with their classical normalization instead of orthonormal")

	return cmd
}

func printBasis(w io.Writer, r *result, cfg Config, classical bool) {

	fmt.Fprintf(w, "%s (dimension %d, order %d, panels %d)\n", r.name, cfg.Dimension, cfg.Order, cfg.Panels)

	basis := r.basis
	if classical {
		basis = r.classical
	}

	for i, p := range basis {
		fmt.Fprintf(w, "%s_%d(x) = %s\n", r.family.symbol, i, p)
	}

	fmt.Fprintf(w, "gram residual: max=%.3g mean=%.3g stddev=%.3g\n", r.residuals.Max, r.residuals.Mean, r.residuals.StdDev)

	digest := r.basis.Digest()
	fmt.Fprintf(w, "digest: %s\n", hex.EncodeToString(digest[:]))
}
