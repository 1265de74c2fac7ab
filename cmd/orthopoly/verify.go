package main

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// errRootCheck is returned when a polynomial is not close enough to zero at a known root.
var errRootCheck = errors.New("root check failed")

func verifyCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check the configured families against the roots of the classical polynomials",
		RunE: func(cmd *cobra.Command, args []string) error {

			var failed []string

			for _, name := range o.cfg.Families {

				r, err := construct(cmd.Context(), name, o.cfg)
				if err != nil {
					return err
				}

				status := "ok"
				if !r.passes(o.cfg.Tolerance) {
					status = "FAIL"
					failed = append(failed, name)
					log.Warn().Str("family", name).Float64("root_error", r.rootError).Float64("tolerance", o.cfg.Tolerance).Msg("root check failed")
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%s: max |p_n(root)| = %.3g (tolerance %g) %s\n", name, r.rootError, o.cfg.Tolerance, status)
			}

			if len(failed) != 0 {
				return fmt.Errorf("%w: %v", errRootCheck, failed)
			}

			return nil
		},
	}
}
