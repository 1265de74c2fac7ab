package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// options are the global flags, shared by every command.
type options struct {
	configPath string
	logLevel   string
	json       bool

	dimension int
	order     int
	panels    int
	tolerance float64
	families  []string
	domain    []float64

	cfg Config
}

func (o *options) register(fs *pflag.FlagSet) {
	def := DefaultConfig()
	fs.StringVar(&o.configPath, "config", "", "path to a YAML configuration file")
	fs.StringVar(&o.logLevel, "log-level", def.LogLevel, "log level (trace, debug, info, warn, error)")
	fs.BoolVar(&o.json, "json", false, "write logs as JSON instead of console output")
	fs.IntVar(&o.dimension, "dim", def.Dimension, "number of basis polynomials")
	fs.IntVar(&o.order, "order", def.Order, "Gauss-Legendre order used on each panel (1 to 5)")
	fs.IntVar(&o.panels, "panels", def.Panels, "number of panels of the composite integrator")
	fs.Float64Var(&o.tolerance, "tolerance", def.Tolerance, "tolerance on the values at the known roots")
	fs.StringSliceVar(&o.families, "family", def.Families, "families to build ("+strings.Join(familyNames(), ", ")+")")
	fs.Float64SliceVar(&o.domain, "domain", def.Domain[:], "interval a,b of the uniform family")
}

// resolve loads the configuration file, if any, and applies the flags set on the command line.
func (o *options) resolve(cmd *cobra.Command) (err error) {

	o.cfg = DefaultConfig()
	if o.configPath != "" {
		if o.cfg, err = LoadConfig(o.configPath); err != nil {
			return err
		}
	}

	fs := cmd.Flags()
	if fs.Changed("log-level") {
		o.cfg.LogLevel = o.logLevel
	}
	if fs.Changed("dim") {
		o.cfg.Dimension = o.dimension
	}
	if fs.Changed("order") {
		o.cfg.Order = o.order
	}
	if fs.Changed("panels") {
		o.cfg.Panels = o.panels
	}
	if fs.Changed("tolerance") {
		o.cfg.Tolerance = o.tolerance
	}
	if fs.Changed("family") {
		o.cfg.Families = o.families
	}
	if fs.Changed("domain") {
		if len(o.domain) != 2 {
			return fmt.Errorf("invalid flag: --domain expects two values a,b but has %d", len(o.domain))
		}
		copy(o.cfg.Domain[:], o.domain)
	}

	if err = setupLogger(cmd.ErrOrStderr(), o.cfg.LogLevel, o.json); err != nil {
		return err
	}

	return o.cfg.Validate()
}

func setupLogger(w io.Writer, level string, json bool) error {

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}

	if json {
		log.Logger = zerolog.New(w).With().Timestamp().Logger().Level(lvl)
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: w}).Level(lvl)
	}

	return nil
}

func newRootCmd() *cobra.Command {

	o := &options{}

	root := &cobra.Command{
		Use:           "orthopoly",
		Short:         "Orthonormal polynomial bases by modified Gram-Schmidt",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.resolve(cmd)
		},
	}

	o.register(root.PersistentFlags())

	root.AddCommand(demoCmd(o), buildCmd(o), verifyCmd(o))

	return root
}

// Execute runs the command line.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}
