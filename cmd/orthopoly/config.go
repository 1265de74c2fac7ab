package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tuneinsight/orthopoly/quadrature"
)

// Config holds the parameters of the basis constructions.
type Config struct {
	Dimension int      `yaml:"dimension"`
	Order     int      `yaml:"order"`
	Panels    int      `yaml:"panels"`
	Tolerance float64  `yaml:"tolerance"`
	LogLevel  string   `yaml:"log_level"`
	Families  []string `yaml:"families"`
	// Domain is the interval [a, b] of the uniform family.
	Domain [2]float64 `yaml:"domain,flow"`
}

// DefaultConfig mirrors the reference run: Legendre and Chebyshev bases of
// dimension 5, order-5 quadrature on 100000 panels, roots checked to 1e-3.
func DefaultConfig() Config {
	return Config{
		Dimension: 5,
		Order:     5,
		Panels:    quadrature.DefaultPanels,
		Tolerance: 1e-3,
		LogLevel:  "info",
		Families:  []string{"legendre", "chebyshev"},
		Domain:    [2]float64{0, 1},
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig.
// Unknown keys are rejected.
func LoadConfig(path string) (cfg Config, err error) {

	cfg = DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("cannot LoadConfig: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("cannot LoadConfig: %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the configuration.
func (c Config) Validate() error {

	if c.Dimension < 1 {
		return fmt.Errorf("invalid config: dimension must be at least 1 but is %d", c.Dimension)
	}

	if c.Order < 1 || c.Order > quadrature.MaxOrder {
		return fmt.Errorf("invalid config: order must be in [1, %d] but is %d", quadrature.MaxOrder, c.Order)
	}

	if c.Panels < 1 {
		return fmt.Errorf("invalid config: panels must be at least 1 but is %d", c.Panels)
	}

	if !(c.Tolerance > 0) {
		return fmt.Errorf("invalid config: tolerance must be positive but is %v", c.Tolerance)
	}

	if a, b := c.Domain[0], c.Domain[1]; !(a < b) || math.IsInf(a, 0) || math.IsInf(b, 0) {
		return fmt.Errorf("invalid config: domain must be a finite interval [a, b] with a < b but is %v", c.Domain)
	}

	if len(c.Families) == 0 {
		return fmt.Errorf("invalid config: no family")
	}

	for _, name := range c.Families {
		if _, err := lookupFamily(name); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
	}

	return nil
}
