// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/fsc/fuzzy"
	"github.com/katalvlaran/fsc/nnls"
)

// Config is the YAML parameter file. Zero fields keep the library
// defaults.
type Config struct {
	Degree        int              `yaml:"degree,omitempty"`
	KnotInterval  float64          `yaml:"knotInterval,omitempty"`
	Extrapolation *Extrapolation   `yaml:"extrapolation,omitempty"`
	MaxSpan       float64          `yaml:"maxSpan,omitempty"`
	Resolution    float64          `yaml:"resolution,omitempty"`
	Coefficients  *Coefficients    `yaml:"coefficients,omitempty"`
	Seed          *int64           `yaml:"seed,omitempty"`
	Solver        SolverParameters `yaml:"solver,omitempty"`
}

// Extrapolation configures boundary padding. A zero length or interval
// keeps the library default for that field.
type Extrapolation struct {
	Order    *int    `yaml:"order,omitempty"`
	Length   float64 `yaml:"length,omitempty"`
	Interval float64 `yaml:"interval,omitempty"`
}

// Coefficients weights velocity and acceleration in observed fuzziness.
type Coefficients struct {
	Velocity     float64 `yaml:"velocity"`
	Acceleration float64 `yaml:"acceleration"`
}

// SolverParameters tunes the non-negative solver.
type SolverParameters struct {
	MaxIterations int     `yaml:"maxIterations,omitempty"`
	History       int     `yaml:"history,omitempty"`
	Tolerance     float64 `yaml:"tolerance,omitempty"`
}

// LoadConfig reads a YAML parameter file. An empty path yields the zero
// Config.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}
	d, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err = yaml.Unmarshal(d, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Validate rejects values the option constructors would panic on.
func (c Config) Validate() error {
	switch {
	case c.Degree < 0:
		return fmt.Errorf("config: degree %d < 0", c.Degree)
	case c.KnotInterval < 0:
		return fmt.Errorf("config: knotInterval %g < 0", c.KnotInterval)
	case c.MaxSpan < 0:
		return fmt.Errorf("config: maxSpan %g < 0", c.MaxSpan)
	case c.Resolution < 0:
		return fmt.Errorf("config: resolution %g < 0", c.Resolution)
	case c.Solver.MaxIterations < 0 || c.Solver.History < 0 || c.Solver.Tolerance < 0:
		return fmt.Errorf("config: negative solver parameter")
	}
	if e := c.Extrapolation; e != nil {
		if e.Length < 0 || e.Interval < 0 {
			return fmt.Errorf("config: negative extrapolation length or interval")
		}
		if e.Order != nil && (*e.Order < 0 || *e.Order > 2) {
			return fmt.Errorf("config: extrapolation order %d not in 0..2", *e.Order)
		}
	}
	if k := c.Coefficients; k != nil && (k.Velocity < 0 || k.Acceleration < 0) {
		return fmt.Errorf("config: negative coefficient")
	}

	return nil
}

// Options maps the file onto builder options.
func (c Config) Options() []fuzzy.Option {
	var opts []fuzzy.Option
	if c.Degree > 0 {
		opts = append(opts, fuzzy.WithDegree(c.Degree))
	}
	if c.KnotInterval > 0 {
		opts = append(opts, fuzzy.WithKnotInterval(c.KnotInterval))
	}
	if e := c.Extrapolation; e != nil {
		if e.Length > 0 || e.Interval > 0 {
			length, interval := e.Length, e.Interval
			if length == 0 {
				length = fuzzy.DefaultExtrapolationLength
			}
			if interval == 0 {
				interval = fuzzy.DefaultExtrapolationStep
			}
			opts = append(opts, fuzzy.WithExtrapolation(length, interval))
		}
		if e.Order != nil {
			opts = append(opts, fuzzy.WithExtrapolationOrder(*e.Order))
		}
	}
	if c.MaxSpan > 0 {
		opts = append(opts, fuzzy.WithMaxSpan(c.MaxSpan))
	}
	if c.Resolution > 0 {
		opts = append(opts, fuzzy.WithResolution(c.Resolution))
	}
	if k := c.Coefficients; k != nil {
		opts = append(opts, fuzzy.WithCoefficients(k.Velocity, k.Acceleration))
	}
	if c.Seed != nil {
		opts = append(opts, fuzzy.WithSeed(*c.Seed))
	}

	var solver []nnls.Option
	if c.Solver.MaxIterations > 0 {
		solver = append(solver, nnls.WithMaxIterations(c.Solver.MaxIterations))
	}
	if c.Solver.History > 0 {
		solver = append(solver, nnls.WithHistory(c.Solver.History))
	}
	if c.Solver.Tolerance > 0 {
		solver = append(solver, nnls.WithTolerance(c.Solver.Tolerance))
	}
	if len(solver) > 0 {
		opts = append(opts, fuzzy.WithNNLS(solver...))
	}

	return opts
}
