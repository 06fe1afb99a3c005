// SPDX-License-Identifier: MIT

package rpca

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the declarative form of the solver options, for callers that keep
// solver settings in YAML next to their pipeline configuration:
//
//	method: irls
//	lambda: 0.3
//	max_iter: 500
//	tolerance: 1e-6
//
// A zero value in any numeric field selects the documented default.
type Config struct {
	Method        string  `yaml:"method" validate:"omitempty,oneof=pcp irls convex nonconvex non-convex"`
	Lambda        float64 `yaml:"lambda" validate:"omitempty,gt=0"`
	Mu            float64 `yaml:"mu" validate:"omitempty,gt=0"`
	MaxIter       int     `yaml:"max_iter" validate:"omitempty,gt=0"`
	MinIterations int     `yaml:"min_iterations" validate:"omitempty,gt=0"`
	Tolerance     float64 `yaml:"tolerance" validate:"omitempty,gt=0"`
	Rho           float64 `yaml:"rho" validate:"omitempty,gt=1"`
	MuBarFactor   float64 `yaml:"mu_bar_factor" validate:"omitempty,gte=1"`
	WeightEpsilon float64 `yaml:"weight_epsilon" validate:"omitempty,gt=0"`
	LogEvery      int     `yaml:"log_every"` // 0 ⇒ default, < 0 disables progress events
	Trace         bool    `yaml:"trace"`
}

var validate = validator.New()

// ParseConfig decodes a YAML document into a validated Config.
// Unknown keys are rejected; an empty document yields the zero Config.
// Errors: ErrInvalidInput (+ ErrInvalidOption for out-of-range values).
func ParseConfig(data []byte) (Config, error) {
	var c Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, invalidInput(opParseConfig, err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate checks the struct tags, then the resolved option set (which also
// rejects infinities the tags let through).
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return invalidInput(opValidateConf, fmt.Errorf("%w: %w", ErrInvalidOption, err))
	}
	if _, err := gatherOptions(c.Options()); err != nil {
		return invalidInput(opValidateConf, err)
	}

	return nil
}

// SolverMethod resolves the configured solver; an empty name selects MethodPCP.
func (c Config) SolverMethod() (Method, error) {
	if c.Method == "" {
		return MethodPCP, nil
	}

	return ParseMethod(c.Method)
}

// Options converts the non-zero fields into functional options. Append
// further options (logger, observer) after these to extend them.
func (c Config) Options() []Option {
	var opts []Option
	if c.Lambda != 0 {
		opts = append(opts, WithLambda(c.Lambda))
	}
	if c.Mu != 0 {
		opts = append(opts, WithMu(c.Mu))
	}
	if c.MaxIter != 0 {
		opts = append(opts, WithMaxIter(c.MaxIter))
	}
	if c.MinIterations != 0 {
		opts = append(opts, WithMinIterations(c.MinIterations))
	}
	if c.Tolerance != 0 {
		opts = append(opts, WithTolerance(c.Tolerance))
	}
	if c.Rho != 0 {
		opts = append(opts, WithRho(c.Rho))
	}
	if c.MuBarFactor != 0 {
		opts = append(opts, WithMuBarFactor(c.MuBarFactor))
	}
	if c.WeightEpsilon != 0 {
		opts = append(opts, WithWeightEpsilon(c.WeightEpsilon))
	}
	if c.LogEvery != 0 {
		opts = append(opts, WithLogEvery(c.LogEvery))
	}
	if c.Trace {
		opts = append(opts, WithResidualTrace())
	}

	return opts
}
