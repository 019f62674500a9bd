// Package config defines environment configuration structs and loaders.
package config

import (
	"github.com/caarlos0/env/v11"
)

type AppConfig struct {
	RuntimeEnvConfig
	ScoringEnvConfig
	OptimizerEnvConfig
}

func LoadConfig() (*AppConfig, error) {
	cfg := &AppConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// RuntimeEnvConfig holds runtime environment values.
type RuntimeEnvConfig struct {
	Environment string `env:"ENVIRONMENT" envDefault:"prod"`
}

// ScoringEnvConfig selects the fit metric used by evaluation runs.
type ScoringEnvConfig struct {
	FitMetric string `env:"FIT_METRIC" envDefault:"R2"`
}

// OptimizerEnvConfig carries the L-BFGS-B knobs handed to the training backend.
type OptimizerEnvConfig struct {
	LBFGSIPrint int     `env:"LBFGS_IPRINT" envDefault:"-1"`
	LBFGSIters  int     `env:"LBFGS_ITERS" envDefault:"1000"`
	LBFGSTol    float64 `env:"LBFGS_TOL" envDefault:"1e-8"`
	LBFGSMemory int     `env:"LBFGS_MEMORY" envDefault:"10"`
}
