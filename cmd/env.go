package cmd

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"
)

// envConfig holds environment overrides. Explicit flags take precedence.
type envConfig struct {
	OutDir  string `env:"APPICON_OUT_DIR"`
	Style   string `env:"APPICON_STYLE"`
	Set     string `env:"APPICON_SET"`
	Seed    *int64 `env:"APPICON_SEED"`
	Workers *int   `env:"APPICON_WORKERS"`
	Verbose bool   `env:"APPICON_VERBOSE"`
}

func loadEnv() (envConfig, error) {
	var cfg envConfig
	if err := env.Parse(&cfg); err != nil {
		return envConfig{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// applyEnvString sets *dst from value unless the flag was given.
func applyEnvString(cmd *cobra.Command, flag string, dst *string, value string) {
	if value != "" && !cmd.Flags().Changed(flag) {
		logVerbose("%s from environment: %s", flag, value)
		*dst = value
	}
}
