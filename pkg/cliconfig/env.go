package cliconfig

import (
	"os"
	"strconv"
)

// Environment variable names.
const (
	EnvLogLevel  = "MOCKSHAPE_LOG_LEVEL"
	EnvLogFormat = "MOCKSHAPE_LOG_FORMAT"
	EnvSeed      = "MOCKSHAPE_SEED"
	EnvIndent    = "MOCKSHAPE_INDENT"
)

// LoadEnvConfig reads the MOCKSHAPE_* variables that are set. Numbers that
// do not parse are reported as a *ConfigError naming the variable.
func LoadEnvConfig() (*Config, error) {
	cfg := &Config{
		LogLevel:  os.Getenv(EnvLogLevel),
		LogFormat: os.Getenv(EnvLogFormat),
	}

	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, &ConfigError{Path: EnvSeed, Message: "seed must be a non-negative integer", Err: err}
		}
		cfg.Seed = &seed
	}

	if v := os.Getenv(EnvIndent); v != "" {
		indent, err := strconv.Atoi(v)
		if err != nil {
			return nil, &ConfigError{Path: EnvIndent, Message: "indent must be an integer", Err: err}
		}
		cfg.Indent = &indent
	}

	return cfg, nil
}
