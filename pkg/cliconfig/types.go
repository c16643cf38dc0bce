package cliconfig

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/getmockd/mockshape/pkg/logging"
)

// Config holds the settings shared by every mockshape command.
type Config struct {
	// LogLevel is debug, info, warn or error.
	LogLevel string `yaml:"logLevel,omitempty" json:"logLevel"`

	// LogFormat is text or json.
	LogFormat string `yaml:"logFormat,omitempty" json:"logFormat"`

	// Seed makes generation reproducible. Nil means a fresh random source.
	Seed *uint64 `yaml:"seed,omitempty" json:"seed,omitempty"`

	// Indent is the number of spaces used when printing JSON. Zero prints
	// compact output.
	Indent *int `yaml:"indent,omitempty" json:"indent"`

	// Sources tracks where each value came from.
	Sources map[string]string `yaml:"-" json:"-"`
}

// Keys used in Sources.
const (
	KeyLogLevel  = "logLevel"
	KeyLogFormat = "logFormat"
	KeySeed      = "seed"
	KeyIndent    = "indent"
)

// Config sources.
const (
	SourceDefault = "default"
	SourceGlobal  = "global"
	SourceLocal   = "local"
	SourceEnv     = "env"
	SourceFlag    = "flag"
)

// ConfigError reports a problem with one configuration source.
type ConfigError struct {
	// Path is the file or environment variable at fault.
	Path    string
	Line    int
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Line > 0 {
		return e.Path + " (line " + strconv.Itoa(e.Line) + "): " + e.Message
	}
	return e.Path + ": " + e.Message
}

func (e *ConfigError) Unwrap() error { return e.Err }

// ErrInvalidConfig is matched by every error Validate returns.
var ErrInvalidConfig = errors.New("invalid configuration")

// Validate checks the merged configuration.
func (c *Config) Validate() error {
	var errs []error
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, KeyLogLevel, err))
	}
	if _, err := logging.ParseFormat(c.LogFormat); err != nil {
		errs = append(errs, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, KeyLogFormat, err))
	}
	if c.Indent != nil && *c.Indent < 0 {
		errs = append(errs, fmt.Errorf("%w: %s %d is negative", ErrInvalidConfig, KeyIndent, *c.Indent))
	}
	return errors.Join(errs...)
}

// IndentWidth returns the configured indent, or DefaultIndent when unset.
func (c *Config) IndentWidth() int {
	if c.Indent == nil {
		return DefaultIndent
	}
	return *c.Indent
}

// LoggingConfig converts the log settings for logging.New. Call Validate
// first; unknown names fall back to info and text.
func (c *Config) LoggingConfig() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level, _ = logging.ParseLevel(c.LogLevel)
	cfg.Format, _ = logging.ParseFormat(c.LogFormat)
	return cfg
}
