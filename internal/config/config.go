// Package config reads the process configuration from METHODHANDLES_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/anoideaopen/methodhandles/core/stringsx"
	"github.com/anoideaopen/methodhandles/version"
)

// Environment variables.
const (
	EnvLoggingLevel      = "METHODHANDLES_LOGGING_LEVEL"
	EnvLoggingFormat     = "METHODHANDLES_LOGGING_FORMAT"
	EnvCollectorEndpoint = "METHODHANDLES_OTLP_ENDPOINT"
)

// Logging formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// DefaultLoggingLevel is used when EnvLoggingLevel is not set.
const DefaultLoggingLevel = "warning"

var ErrInvalidLoggingFormat = errors.New("invalid logging format")

// Config holds the process configuration.
type Config struct {
	LoggingLevel      string
	LoggingFormat     string
	CollectorEndpoint string // OTLP/HTTP collector; tracing is disabled when empty
	ServiceName       string
}

// FromEnv builds a Config from the environment, applying defaults for unset variables.
// An unknown logging format is an error; the logging level is validated by the logger.
func FromEnv() (Config, error) {
	cfg := Config{
		LoggingLevel:      os.Getenv(EnvLoggingLevel),
		LoggingFormat:     os.Getenv(EnvLoggingFormat),
		CollectorEndpoint: os.Getenv(EnvCollectorEndpoint),
		ServiceName:       version.ServiceName(),
	}

	if cfg.LoggingLevel == "" {
		cfg.LoggingLevel = DefaultLoggingLevel
	}

	if cfg.LoggingFormat == "" {
		cfg.LoggingFormat = FormatText
	}
	if !stringsx.OneOf(cfg.LoggingFormat, FormatText, FormatJSON) {
		return cfg, fmt.Errorf("%w: '%s'", ErrInvalidLoggingFormat, cfg.LoggingFormat)
	}

	return cfg, nil
}
