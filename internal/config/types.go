// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/sprocketschain/sprocketschain/pkg/depchain"
)

const (
	// OutputText prints one absolute path per line.
	OutputText OutputFormat = "text"
	// OutputJSON prints the chains as a JSON document.
	OutputJSON OutputFormat = "json"
	// OutputTOML prints the chains as a TOML document.
	OutputTOML OutputFormat = "toml"

	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

var (
	// ErrInvalidOutputFormat is returned when an OutputFormat value is not recognized.
	ErrInvalidOutputFormat = errors.New("invalid output format")
	// ErrInvalidLogLevel is returned when a LogLevel value is not recognized.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidExtension is returned for an empty or whitespace-only extension.
	ErrInvalidExtension = errors.New("invalid extension")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// OutputFormat selects how the chain command prints its result.
	OutputFormat string

	// InvalidOutputFormatError is returned when an OutputFormat value is not recognized.
	// It wraps ErrInvalidOutputFormat for errors.Is() compatibility.
	InvalidOutputFormatError struct {
		Value OutputFormat
	}

	// LogLevel is the minimum level the CLI logger prints.
	LogLevel string

	// InvalidLogLevelError is returned when a LogLevel value is not recognized.
	// It wraps ErrInvalidLogLevel for errors.Is() compatibility.
	InvalidLogLevelError struct {
		Value LogLevel
	}

	// InvalidExtensionError is returned for an empty or whitespace-only extension.
	InvalidExtensionError struct {
		Value string
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig and every collected field-level error.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// Root is the directory relative search paths are resolved against.
		Root string `json:"root" mapstructure:"root"`
		// SearchPaths lists asset roots in precedence order.
		SearchPaths []string `json:"search_paths" mapstructure:"search_paths"`
		// Extensions lists recognized asset extensions in precedence order.
		Extensions []string `json:"extensions" mapstructure:"extensions"`
		// ManifestFiles lists package manifest names, first match wins.
		ManifestFiles []string `json:"manifest_files" mapstructure:"manifest_files"`
		// Output configures chain output
		Output OutputConfig `json:"output" mapstructure:"output"`
		// Log configures the CLI logger
		Log LogConfig `json:"log" mapstructure:"log"`
		// UI configures the user interface
		UI UIConfig `json:"ui" mapstructure:"ui"`
	}

	// OutputConfig configures chain output.
	OutputConfig struct {
		Format OutputFormat `json:"format" mapstructure:"format"`
		// Relative prints paths relative to Root instead of absolute.
		Relative bool `json:"relative" mapstructure:"relative"`
	}

	// LogConfig configures the CLI logger.
	LogConfig struct {
		Level LogLevel `json:"level" mapstructure:"level"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// Verbose enables verbose error output (full error chains and issue guides).
		Verbose bool `json:"verbose" mapstructure:"verbose"`
	}
)

// String returns the string representation of the OutputFormat.
func (f OutputFormat) String() string { return string(f) }

// IsValid returns whether the OutputFormat is one of the defined formats,
// and a list of validation errors if it is not.
func (f OutputFormat) IsValid() (bool, []error) {
	switch f {
	case OutputText, OutputJSON, OutputTOML:
		return true, nil
	default:
		return false, []error{&InvalidOutputFormatError{Value: f}}
	}
}

// Error implements the error interface for InvalidOutputFormatError.
func (e *InvalidOutputFormatError) Error() string {
	return fmt.Sprintf("invalid output format %q (valid: text, json, toml)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidOutputFormatError) Unwrap() error { return ErrInvalidOutputFormat }

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string { return string(l) }

// IsValid returns whether the LogLevel is one of the defined levels.
func (l LogLevel) IsValid() (bool, []error) {
	switch l {
	case LogDebug, LogInfo, LogWarn, LogError:
		return true, nil
	default:
		return false, []error{&InvalidLogLevelError{Value: l}}
	}
}

// Error implements the error interface for InvalidLogLevelError.
func (e *InvalidLogLevelError) Error() string {
	return fmt.Sprintf("invalid log level %q (valid: debug, info, warn, error)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidLogLevelError) Unwrap() error { return ErrInvalidLogLevel }

// Error implements the error interface for InvalidExtensionError.
func (e *InvalidExtensionError) Error() string {
	return fmt.Sprintf("invalid extension %q: must be non-empty", e.Value)
}

// Unwrap returns ErrInvalidExtension for errors.Is() compatibility.
func (e *InvalidExtensionError) Unwrap() error { return ErrInvalidExtension }

// IsValid returns whether the Config has valid fields, collecting every
// field error into one InvalidConfigError.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.Output.Format.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Log.Level.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	for _, ext := range c.Extensions {
		if strings.TrimSpace(ext) == "" {
			errs = append(errs, &InvalidExtensionError{Value: ext})
		}
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	msgs := make([]string, 0, len(e.FieldErrors))
	for _, err := range e.FieldErrors {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("invalid config: %s", strings.Join(msgs, "; "))
}

// Unwrap returns ErrInvalidConfig followed by the field errors, so both the
// sentinel and the field-level sentinels match with errors.Is().
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Root:          "",
		SearchPaths:   []string{},
		Extensions:    slices.Clone(depchain.DefaultExtensions),
		ManifestFiles: []string{depchain.DefaultManifestFile},
		Output: OutputConfig{
			Format:   OutputText,
			Relative: false,
		},
		Log: LogConfig{
			Level: LogWarn,
		},
		UI: UIConfig{
			Verbose: false,
		},
	}
}
