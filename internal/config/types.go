// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces the dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces the light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidBinaryFilePath is returned when a BinaryFilePath value is whitespace-only.
	ErrInvalidBinaryFilePath = errors.New("invalid binary file path")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not
	// recognized. It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// BinaryFilePath is a filesystem path to a linter executable. The zero
	// value ("") is valid and means "use the conventional binary name".
	// Non-zero values must not be whitespace-only.
	BinaryFilePath string

	// InvalidBinaryFilePathError is returned when a BinaryFilePath value is
	// non-empty but whitespace-only.
	InvalidBinaryFilePathError struct {
		Value BinaryFilePath
	}

	// InvalidConfigError is returned when a Config has invalid fields. It
	// wraps ErrInvalidConfig and collects field-level validation errors.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config is the loaded masklint configuration.
	Config struct {
		// Maskfile is the default maskfile path used when --maskfile is not given.
		Maskfile string `mapstructure:"maskfile"`
		// NoWarnings suppresses warning-kind lint output by default.
		NoWarnings bool `mapstructure:"no_warnings"`
		// UI holds presentation settings.
		UI UIConfig `mapstructure:"ui"`
		// Linters holds analyzer invocation settings.
		Linters LintersConfig `mapstructure:"linters"`
	}

	// UIConfig holds presentation settings.
	UIConfig struct {
		// Verbose enables diagnostic logging.
		Verbose bool `mapstructure:"verbose"`
		// ColorScheme selects the glamour style for rendered issue cards.
		ColorScheme ColorScheme `mapstructure:"color_scheme"`
	}

	// LintersConfig holds analyzer invocation settings.
	LintersConfig struct {
		// TimeoutSeconds bounds each analyzer invocation; 0 disables the bound.
		TimeoutSeconds int `mapstructure:"timeout_seconds"`
		// ShellCheck configures the sh/bash analyzer.
		ShellCheck ToolConfig `mapstructure:"shellcheck"`
		// Ruff configures the py/python analyzer.
		Ruff ToolConfig `mapstructure:"ruff"`
		// RuboCop configures the rb/ruby analyzer.
		RuboCop ToolConfig `mapstructure:"rubocop"`
		// Nu configures the nu/nushell analyzer.
		Nu ToolConfig `mapstructure:"nu"`
	}

	// ToolConfig configures a single analyzer binary.
	ToolConfig struct {
		// Path overrides the binary location; empty means PATH lookup by name.
		Path BinaryFilePath `mapstructure:"path"`
	}
)

// Error implements the error interface.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: %s, %s, %s)",
		e.Value, ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight)
}

// Unwrap returns ErrInvalidColorScheme so callers can use errors.Is.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// Error implements the error interface.
func (e *InvalidBinaryFilePathError) Error() string {
	return fmt.Sprintf("binary file path %q must not be whitespace-only", e.Value)
}

// Unwrap returns ErrInvalidBinaryFilePath so callers can use errors.Is.
func (e *InvalidBinaryFilePathError) Unwrap() error { return ErrInvalidBinaryFilePath }

// Error implements the error interface.
func (e *InvalidConfigError) Error() string {
	msgs := make([]string, 0, len(e.FieldErrors))
	for _, err := range e.FieldErrors {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("invalid config: %s", strings.Join(msgs, "; "))
}

// Unwrap exposes ErrInvalidConfig plus every field error, so errors.Is
// matches both the sentinel and the individual violations.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}

// Validate returns nil if the ColorScheme is recognized.
func (s ColorScheme) Validate() error {
	switch s {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return nil
	default:
		return &InvalidColorSchemeError{Value: s}
	}
}

// Validate returns nil if the BinaryFilePath is usable.
func (p BinaryFilePath) Validate() error {
	if p != "" && strings.TrimSpace(string(p)) == "" {
		return &InvalidBinaryFilePathError{Value: p}
	}
	return nil
}

// String returns the string representation of the path.
func (p BinaryFilePath) String() string { return string(p) }

// Validate checks all config fields, collecting every violation.
func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Maskfile) == "" {
		errs = append(errs, errors.New("maskfile path must not be empty"))
	}
	if err := c.UI.ColorScheme.Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.Linters.TimeoutSeconds < 0 {
		errs = append(errs, fmt.Errorf("linters.timeout_seconds must not be negative (got %d)",
			c.Linters.TimeoutSeconds))
	}
	for _, tool := range []struct {
		name string
		path BinaryFilePath
	}{
		{"shellcheck", c.Linters.ShellCheck.Path},
		{"ruff", c.Linters.Ruff.Path},
		{"rubocop", c.Linters.RuboCop.Path},
		{"nu", c.Linters.Nu.Path},
	} {
		if err := tool.path.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("linters.%s: %w", tool.name, err))
		}
	}

	if len(errs) > 0 {
		return &InvalidConfigError{FieldErrors: errs}
	}
	return nil
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Maskfile:   "maskfile.md",
		NoWarnings: false,
		UI: UIConfig{
			Verbose:     false,
			ColorScheme: ColorSchemeAuto,
		},
		Linters: LintersConfig{
			TimeoutSeconds: 0,
		},
	}
}
