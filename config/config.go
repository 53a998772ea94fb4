// SPDX-License-Identifier: MIT
// Package: dtwalign/config
//
// config.go: Config model, defaults, loading and validation.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dtwalign/keylog"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Config is the full run configuration.
type Config struct {
	Template  []float64            `yaml:"template"`
	Input     []float64            `yaml:"input"`
	Inputs    map[string][]float64 `yaml:"inputs"`
	Templates map[string][]float64 `yaml:"templates"`
	Output    Output               `yaml:"output"`
	Store     Store                `yaml:"store"`
	Workers   int                  `yaml:"workers"`
	LogLevel  string               `yaml:"log_level"`
	Keylog    Keylog               `yaml:"keylog"`
}

// Output selects where results are written. Empty paths disable an output,
// except Report where "" and "-" both mean stdout.
type Output struct {
	Report    string `yaml:"report"`
	Plot      string `yaml:"plot"`
	Heatmap   string `yaml:"heatmap"`
	HTML      string `yaml:"html"`
	Precision int    `yaml:"precision"`
}

// Store configures persistence; an empty Path disables it.
type Store struct {
	Path string `yaml:"path"`
}

// Keylog mirrors keylog.Options.
type Keylog struct {
	Marker        string `yaml:"marker"`
	Delimiter     string `yaml:"delimiter"`
	SkipMalformed bool   `yaml:"skip_malformed"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Output:   Output{Precision: 1},
		LogLevel: "info",
		Keylog: Keylog{
			Marker:    keylog.DefaultMarker,
			Delimiter: keylog.DefaultDelimiter,
		},
	}
}

// Parse decodes YAML on top of Default() and validates the result.
func Parse(data []byte) (Config, error) {
	c := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: invalid YAML: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Load reads and parses the file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: cannot read %s: %w", path, err)
	}

	return Parse(data)
}

// Validate checks fields that are wrong regardless of the subcommand.
func (c Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0, got %d", ErrInvalidConfig, c.Workers)
	}
	if c.Output.Precision < 0 {
		return fmt.Errorf("%w: output.precision must be >= 0, got %d", ErrInvalidConfig, c.Output.Precision)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Keylog.Marker == "" {
		return fmt.Errorf("%w: keylog.marker is required", ErrInvalidConfig)
	}
	if c.Keylog.Delimiter == "" {
		return fmt.Errorf("%w: keylog.delimiter is required", ErrInvalidConfig)
	}
	for label, seq := range c.Inputs {
		if len(seq) == 0 {
			return fmt.Errorf("%w: inputs.%s is empty", ErrInvalidConfig, label)
		}
	}
	for label, seq := range c.Templates {
		if len(seq) == 0 {
			return fmt.Errorf("%w: templates.%s is empty", ErrInvalidConfig, label)
		}
	}

	return nil
}

// RequirePair reports whether a single alignment can run.
func (c Config) RequirePair() error {
	if len(c.Template) == 0 {
		return fmt.Errorf("%w: template is required", ErrInvalidConfig)
	}
	if len(c.Input) == 0 {
		return fmt.Errorf("%w: input is required", ErrInvalidConfig)
	}

	return nil
}

// RequireBatch reports whether a batch run has anything to do: inputs need a
// template, and classification needs an input.
func (c Config) RequireBatch() error {
	if len(c.Inputs) == 0 && len(c.Templates) == 0 {
		return fmt.Errorf("%w: batch needs inputs or templates", ErrInvalidConfig)
	}
	if len(c.Inputs) > 0 && len(c.Template) == 0 {
		return fmt.Errorf("%w: inputs require template", ErrInvalidConfig)
	}
	if len(c.Templates) > 0 && len(c.Input) == 0 {
		return fmt.Errorf("%w: templates require input", ErrInvalidConfig)
	}

	return nil
}

// KeylogOptions converts the keylog section to keylog.Options.
func (c Config) KeylogOptions() keylog.Options {
	return keylog.Options{
		Marker:        c.Keylog.Marker,
		Delimiter:     c.Keylog.Delimiter,
		SkipMalformed: c.Keylog.SkipMalformed,
	}
}

// ParseLevel maps debug|info|warn|error (case-insensitive) to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, s)
	}
}
