// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package config handles dartgen project configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/dacolabs/dartgen/internal/codegen"
	"github.com/dacolabs/dartgen/internal/logging"
	"gopkg.in/yaml.v3"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// Output formats of the emitted model document.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Defaults filled in by ApplyDefaults.
const (
	DefaultOutputFormat = FormatYAML
	DefaultParallelism  = 1
)

// Config represents the dartgen.yaml project configuration file.
type Config struct {
	Version      int             `yaml:"version"`
	Input        string          `yaml:"input"`
	Output       string          `yaml:"output,omitempty"`
	OutputFormat string          `yaml:"outputFormat,omitempty"`
	Generator    GeneratorConfig `yaml:"generator,omitempty"`
	Log          LogConfig       `yaml:"log,omitempty"`
}

// GeneratorConfig tunes model generation.
type GeneratorConfig struct {
	SerializationLibrary        string `yaml:"serializationLibrary,omitempty"`
	LegacyDiscriminatorBehavior bool   `yaml:"legacyDiscriminatorBehavior,omitempty"`
	WarnUnmatchedMappings       bool   `yaml:"warnUnmatchedMappings,omitempty"`
	Parallelism                 int    `yaml:"parallelism,omitempty"`
	ValidateSpec                bool   `yaml:"validateSpec,omitempty"`
}

// LogConfig configures the CLI logger.
type LogConfig struct {
	Level       string `yaml:"level,omitempty"`
	Development bool   `yaml:"development,omitempty"`
}

// Load reads a Config from a file path. The document is checked against the
// config schema before it is decoded.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, errors.New("empty config file")
	}
	if err := validateDocument(doc); err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// ApplyDefaults fills unset optional fields.
func (c *Config) ApplyDefaults() {
	if c.OutputFormat == "" {
		c.OutputFormat = DefaultOutputFormat
	}
	if c.Generator.SerializationLibrary == "" {
		c.Generator.SerializationLibrary = codegen.SerializationLibraryNative
	}
	if c.Generator.Parallelism == 0 {
		c.Generator.Parallelism = DefaultParallelism
	}
	if c.Log.Level == "" {
		c.Log.Level = logging.DefaultLevel
	}
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}
	if c.Input == "" {
		return errors.New("input is required")
	}
	switch c.OutputFormat {
	case "", FormatYAML, FormatJSON:
	default:
		return fmt.Errorf("unsupported output format %q (expected yaml or json)", c.OutputFormat)
	}
	switch c.Generator.SerializationLibrary {
	case "", codegen.SerializationLibraryNative:
	default:
		return fmt.Errorf("unsupported serialization library %q", c.Generator.SerializationLibrary)
	}
	if c.Generator.Parallelism < 0 {
		return errors.New("generator parallelism must not be negative")
	}
	if c.Log.Level != "" && !logging.ValidLevel(c.Log.Level) {
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	return nil
}

// GeneratorOptions converts the generator section into codegen options.
func (c *Config) GeneratorOptions() codegen.Options {
	return codegen.Options{
		SerializationLibrary:        c.Generator.SerializationLibrary,
		LegacyDiscriminatorBehavior: c.Generator.LegacyDiscriminatorBehavior,
		WarnUnmatchedMappings:       c.Generator.WarnUnmatchedMappings,
		Parallelism:                 c.Generator.Parallelism,
	}
}
