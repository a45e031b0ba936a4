// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package emit serializes generated models for the rendering stage.
package emit

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dacolabs/dartgen/internal/ir"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Document is the emitted file: every model with its derived metadata.
type Document struct {
	Generator string    `yaml:"generator" json:"generator"`
	Source    string    `yaml:"source,omitempty" json:"source,omitempty"`
	Models    ir.Models `yaml:"models" json:"models"`
}

// NewDocument wraps models read from source.
func NewDocument(source string, models ir.Models) *Document {
	if models == nil {
		models = ir.Models{}
	}
	return &Document{Generator: "dartgen", Source: source, Models: models}
}

// Writer encodes values in one output format.
type Writer struct {
	encode    func(w io.Writer, v any) error
	Extension string
}

var (
	// JSONWriter writes JSON with two-space indentation.
	JSONWriter = Writer{encodeJSON, ".json"}
	// YAMLWriter writes YAML with two-space indentation.
	YAMLWriter = Writer{encodeYAML, ".yaml"}
)

// ForFormat returns the writer for "yaml" or "json".
func ForFormat(format string) (Writer, error) {
	switch format {
	case "yaml", "yml":
		return YAMLWriter, nil
	case "json":
		return JSONWriter, nil
	default:
		return Writer{}, fmt.Errorf("unsupported output format %q (expected yaml or json)", format)
	}
}

// Encode writes v to w.
func (wr Writer) Encode(w io.Writer, v any) error {
	if wr.encode == nil {
		return errors.New("writer has no encoder")
	}
	return wr.encode(w, v)
}

// WriteFile writes doc to path, creating the parent directory.
func (wr Writer) WriteFile(path string, doc *Document) error {
	if doc == nil {
		return errors.New("cannot write nil document")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := os.Create(path) //nolint:gosec // path is from config
	if err != nil {
		return err
	}
	if err := wr.Encode(f, doc); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func encodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
