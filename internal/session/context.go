// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package session provides project context loading for CLI commands.
package session

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dacolabs/dartgen/internal/codegen"
	"github.com/dacolabs/dartgen/internal/codegen/dart"
	"github.com/dacolabs/dartgen/internal/config"
	"github.com/dacolabs/dartgen/internal/ir"
	"github.com/dacolabs/dartgen/internal/logging"
	"github.com/dacolabs/dartgen/internal/oas"
	"github.com/getkin/kin-openapi/openapi3"
	"go.uber.org/zap"
)

var (
	// ErrNotInitialized indicates no dartgen.yaml was found in the project directory.
	ErrNotInitialized = errors.New("not in a dartgen project (dartgen.yaml not found)")

	// ErrInvalidConfig indicates the config file exists but is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrSpecNotFound indicates the OpenAPI document referenced by config doesn't exist.
	ErrSpecNotFound = errors.New("OpenAPI document not found")

	// ErrInvalidSpec indicates the OpenAPI document exists but couldn't be loaded.
	ErrInvalidSpec = errors.New("invalid OpenAPI document")
)

// ConfigFileName is the name of the dartgen configuration file.
const ConfigFileName = "dartgen.yaml"

// EnvLogLevel overrides the configured log level.
const EnvLogLevel = "DARTGEN_LOG_LEVEL"

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the resolved project configuration and the loaded OpenAPI document.
type Context struct {
	// Config is the validated configuration with defaults applied.
	Config *config.Config

	// Doc is the loaded OpenAPI document.
	Doc *openapi3.T

	// InputPath is the absolute path of Doc.
	InputPath string

	// Logger is built from the log section of Config.
	Logger *zap.SugaredLogger
}

// Options control Load.
type Options struct {
	// Dir is the project directory. Empty means the current directory.
	Dir string

	// LogLevel overrides Config.Log.Level when set.
	LogLevel string
}

// Load loads the project context and returns a new context.Context with the
// dartgen Context stored in it.
func Load(ctx context.Context, opts Options) (context.Context, error) {
	dir := opts.Dir
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		dir = cwd
	}

	configPath := filepath.Join(dir, ConfigFileName)
	if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) {
		return nil, ErrNotInitialized
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	cfg.ApplyDefaults()
	if validateErr := cfg.Validate(); validateErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, validateErr)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	inputPath := cfg.Input
	if !filepath.IsAbs(inputPath) {
		inputPath = filepath.Join(dir, inputPath)
	}
	if !oas.IsSupportedFile(inputPath) {
		return nil, fmt.Errorf("%w: %w: %s", ErrInvalidSpec, oas.ErrUnsupportedFormat, cfg.Input)
	}
	if _, statErr := os.Stat(inputPath); statErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrSpecNotFound, statErr)
	}

	root, name := documentRoot(dir, inputPath)
	loader := oas.NewLoader(os.DirFS(root)).WithValidation(cfg.Generator.ValidateSpec)
	doc, err := loader.LoadFile(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSpec, err)
	}

	sugar := logger.Sugar()
	sugar.Debugw("loaded project", "config", configPath, "input", inputPath, "schemas", len(oas.SchemaNames(doc)))

	dartCtx := &Context{
		Config:    cfg,
		Doc:       doc,
		InputPath: inputPath,
		Logger:    sugar,
	}

	return context.WithValue(ctx, contextKey{}, dartCtx), nil
}

// documentRoot returns the filesystem root external $refs are resolved in and
// the document path inside it. Documents inside the project directory are
// rooted there, so refs may reach sibling directories of the document.
// Other documents are rooted at their own directory.
func documentRoot(dir, inputPath string) (string, string) {
	if rel, err := filepath.Rel(dir, inputPath); err == nil {
		if name := filepath.ToSlash(rel); fs.ValidPath(name) {
			return dir, name
		}
	}
	return filepath.Dir(inputPath), filepath.Base(inputPath)
}

// From extracts the dartgen Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if dartCtx, ok := ctx.Value(contextKey{}).(*Context); ok {
		return dartCtx
	}
	return nil
}

// Generator returns a Dart model generator configured from the project.
func (c *Context) Generator(opts ...codegen.Option) *codegen.Generator {
	base := []codegen.Option{
		codegen.WithLogger(c.Logger),
		codegen.WithOptions(c.Config.GeneratorOptions()),
	}
	return codegen.New(dart.NewResolver(), append(base, opts...)...)
}

// Models runs the generator over the loaded document.
func (c *Context) Models(ctx context.Context) (ir.Models, error) {
	return c.Generator().Generate(ctx, c.Doc)
}
