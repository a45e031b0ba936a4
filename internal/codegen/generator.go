// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package codegen builds the model IR from an OpenAPI document and derives
// the metadata templates need: reconciled discriminator mappings and data
// type identifiers on every composed-schema branch.
package codegen

import (
	"context"
	"fmt"

	"github.com/dacolabs/dartgen/internal/ir"
	"github.com/dacolabs/dartgen/internal/oas"
	"github.com/getkin/kin-openapi/openapi3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// SerializationLibraryNative is the default, backwards compatible serializer.
const SerializationLibraryNative = "native_serialization"

// Options tune the generator.
type Options struct {
	SerializationLibrary        string
	LegacyDiscriminatorBehavior bool
	WarnUnmatchedMappings       bool
	Parallelism                 int // models annotated concurrently; <= 1 runs sequentially
}

// Generator turns component schemas into models.
type Generator struct {
	resolver   TypeResolver
	inferrer   MappingInferrer
	reconciler DiscriminatorReconciler
	annotator  *Annotator
	logger     *zap.SugaredLogger
	opts       Options
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger shared by the generator and its default components.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(g *Generator) { g.logger = logger }
}

// WithOptions sets generator options.
func WithOptions(opts Options) Option {
	return func(g *Generator) { g.opts = opts }
}

// WithInferrer replaces the per-document DefaultInferrer.
func WithInferrer(inferrer MappingInferrer) Option {
	return func(g *Generator) { g.inferrer = inferrer }
}

// WithReconciler replaces the ExplicitMappingReconciler.
func WithReconciler(reconciler DiscriminatorReconciler) Option {
	return func(g *Generator) { g.reconciler = reconciler }
}

// WithAnnotator replaces the DataTypeIdentifiers annotator.
func WithAnnotator(annotator *Annotator) Option {
	return func(g *Generator) { g.annotator = annotator }
}

// New creates a Generator using resolver for every type and name decision.
func New(resolver TypeResolver, opts ...Option) *Generator {
	g := &Generator{resolver: resolver}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = zap.NewNop().Sugar()
	}
	if g.opts.SerializationLibrary == "" {
		g.opts.SerializationLibrary = SerializationLibraryNative
	}
	if g.reconciler == nil {
		r := NewExplicitMappingReconciler(g.logger)
		r.WarnUnmatched = g.opts.WarnUnmatchedMappings
		g.reconciler = r
	}
	if g.annotator == nil {
		g.annotator = NewAnnotator(DataTypeIdentifiers, g.logger)
	}
	return g
}

// Generate builds one model per component schema, in name order, then
// post-processes all of them.
func (g *Generator) Generate(ctx context.Context, doc *openapi3.T) (ir.Models, error) {
	g.logger.Infow("using serialization library", "library", g.opts.SerializationLibrary)

	b := g.newBuilder(doc)
	names := oas.SchemaNames(doc)
	g.warnInlineDiscriminators(b.schemas, names)
	models := make(ir.Models, 0, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ref := b.schemas[name]
		if ref == nil || ref.Value == nil {
			g.logger.Warnw("skipping unresolved schema", "schema", name)
			continue
		}
		models = append(models, b.fromModel(name, ref.Value))
	}

	if err := g.PostProcessAllModels(ctx, models); err != nil {
		return nil, fmt.Errorf("failed to post-process models: %w", err)
	}

	g.logger.Infow("generated models", "count", len(models))
	return models, nil
}

// warnInlineDiscriminators reports discriminators declared on inline schemas.
// Only component schemas become models, so those mappings are never used.
func (g *Generator) warnInlineDiscriminators(schemas openapi3.Schemas, names []string) {
	seen := make(map[*openapi3.Schema]struct{})
	for _, name := range names {
		root := schemas[name]
		for ref := range oas.Traverse(root) {
			if ref == root || ref.Ref != "" || ref.Value.Discriminator == nil {
				continue
			}
			if _, ok := seen[ref.Value]; ok {
				continue
			}
			seen[ref.Value] = struct{}{}
			g.logger.Warnw("ignoring discriminator on inline schema",
				"schema", name,
				"property", ref.Value.Discriminator.PropertyName)
		}
	}
}

// CreateDiscriminator infers the discriminator of a schema from doc and
// reconciles it. It returns nil when the schema has no discriminator.
func (g *Generator) CreateDiscriminator(doc *openapi3.T, schemaName string, schema *openapi3.Schema) *ir.Discriminator {
	return g.newBuilder(doc).createDiscriminator(schemaName, schema)
}

// PostProcessAllModels annotates every model once all models exist.
// Models own their nodes, so they may be annotated concurrently.
func (g *Generator) PostProcessAllModels(ctx context.Context, models ir.Models) error {
	if g.opts.Parallelism <= 1 {
		for _, m := range models {
			if err := ctx.Err(); err != nil {
				return err
			}
			g.annotator.AnnotateModel(m)
		}
		return nil
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(g.opts.Parallelism)
	for _, m := range models {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			g.annotator.AnnotateModel(m)
			return nil
		})
	}
	return eg.Wait()
}
