// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package codegen

import (
	"github.com/dacolabs/dartgen/internal/ir"
	"github.com/getkin/kin-openapi/openapi3"
	"go.uber.org/zap"
)

// DiscriminatorReconciler adjusts the inferred discriminator of a schema.
// It receives the pipeline's default result and returns the mapping to keep.
type DiscriminatorReconciler interface {
	Reconcile(schemaName string, schema *openapi3.Schema, inferred *ir.Discriminator) *ir.Discriminator
}

// ReconcilerFunc adapts a function to DiscriminatorReconciler.
type ReconcilerFunc func(schemaName string, schema *openapi3.Schema, inferred *ir.Discriminator) *ir.Discriminator

// Reconcile calls f.
func (f ReconcilerFunc) Reconcile(schemaName string, schema *openapi3.Schema, inferred *ir.Discriminator) *ir.Discriminator {
	return f(schemaName, schema, inferred)
}

// InferredMappingReconciler keeps the inferred mapping as is.
type InferredMappingReconciler struct{}

// Reconcile returns inferred unchanged.
func (InferredMappingReconciler) Reconcile(_ string, _ *openapi3.Schema, inferred *ir.Discriminator) *ir.Discriminator {
	return inferred
}

// ExplicitMappingReconciler prunes the inferred mapping down to the keys of
// the mapping declared in the schema, giving a 1-1 schema mapping instead of
// the 1-many mapping inheritance produces.
type ExplicitMappingReconciler struct {
	logger *zap.SugaredLogger

	// WarnUnmatched logs explicit keys that inference never produced.
	// They are dropped either way.
	WarnUnmatched bool
}

// NewExplicitMappingReconciler creates a reconciler logging to logger.
// A nil logger discards output.
func NewExplicitMappingReconciler(logger *zap.SugaredLogger) *ExplicitMappingReconciler {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &ExplicitMappingReconciler{logger: logger}
}

// Reconcile removes every inferred entry whose key is absent from the explicit mapping.
// Kept entries retain their inferred target. The schema is never modified.
func (r *ExplicitMappingReconciler) Reconcile(schemaName string, schema *openapi3.Schema, inferred *ir.Discriminator) *ir.Discriminator {
	if inferred == nil || schema == nil || schema.Discriminator == nil {
		return inferred
	}
	explicit := schema.Discriminator.Mapping
	if len(explicit) == 0 {
		return inferred
	}

	logger := r.logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	var stale []string
	seen := make(map[string]struct{})
	for _, key := range inferred.Keys() {
		seen[key] = struct{}{}
		if _, ok := explicit[key]; !ok {
			stale = append(stale, key)
		}
	}
	for _, mm := range inferred.MappedModels {
		if _, ok := seen[mm.MappingName]; ok {
			continue
		}
		seen[mm.MappingName] = struct{}{}
		if _, ok := explicit[mm.MappingName]; !ok {
			stale = append(stale, mm.MappingName)
		}
	}

	for _, key := range stale {
		logger.Debugw("dropping inferred discriminator mapping",
			"schema", schemaName, "key", key, "model", inferred.Mapping[key])
		inferred.Remove(key)
	}

	if r.WarnUnmatched {
		for key, ref := range explicit {
			if !inferred.Has(key) {
				logger.Warnw("discriminator mapping has no matching subtype",
					"schema", schemaName, "key", key, "ref", ref)
			}
		}
	}

	return inferred
}
