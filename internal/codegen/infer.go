// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package codegen

import (
	"sort"

	"github.com/dacolabs/dartgen/internal/ir"
	"github.com/dacolabs/dartgen/internal/oas"
	"github.com/getkin/kin-openapi/openapi3"
)

// MappingInferrer builds the discriminator mapping a schema implies,
// one entry per subtype it can reach.
type MappingInferrer interface {
	Infer(schemaName string, schema *openapi3.Schema) *ir.Discriminator
}

// DefaultInferrer infers mappings from the explicit mapping, the oneOf/anyOf
// references and every schema extending the discriminated schema through allOf.
type DefaultInferrer struct {
	schemas  openapi3.Schemas
	resolver TypeResolver

	// LegacyBehavior restricts inference to the explicit mapping when one is declared.
	LegacyBehavior bool
}

// NewDefaultInferrer creates an inferrer over the component schemas of a document.
func NewDefaultInferrer(schemas openapi3.Schemas, resolver TypeResolver) *DefaultInferrer {
	return &DefaultInferrer{schemas: schemas, resolver: resolver}
}

// Infer returns nil when the schema declares no discriminator.
// Models already mapped under another key are not added twice.
func (i *DefaultInferrer) Infer(schemaName string, schema *openapi3.Schema) *ir.Discriminator {
	if schema == nil || schema.Discriminator == nil {
		return nil
	}

	propName := schema.Discriminator.PropertyName
	d := ir.NewDiscriminator(i.resolver.FormatPropertyName(propName), propName)

	explicit := schema.Discriminator.Mapping
	keys := make([]string, 0, len(explicit))
	for key := range explicit {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		d.Add(key, i.resolver.FormatModelName(oas.RefName(explicit[key])))
	}

	if i.LegacyBehavior && len(explicit) > 0 {
		d.SortMappedModels()
		return d
	}

	branches := make(openapi3.SchemaRefs, 0, len(schema.OneOf)+len(schema.AnyOf))
	branches = append(branches, schema.OneOf...)
	branches = append(branches, schema.AnyOf...)
	for _, branch := range branches {
		if branch == nil || !oas.IsComponentRef(branch.Ref) {
			continue
		}
		name := oas.RefName(branch.Ref)
		i.addModel(d, name)
	}

	for _, name := range i.descendants(schemaName) {
		i.addModel(d, name)
	}

	d.SortMappedModels()
	return d
}

func (i *DefaultInferrer) addModel(d *ir.Discriminator, schemaName string) {
	model := i.resolver.FormatModelName(schemaName)
	if d.HasModel(model) {
		return
	}
	d.Add(schemaName, model)
}

// descendants returns, in sorted order, every schema extending schemaName
// through allOf, directly or transitively.
func (i *DefaultInferrer) descendants(schemaName string) []string {
	found := make(map[string]struct{})
	queue := []string{schemaName}
	for len(queue) > 0 {
		parent := queue[0]
		queue = queue[1:]
		for name, ref := range i.schemas {
			if name == schemaName || ref == nil || ref.Value == nil {
				continue
			}
			if _, ok := found[name]; ok {
				continue
			}
			if extends(ref.Value, parent) {
				found[name] = struct{}{}
				queue = append(queue, name)
			}
		}
	}

	names := make([]string, 0, len(found))
	for name := range found {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func extends(schema *openapi3.Schema, parent string) bool {
	for _, member := range schema.AllOf {
		if member != nil && oas.IsComponentRef(member.Ref) && oas.RefName(member.Ref) == parent {
			return true
		}
	}
	return false
}
