// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package codegen

import (
	"github.com/dacolabs/dartgen/internal/ir"
	"github.com/dacolabs/dartgen/internal/oas"
	"github.com/getkin/kin-openapi/openapi3"
)

// builder holds the per-document state of a Generate call.
type builder struct {
	*Generator
	schemas  openapi3.Schemas
	inferrer MappingInferrer
}

func (g *Generator) newBuilder(doc *openapi3.T) *builder {
	b := &builder{Generator: g, inferrer: g.inferrer}
	if doc != nil && doc.Components != nil {
		b.schemas = doc.Components.Schemas
	}
	if b.inferrer == nil {
		inferrer := NewDefaultInferrer(b.schemas, g.resolver)
		inferrer.LegacyBehavior = g.opts.LegacyDiscriminatorBehavior
		b.inferrer = inferrer
	}
	return b
}

func (b *builder) createDiscriminator(schemaName string, schema *openapi3.Schema) *ir.Discriminator {
	return b.reconciler.Reconcile(schemaName, schema, b.inferrer.Infer(schemaName, schema))
}

// fromModel builds the model of a component schema.
// Only inline schemas are expanded; $ref branches stay leaves, so no node is
// shared with another model.
func (b *builder) fromModel(name string, schema *openapi3.Schema) *ir.Model {
	m := &ir.Model{
		Name:        name,
		ClassName:   b.resolver.FormatModelName(name),
		Description: schema.Description,
	}

	if isObjectLike(schema) {
		m.DataType = m.ClassName
	} else {
		m.DataType = b.dataType(&openapi3.SchemaRef{Value: schema})
	}

	required := toSet(schema.Required)
	for _, propName := range oas.PropertyNames(schema) {
		_, req := required[propName]
		m.Properties = append(m.Properties, b.fromProperty(propName, schema.Properties[propName], req))
	}

	for _, member := range schema.AllOf {
		if member == nil || member.Value == nil {
			continue
		}
		if oas.IsComponentRef(member.Ref) {
			parent := oas.RefName(member.Ref)
			if member.Value.Discriminator != nil && m.Parent == "" {
				m.Parent = b.resolver.FormatModelName(parent)
			} else {
				m.Interfaces = append(m.Interfaces, b.resolver.FormatModelName(parent))
			}
			continue
		}
		inlineRequired := toSet(member.Value.Required)
		for _, propName := range oas.PropertyNames(member.Value) {
			_, req := inlineRequired[propName]
			m.Properties = append(m.Properties, b.fromProperty(propName, member.Value.Properties[propName], req))
		}
	}

	if oas.IsComposed(schema) {
		m.ComposedSchemas = b.composedSchemas(schema)
	}

	m.Discriminator = b.createDiscriminator(name, schema)

	b.logger.Debugw("built model",
		"schema", name,
		"dataType", m.DataType,
		"properties", len(m.Properties),
		"composed", !m.ComposedSchemas.IsEmpty(),
		"discriminator", m.Discriminator != nil)
	return m
}

func (b *builder) fromProperty(name string, ref *openapi3.SchemaRef, required bool) *ir.Property {
	p := &ir.Property{
		Name:     b.resolver.FormatPropertyName(name),
		BaseName: name,
		Required: required,
	}
	b.fillType(p, ref)
	return p
}

func (b *builder) fillType(p *ir.Property, ref *openapi3.SchemaRef) {
	p.DataType = b.dataType(ref)
	if ref == nil || ref.Value == nil {
		return
	}
	s := ref.Value
	p.Description = s.Description
	p.Nullable = s.Nullable

	if oas.IsComponentRef(ref.Ref) {
		p.IsModel = true
		return
	}

	switch {
	case oas.HasType(s, openapi3.TypeArray):
		p.IsArray = true
		if s.Items != nil {
			p.Items = b.fromProperty(p.BaseName, s.Items, false)
		}
	case isMap(s):
		p.IsMap = true
		if s.AdditionalProperties.Schema != nil {
			p.Items = b.fromProperty(p.BaseName, s.AdditionalProperties.Schema, false)
		}
	}

	if oas.IsComposed(s) {
		p.ComposedSchemas = b.composedSchemas(s)
	}
}

func (b *builder) composedSchemas(s *openapi3.Schema) *ir.ComposedSchemas {
	cs := &ir.ComposedSchemas{
		AnyOf: b.branches(s.AnyOf),
		OneOf: b.branches(s.OneOf),
		AllOf: b.branches(s.AllOf),
	}
	if s.Not != nil {
		cs.Not = b.branch(s.Not)
	}
	return cs
}

func (b *builder) branches(refs openapi3.SchemaRefs) []*ir.Property {
	if len(refs) == 0 {
		return nil
	}
	props := make([]*ir.Property, 0, len(refs))
	for _, ref := range refs {
		if ref == nil {
			continue
		}
		props = append(props, b.branch(ref))
	}
	return props
}

// branch builds the property of a composed-schema member, named after the
// referenced schema or its data type.
func (b *builder) branch(ref *openapi3.SchemaRef) *ir.Property {
	p := &ir.Property{}
	b.fillType(p, ref)
	p.BaseName = p.DataType
	if oas.IsComponentRef(ref.Ref) {
		p.BaseName = oas.RefName(ref.Ref)
	}
	p.Name = b.resolver.FormatPropertyName(p.BaseName)
	if p.Items != nil {
		p.Items.BaseName = p.BaseName
		p.Items.Name = p.Name
	}
	return p
}

func (b *builder) dataType(ref *openapi3.SchemaRef) string {
	if ref == nil || ref.Value == nil {
		return b.resolver.PrimitiveType(openapi3.TypeObject, "")
	}
	if oas.IsComponentRef(ref.Ref) {
		return b.resolver.RefType(oas.RefName(ref.Ref))
	}

	s := ref.Value
	switch {
	case oas.HasType(s, openapi3.TypeArray):
		elem := b.resolver.PrimitiveType(openapi3.TypeObject, "")
		if s.Items != nil {
			elem = b.dataType(s.Items)
		}
		return b.resolver.ArrayType(elem, s.UniqueItems)
	case isMap(s):
		value := b.resolver.PrimitiveType(openapi3.TypeObject, "")
		if s.AdditionalProperties.Schema != nil {
			value = b.dataType(s.AdditionalProperties.Schema)
		}
		return b.resolver.MapType(value)
	case isObjectLike(s):
		return b.resolver.PrimitiveType(openapi3.TypeObject, "")
	default:
		return b.resolver.PrimitiveType(oas.TypeName(s), s.Format)
	}
}

// isObjectLike reports whether a schema becomes a class of its own.
func isObjectLike(s *openapi3.Schema) bool {
	if isMap(s) {
		return false
	}
	if oas.HasType(s, openapi3.TypeObject) {
		return true
	}
	return oas.TypeName(s) == "" && (len(s.Properties) > 0 || oas.IsComposed(s) || s.Discriminator != nil)
}

// isMap reports whether a schema is a string-keyed dictionary without fixed properties.
func isMap(s *openapi3.Schema) bool {
	if len(s.Properties) > 0 || (s.Type != nil && !oas.HasType(s, openapi3.TypeObject)) {
		return false
	}
	ap := s.AdditionalProperties
	return ap.Schema != nil || (ap.Has != nil && *ap.Has)
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
