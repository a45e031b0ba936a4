// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package ir defines the intermediate representation of generated models.
package ir

// Node is any IR element carrying a data type and derived metadata.
type Node interface {
	GetDataType() string
	GetComposedSchemas() *ComposedSchemas
	Extend(ext Extensions)
}

// ComposedSchemas holds the anyOf/oneOf/allOf/not branches of a node.
type ComposedSchemas struct {
	AnyOf []*Property `yaml:"anyOf,omitempty" json:"anyOf,omitempty"`
	OneOf []*Property `yaml:"oneOf,omitempty" json:"oneOf,omitempty"`
	AllOf []*Property `yaml:"allOf,omitempty" json:"allOf,omitempty"`
	Not   *Property   `yaml:"not,omitempty" json:"not,omitempty"`
}

// IsEmpty reports whether no branch is declared.
func (c *ComposedSchemas) IsEmpty() bool {
	return c == nil || (len(c.AnyOf) == 0 && len(c.OneOf) == 0 && len(c.AllOf) == 0 && c.Not == nil)
}

// Property is a single typed slot: a model field or a composed branch.
type Property struct {
	Name            string           `yaml:"name" json:"name"`         // identifier in generated code
	BaseName        string           `yaml:"baseName" json:"baseName"` // name in the API description
	DataType        string           `yaml:"dataType" json:"dataType"`
	Description     string           `yaml:"description,omitempty" json:"description,omitempty"`
	Required        bool             `yaml:"required,omitempty" json:"required,omitempty"`
	Nullable        bool             `yaml:"nullable,omitempty" json:"nullable,omitempty"`
	IsArray         bool             `yaml:"isArray,omitempty" json:"isArray,omitempty"`
	IsMap           bool             `yaml:"isMap,omitempty" json:"isMap,omitempty"`
	IsModel         bool             `yaml:"isModel,omitempty" json:"isModel,omitempty"`
	Items           *Property        `yaml:"items,omitempty" json:"items,omitempty"`
	ComposedSchemas *ComposedSchemas `yaml:"composedSchemas,omitempty" json:"composedSchemas,omitempty"`
	Extensions      Extensions       `yaml:"extensions,omitempty" json:"extensions,omitempty"`
}

// GetDataType returns the resolved data type string.
func (p *Property) GetDataType() string {
	if p == nil {
		return ""
	}
	return p.DataType
}

// GetComposedSchemas returns the nested composed branches, if any.
// A nil property has none.
func (p *Property) GetComposedSchemas() *ComposedSchemas {
	if p == nil {
		return nil
	}
	return p.ComposedSchemas
}

// Extend merges ext into the property's extensions.
func (p *Property) Extend(ext Extensions) { p.Extensions = p.Extensions.Merge(ext) }

// Model is a named, top-level type built from a component schema.
type Model struct {
	Name            string           `yaml:"name" json:"name"`           // schema name in the API description
	ClassName       string           `yaml:"className" json:"className"` // type name in generated code
	DataType        string           `yaml:"dataType" json:"dataType"`
	Description     string           `yaml:"description,omitempty" json:"description,omitempty"`
	Parent          string           `yaml:"parent,omitempty" json:"parent,omitempty"`
	Interfaces      []string         `yaml:"interfaces,omitempty" json:"interfaces,omitempty"`
	Properties      []*Property      `yaml:"properties,omitempty" json:"properties,omitempty"`
	Discriminator   *Discriminator   `yaml:"discriminator,omitempty" json:"discriminator,omitempty"`
	ComposedSchemas *ComposedSchemas `yaml:"composedSchemas,omitempty" json:"composedSchemas,omitempty"`
	Extensions      Extensions       `yaml:"extensions,omitempty" json:"extensions,omitempty"`
}

// GetDataType returns the model's own data type string.
func (m *Model) GetDataType() string {
	if m == nil {
		return ""
	}
	return m.DataType
}

// GetComposedSchemas returns the model's composed branches, if any.
// A nil model has none.
func (m *Model) GetComposedSchemas() *ComposedSchemas {
	if m == nil {
		return nil
	}
	return m.ComposedSchemas
}

// Extend merges ext into the model's extensions.
func (m *Model) Extend(ext Extensions) { m.Extensions = m.Extensions.Merge(ext) }

// Models is an ordered collection of models.
type Models []*Model

// Get returns the model with the given schema name, or nil.
func (ms Models) Get(name string) *Model {
	for _, m := range ms {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// Names returns the schema names in collection order.
func (ms Models) Names() []string {
	names := make([]string, len(ms))
	for i, m := range ms {
		names[i] = m.Name
	}
	return names
}
