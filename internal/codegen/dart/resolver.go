// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package dart resolves OpenAPI schema types to Dart type names.
package dart

import "github.com/dacolabs/dartgen/internal/naming"

// Resolver maps OpenAPI types to Dart types and identifiers.
type Resolver struct{}

// NewResolver creates a Dart Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// PrimitiveType maps a schema type and format to a Dart type.
func (r *Resolver) PrimitiveType(schemaType, format string) string {
	switch format {
	case "date", "date-time":
		return "DateTime"
	case "binary":
		return "MultipartFile"
	}

	switch schemaType {
	case "string":
		return "String"
	case "integer":
		return "int"
	case "number":
		return "double"
	case "boolean":
		return "bool"
	default:
		return "Object"
	}
}

// ArrayType returns List<T>, or Set<T> for unique items.
func (r *Resolver) ArrayType(elemType string, unique bool) string {
	if unique {
		return "Set<" + elemType + ">"
	}
	return "List<" + elemType + ">"
}

// MapType returns Map<String, T>.
func (r *Resolver) MapType(valueType string) string {
	return "Map<String, " + valueType + ">"
}

// RefType returns the class name of a referenced schema.
func (r *Resolver) RefType(schemaName string) string {
	return naming.ToClassName(schemaName)
}

// FormatModelName returns the class name of a schema.
func (r *Resolver) FormatModelName(schemaName string) string {
	return naming.ToClassName(schemaName)
}

// FormatPropertyName returns the field name of a property.
func (r *Resolver) FormatPropertyName(propName string) string {
	return naming.ToVarName(propName)
}
