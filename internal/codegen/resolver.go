// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package codegen

// TypeResolver converts OpenAPI schema types to target-language type strings and naming conventions.
// The generator delegates every language-specific decision to it.
type TypeResolver interface {
	// PrimitiveType maps an OpenAPI type and format to a target type string.
	// Format is checked first, allowing "date-time" to override "string".
	PrimitiveType(schemaType, format string) string

	// ArrayType wraps an element type string in a list (or set, when unique) type.
	ArrayType(elemType string, unique bool) string

	// MapType wraps a value type string in a string-keyed map type.
	MapType(valueType string) string

	// RefType returns the type string for a component schema reference.
	RefType(schemaName string) string

	// FormatModelName formats a component schema name as a model class name.
	FormatModelName(schemaName string) string

	// FormatPropertyName formats a property name as a field identifier.
	FormatPropertyName(propName string) string
}
