// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package oas

import (
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// ComponentSchemaPrefix is the JSON pointer prefix of component schemas.
const ComponentSchemaPrefix = "#/components/schemas/"

// IsComponentRef returns true if ref points into components/schemas,
// either locally or in another file.
func IsComponentRef(ref string) bool {
	return strings.Contains(ref, ComponentSchemaPrefix)
}

// RefName extracts the schema name from a $ref string.
// "#/components/schemas/Pet" and "pets.yaml#/components/schemas/Pet" both yield "Pet".
func RefName(ref string) string {
	if ref == "" {
		return ""
	}
	if i := strings.LastIndex(ref, "/"); i >= 0 {
		return ref[i+1:]
	}
	return ref
}

// SchemaNames returns the component schema names of doc in sorted order.
func SchemaNames(doc *openapi3.T) []string {
	if doc == nil || doc.Components == nil {
		return nil
	}
	names := make([]string, 0, len(doc.Components.Schemas))
	for name := range doc.Components.Schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HasType reports whether the schema declares typ among its types.
func HasType(s *openapi3.Schema, typ string) bool {
	if s == nil || s.Type == nil {
		return false
	}
	for _, t := range *s.Type {
		if t == typ {
			return true
		}
	}
	return false
}

// TypeName returns the first declared type, or "" when untyped.
func TypeName(s *openapi3.Schema) string {
	if s == nil || s.Type == nil || len(*s.Type) == 0 {
		return ""
	}
	return (*s.Type)[0]
}

// IsComposed reports whether the schema declares any of allOf/anyOf/oneOf/not.
func IsComposed(s *openapi3.Schema) bool {
	return s != nil && (len(s.AllOf) > 0 || len(s.AnyOf) > 0 || len(s.OneOf) > 0 || s.Not != nil)
}

// PropertyNames returns the property names of s in sorted order.
func PropertyNames(s *openapi3.Schema) []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.Properties))
	for name := range s.Properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
