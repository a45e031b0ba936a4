// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package oas

import (
	"iter"

	"github.com/getkin/kin-openapi/openapi3"
)

// Traverse returns an iterator over all schema references in the tree.
// It handles cycles by tracking visited schemas.
// References are expected to be resolved by the loader, so $ref targets are
// reached through SchemaRef.Value.
func Traverse(ref *openapi3.SchemaRef) iter.Seq[*openapi3.SchemaRef] {
	return func(yield func(*openapi3.SchemaRef) bool) {
		visited := make(map[*openapi3.Schema]struct{})
		traverseWithVisited(ref, yield, visited)
	}
}

func traverseWithVisited(ref *openapi3.SchemaRef, yield func(*openapi3.SchemaRef) bool, visited map[*openapi3.Schema]struct{}) bool {
	if ref == nil || ref.Value == nil {
		return true
	}
	schema := ref.Value
	if _, ok := visited[schema]; ok {
		return true
	}
	visited[schema] = struct{}{}

	if !yield(ref) {
		return false
	}

	// Objects
	for _, name := range PropertyNames(schema) {
		if !traverseWithVisited(schema.Properties[name], yield, visited) {
			return false
		}
	}
	if !traverseWithVisited(schema.AdditionalProperties.Schema, yield, visited) {
		return false
	}

	// Arrays
	if !traverseWithVisited(schema.Items, yield, visited) {
		return false
	}

	// Logic
	for _, s := range schema.AllOf {
		if !traverseWithVisited(s, yield, visited) {
			return false
		}
	}
	for _, s := range schema.AnyOf {
		if !traverseWithVisited(s, yield, visited) {
			return false
		}
	}
	for _, s := range schema.OneOf {
		if !traverseWithVisited(s, yield, visited) {
			return false
		}
	}
	return traverseWithVisited(schema.Not, yield, visited)
}
