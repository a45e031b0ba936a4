// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package oas

import (
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
)

func stringSchema() *openapi3.SchemaRef {
	return &openapi3.SchemaRef{Value: &openapi3.Schema{Type: &openapi3.Types{openapi3.TypeString}}}
}

func TestTraverse_Properties(t *testing.T) {
	root := &openapi3.SchemaRef{Value: &openapi3.Schema{
		Type: &openapi3.Types{openapi3.TypeObject},
		Properties: openapi3.Schemas{
			"name": stringSchema(),
			"tags": {Value: &openapi3.Schema{
				Type:  &openapi3.Types{openapi3.TypeArray},
				Items: stringSchema(),
			}},
		},
	}}

	var count int
	for range Traverse(root) {
		count++
	}

	// Root + name + tags + tags items
	assert.Equal(t, 4, count)
}

func TestTraverse_Composed(t *testing.T) {
	root := &openapi3.SchemaRef{Value: &openapi3.Schema{
		AnyOf: openapi3.SchemaRefs{stringSchema()},
		OneOf: openapi3.SchemaRefs{stringSchema(), stringSchema()},
		AllOf: openapi3.SchemaRefs{stringSchema()},
		Not:   stringSchema(),
	}}

	var count int
	for range Traverse(root) {
		count++
	}

	assert.Equal(t, 6, count)
}

func TestTraverse_CircularRefs(t *testing.T) {
	node := &openapi3.Schema{Type: &openapi3.Types{openapi3.TypeObject}}
	ref := &openapi3.SchemaRef{Ref: "#/components/schemas/Node", Value: node}
	node.Properties = openapi3.Schemas{"next": ref}

	var count int
	for range Traverse(ref) {
		count++
	}

	assert.Equal(t, 1, count)
}

func TestTraverse_EarlyExit(t *testing.T) {
	root := &openapi3.SchemaRef{Value: &openapi3.Schema{
		OneOf: openapi3.SchemaRefs{stringSchema(), stringSchema(), stringSchema()},
	}}

	var count int
	for range Traverse(root) {
		count++
		if count == 2 {
			break
		}
	}

	assert.Equal(t, 2, count)
}

func TestTraverse_Nil(t *testing.T) {
	var count int
	for range Traverse(nil) {
		count++
	}
	assert.Zero(t, count)
}
