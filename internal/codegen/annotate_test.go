// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package codegen

import (
	"testing"

	"github.com/dacolabs/dartgen/internal/ir"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leaf(name, dataType string) *ir.Property {
	return &ir.Property{Name: name, BaseName: name, DataType: dataType}
}

// composedTree builds:
//
//	anyOf: [a1 {oneOf: [n1, n2]}, a2]
//	oneOf: [o1]
//	allOf: [l1]
//	not:   x {anyOf: [x1]}
func composedTree() *ir.Model {
	a1 := leaf("a1", "Object")
	a1.ComposedSchemas = &ir.ComposedSchemas{
		OneOf: []*ir.Property{leaf("n1", "List<String>"), leaf("n2", "Pet")},
	}
	x := leaf("x", "Object")
	x.ComposedSchemas = &ir.ComposedSchemas{
		AnyOf: []*ir.Property{leaf("x1", "List<String>")},
	}
	return &ir.Model{
		Name:      "Mixed",
		ClassName: "Mixed",
		DataType:  "Mixed",
		ComposedSchemas: &ir.ComposedSchemas{
			AnyOf: []*ir.Property{a1, leaf("a2", "int")},
			OneOf: []*ir.Property{leaf("o1", "Map<String, int>")},
			AllOf: []*ir.Property{leaf("l1", "String")},
			Not:   x,
		},
	}
}

func collect(cs *ir.ComposedSchemas) []*ir.Property {
	var props []*ir.Property
	WalkComposedSchemas(cs, func(p *ir.Property) { props = append(props, p) })
	return props
}

func TestWalkComposedSchemas_Order(t *testing.T) {
	var order []string
	WalkComposedSchemas(composedTree().ComposedSchemas, func(p *ir.Property) {
		order = append(order, p.BaseName)
	})

	assert.Equal(t, []string{"a1", "n1", "n2", "a2", "o1", "l1", "x", "x1"}, order)
}

func TestWalkComposedSchemas_PreOrder(t *testing.T) {
	m := composedTree()
	parent := m.ComposedSchemas.AnyOf[0]

	var parentAnnotatedFirst bool
	WalkComposedSchemas(m.ComposedSchemas, func(p *ir.Property) {
		if p.BaseName == "n1" {
			_, parentAnnotatedFirst = parent.Extensions.Get(ir.DataTypeAsIdentifier)
		}
		p.Extend(DataTypeIdentifiers(p))
	})

	assert.True(t, parentAnnotatedFirst)
}

func TestWalkComposedSchemas_AbsentBranches(t *testing.T) {
	var calls int
	apply := func(*ir.Property) { calls++ }

	WalkComposedSchemas(nil, apply)
	WalkComposedSchemas(&ir.ComposedSchemas{}, apply)
	WalkComposedSchemas(&ir.ComposedSchemas{OneOf: []*ir.Property{nil}}, apply)

	assert.Zero(t, calls)
}

func TestAnnotate_RecursiveCoverage(t *testing.T) {
	m := composedTree()

	visited := Annotate(m, DataTypeIdentifiers)

	assert.Equal(t, 8, visited)
	for _, p := range collect(m.ComposedSchemas) {
		assert.Contains(t, p.Extensions, ir.DataTypeAsIdentifier, p.BaseName)
		assert.Contains(t, p.Extensions, ir.DataTypeAsIdentifierCamelCase, p.BaseName)
	}
	// Annotate leaves the root alone.
	assert.Empty(t, m.Extensions)
}

func TestAnnotate_Idempotent(t *testing.T) {
	once := composedTree()
	twice := composedTree()
	annotator := NewAnnotator(nil, nil)

	annotator.AnnotateModel(once)
	annotator.AnnotateModel(twice)
	annotator.AnnotateModel(twice)

	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("annotating twice changed the tree (-once +twice):\n%s", diff)
	}
}

func TestAnnotate_ListOfStringConsistent(t *testing.T) {
	m := composedTree()
	NewAnnotator(nil, nil).AnnotateModel(m)

	var seen int
	for _, p := range collect(m.ComposedSchemas) {
		if p.DataType != "List<String>" {
			continue
		}
		seen++
		assert.Equal(t, "listLessThanStringGreaterThan", p.Extensions[ir.DataTypeAsIdentifier])
		assert.Equal(t, "ListLessThanStringGreaterThan", p.Extensions[ir.DataTypeAsIdentifierCamelCase])
	}
	assert.Equal(t, 2, seen)
}

func TestAnnotator_AnnotateModelRoot(t *testing.T) {
	m := composedTree()

	NewAnnotator(nil, nil).AnnotateModel(m)

	assert.Equal(t, ir.Extensions{
		ir.DataTypeAsIdentifier:          "mixed",
		ir.DataTypeAsIdentifierCamelCase: "Mixed",
	}, m.Extensions)
}

func TestAnnotator_ModelWithoutComposedSchemas(t *testing.T) {
	m := &ir.Model{Name: "Tags", DataType: "List<String>"}

	NewAnnotator(nil, nil).AnnotateModel(m)
	NewAnnotator(nil, nil).AnnotateModel(nil)

	assert.Equal(t, "listLessThanStringGreaterThan", m.Extensions[ir.DataTypeAsIdentifier])
}

func TestAnnotator_CustomDerive(t *testing.T) {
	m := composedTree()
	derive := func(n ir.Node) ir.Extensions {
		return ir.Extensions{ir.DataTypeAsIdentifier: "x-" + n.GetDataType()}
	}

	NewAnnotator(derive, nil).AnnotateModel(m)

	assert.Equal(t, "x-Mixed", m.Extensions[ir.DataTypeAsIdentifier])
	props := collect(m.ComposedSchemas)
	require.NotEmpty(t, props)
	for _, p := range props {
		assert.Equal(t, "x-"+p.DataType, p.Extensions[ir.DataTypeAsIdentifier])
		assert.NotContains(t, p.Extensions, ir.DataTypeAsIdentifierCamelCase)
	}
}

func TestAnnotate_NilNode(t *testing.T) {
	tests := []struct {
		name string
		node ir.Node
	}{
		{"nil interface", nil},
		{"nil model", (*ir.Model)(nil)},
		{"nil property", (*ir.Property)(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.Zero(t, Annotate(tt.node, DataTypeIdentifiers))
			})
		})
	}

	assert.NotPanics(t, func() { NewAnnotator(nil, nil).AnnotateModel(nil) })
}

func TestDataTypeIdentifiers(t *testing.T) {
	tests := []struct {
		dataType  string
		wantID    string
		wantCamel string
	}{
		{"List<String>", "listLessThanStringGreaterThan", "ListLessThanStringGreaterThan"},
		{"Café", "caf", "Caf"},
		{"Map<String, int>", "mapLessThanStringCommaIntGreaterThan", "MapLessThanStringCommaIntGreaterThan"},
		{"Pet", "pet", "Pet"},
		{"DateTime", "dateTime", "DateTime"},
	}

	for _, tt := range tests {
		t.Run(tt.dataType, func(t *testing.T) {
			ext := DataTypeIdentifiers(&ir.Property{DataType: tt.dataType})
			assert.Equal(t, tt.wantID, ext[ir.DataTypeAsIdentifier])
			assert.Equal(t, tt.wantCamel, ext[ir.DataTypeAsIdentifierCamelCase])
		})
	}
}

func TestAnnotator_DropsUnknownKeys(t *testing.T) {
	m := composedTree()
	derive := func(n ir.Node) ir.Extensions {
		ext := DataTypeIdentifiers(n)
		ext["x-vendor"] = "ignored"
		return ext
	}

	NewAnnotator(derive, nil).AnnotateModel(m)

	assert.NotContains(t, m.Extensions, ir.ExtensionKey("x-vendor"))
	for _, p := range collect(m.ComposedSchemas) {
		assert.Len(t, p.Extensions, 2, p.BaseName)
		assert.NotContains(t, p.Extensions, ir.ExtensionKey("x-vendor"))
	}
}
