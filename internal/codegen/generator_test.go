// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package codegen

import (
	"context"
	"testing"

	"github.com/dacolabs/dartgen/internal/codegen/dart"
	"github.com/dacolabs/dartgen/internal/ir"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func generate(t *testing.T, opts ...Option) ir.Models {
	t.Helper()
	models, err := New(dart.NewResolver(), opts...).Generate(context.Background(), loadPetstore(t))
	require.NoError(t, err)
	return models
}

func mustModel(t *testing.T, models ir.Models, name string) *ir.Model {
	t.Helper()
	m := models.Get(name)
	require.NotNil(t, m, "model %q not found", name)
	return m
}

func TestGenerator_ModelOrder(t *testing.T) {
	models := generate(t)

	assert.Equal(t, []string{
		"Apple", "Banana", "Cat", "Dog", "Fruit", "Labels", "Lion",
		"Mixed", "Pet", "Shape", "Square", "Tags", "Triangle",
	}, models.Names())
}

func TestGenerator_ExplicitMappingPrunesInferredSubtypes(t *testing.T) {
	pet := mustModel(t, generate(t), "Pet")

	require.NotNil(t, pet.Discriminator)
	assert.Equal(t, "petType", pet.Discriminator.PropertyName)
	assert.Equal(t, []string{"dog"}, pet.Discriminator.Keys())
	assert.Equal(t, "Dog", pet.Discriminator.Mapping["dog"])
}

func TestGenerator_ExplicitMappingFullyMatched(t *testing.T) {
	fruit := mustModel(t, generate(t), "Fruit")

	require.NotNil(t, fruit.Discriminator)
	assert.Equal(t, []string{"APPLE", "BANANA"}, fruit.Discriminator.Keys())
	assert.Equal(t, "Apple", fruit.Discriminator.Mapping["APPLE"])
	assert.Equal(t, "Banana", fruit.Discriminator.Mapping["BANANA"])
}

func TestGenerator_InferredMappingKeptWithoutExplicitMapping(t *testing.T) {
	shape := mustModel(t, generate(t), "Shape")

	require.NotNil(t, shape.Discriminator)
	assert.Equal(t, []string{"Square", "Triangle"}, shape.Discriminator.Keys())
}

func TestGenerator_CustomReconciler(t *testing.T) {
	models := generate(t, WithReconciler(InferredMappingReconciler{}))

	pet := mustModel(t, models, "Pet")
	assert.Equal(t, []string{"Cat", "Lion", "dog"}, pet.Discriminator.Keys())
}

func TestGenerator_CreateDiscriminator(t *testing.T) {
	doc := loadPetstore(t)
	g := New(dart.NewResolver())

	d := g.CreateDiscriminator(doc, "Pet", schemaOf(t, doc, "Pet"))
	assert.Equal(t, []string{"dog"}, d.Keys())

	assert.Nil(t, g.CreateDiscriminator(doc, "Dog", schemaOf(t, doc, "Dog")))
	assert.Nil(t, g.CreateDiscriminator(doc, "Pet", nil))
}

func TestGenerator_Inheritance(t *testing.T) {
	models := generate(t)

	dog := mustModel(t, models, "Dog")
	assert.Equal(t, "Pet", dog.Parent)
	require.Len(t, dog.Properties, 1)
	assert.Equal(t, "bark", dog.Properties[0].BaseName)
	assert.Equal(t, "bool", dog.Properties[0].DataType)
	assert.Nil(t, dog.Discriminator)

	lion := mustModel(t, models, "Lion")
	assert.Empty(t, lion.Parent)
	assert.Equal(t, []string{"Cat"}, lion.Interfaces)
}

func TestGenerator_Properties(t *testing.T) {
	pet := mustModel(t, generate(t), "Pet")

	require.Len(t, pet.Properties, 2)
	assert.Equal(t, "name", pet.Properties[0].BaseName)
	assert.False(t, pet.Properties[0].Required)
	assert.Equal(t, "petType", pet.Properties[1].Name)
	assert.Equal(t, "String", pet.Properties[1].DataType)
	assert.True(t, pet.Properties[1].Required)

	cat := mustModel(t, generate(t), "Cat")
	require.Len(t, cat.Properties, 1)
	tags := cat.Properties[0]
	assert.True(t, tags.IsArray)
	assert.Equal(t, "List<String>", tags.DataType)
	require.NotNil(t, tags.Items)
	assert.Equal(t, "String", tags.Items.DataType)
}

func TestGenerator_ModelDataTypes(t *testing.T) {
	models := generate(t)

	tests := []struct {
		model     string
		dataType  string
		wantID    string
		wantCamel string
	}{
		{"Pet", "Pet", "pet", "Pet"},
		{"Mixed", "Mixed", "mixed", "Mixed"},
		{"Tags", "List<String>", "listLessThanStringGreaterThan", "ListLessThanStringGreaterThan"},
		{"Labels", "Map<String, int>", "mapLessThanStringCommaIntGreaterThan", "MapLessThanStringCommaIntGreaterThan"},
	}

	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			m := mustModel(t, models, tt.model)
			assert.Equal(t, tt.dataType, m.DataType)
			assert.Equal(t, tt.wantID, m.Extensions[ir.DataTypeAsIdentifier])
			assert.Equal(t, tt.wantCamel, m.Extensions[ir.DataTypeAsIdentifierCamelCase])
		})
	}
}

func TestGenerator_ComposedSchemasAnnotated(t *testing.T) {
	mixed := mustModel(t, generate(t), "Mixed")

	cs := mixed.ComposedSchemas
	require.NotNil(t, cs)
	require.Len(t, cs.AnyOf, 2)
	require.Len(t, cs.AllOf, 1)
	require.NotNil(t, cs.Not)

	list := cs.AnyOf[0]
	assert.True(t, list.IsArray)
	assert.Equal(t, "List<String>", list.DataType)
	assert.Equal(t, "listLessThanStringGreaterThan", list.Extensions[ir.DataTypeAsIdentifier])
	assert.Equal(t, "ListLessThanStringGreaterThan", list.Extensions[ir.DataTypeAsIdentifierCamelCase])

	nested := cs.AnyOf[1].ComposedSchemas
	require.NotNil(t, nested)
	require.Len(t, nested.OneOf, 3)
	assert.Equal(t, "String", nested.OneOf[0].DataType)
	assert.Equal(t, "string", nested.OneOf[0].Extensions[ir.DataTypeAsIdentifier])

	pet := nested.OneOf[1]
	assert.True(t, pet.IsModel)
	assert.Equal(t, "Pet", pet.BaseName)
	assert.Equal(t, "pet", pet.Extensions[ir.DataTypeAsIdentifier])
	assert.Equal(t, "Pet", pet.Extensions[ir.DataTypeAsIdentifierCamelCase])
	assert.Nil(t, pet.ComposedSchemas)

	// Same data type, same identifiers, wherever it appears.
	assert.Equal(t, list.Extensions, nested.OneOf[2].Extensions)

	assert.Equal(t, "int", cs.Not.DataType)
	assert.Equal(t, "int", cs.Not.Extensions[ir.DataTypeAsIdentifier])
	assert.Equal(t, "Int", cs.Not.Extensions[ir.DataTypeAsIdentifierCamelCase])

	for _, p := range collect(cs) {
		assert.Len(t, p.Extensions, 2, p.BaseName)
	}

	require.Len(t, mixed.Properties, 1)
	assert.Equal(t, "id", mixed.Properties[0].BaseName)
}

func TestGenerator_Parallel(t *testing.T) {
	sequential := generate(t)
	parallel := generate(t, WithOptions(Options{Parallelism: 4}))

	if diff := cmp.Diff(sequential, parallel); diff != "" {
		t.Errorf("parallel annotation differs (-sequential +parallel):\n%s", diff)
	}
}

func TestGenerator_PostProcessIdempotent(t *testing.T) {
	g := New(dart.NewResolver())
	models, err := g.Generate(context.Background(), loadPetstore(t))
	require.NoError(t, err)
	before := generate(t)

	require.NoError(t, g.PostProcessAllModels(context.Background(), models))

	if diff := cmp.Diff(before, models); diff != "" {
		t.Errorf("second post-processing changed models (-once +twice):\n%s", diff)
	}
}

func TestGenerator_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(dart.NewResolver()).Generate(ctx, loadPetstore(t))
	require.ErrorIs(t, err, context.Canceled)
}

func TestGenerator_EmptyDocument(t *testing.T) {
	g := New(dart.NewResolver())

	models, err := g.Generate(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, models)

	models, err = g.Generate(context.Background(), &openapi3.T{})
	require.NoError(t, err)
	assert.Empty(t, models)
}

func TestGenerator_LogsSerializationLibrary(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	g := New(dart.NewResolver(), WithLogger(zap.New(core).Sugar()))

	_, err := g.Generate(context.Background(), loadPetstore(t))
	require.NoError(t, err)

	entries := logs.FilterMessage("using serialization library").All()
	require.Len(t, entries, 1)
	assert.Equal(t, SerializationLibraryNative, entries[0].ContextMap()["library"])
}

func TestGenerator_WarnUnmatchedMappings(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	doc := loadPetstore(t)
	pet := schemaOf(t, doc, "Pet")
	pet.Discriminator.Mapping["bird"] = "#/components/schemas/Bird"

	g := New(dart.NewResolver(),
		WithLogger(zap.New(core).Sugar()),
		WithOptions(Options{WarnUnmatchedMappings: true}))
	models, err := g.Generate(context.Background(), doc)
	require.NoError(t, err)

	// "bird" is inferred from the explicit mapping itself, so it is kept.
	assert.Equal(t, []string{"bird", "dog"}, mustModel(t, models, "Pet").Discriminator.Keys())
	assert.Zero(t, logs.FilterMessage("discriminator mapping has no matching subtype").Len())
}

func TestGenerator_WarnsInlineDiscriminator(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	doc := loadPetstore(t)
	mixed := schemaOf(t, doc, "Mixed")
	mixed.AnyOf[1].Value.Discriminator = &openapi3.Discriminator{PropertyName: "kind"}

	_, err := New(dart.NewResolver(), WithLogger(zap.New(core).Sugar())).Generate(context.Background(), doc)
	require.NoError(t, err)

	entries := logs.FilterMessage("ignoring discriminator on inline schema").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "Mixed", entries[0].ContextMap()["schema"])
	assert.Equal(t, "kind", entries[0].ContextMap()["property"])
}

type fixedInferrer map[string]*ir.Discriminator

func (f fixedInferrer) Infer(schemaName string, _ *openapi3.Schema) *ir.Discriminator {
	return f[schemaName].Clone()
}

func TestGenerator_WithInferrer(t *testing.T) {
	inferred := ir.NewDiscriminator("petType", "petType")
	inferred.Add("dog", "Dog")
	inferred.Add("wolf", "Wolf")

	models := generate(t, WithInferrer(fixedInferrer{"Pet": inferred}))

	assert.Equal(t, []string{"dog"}, mustModel(t, models, "Pet").Discriminator.Keys())
	assert.Nil(t, mustModel(t, models, "Shape").Discriminator)
}

func TestGenerator_WithAnnotator(t *testing.T) {
	derive := func(n ir.Node) ir.Extensions {
		return ir.Extensions{
			ir.DataTypeAsIdentifier: "t_" + n.GetDataType(),
			"x-dart-type":           n.GetDataType(),
		}
	}

	models := generate(t, WithAnnotator(NewAnnotator(derive, nil)))

	tags := mustModel(t, models, "Tags")
	assert.Equal(t, ir.Extensions{ir.DataTypeAsIdentifier: "t_List<String>"}, tags.Extensions)
}
