// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNode_NilReceivers(t *testing.T) {
	var m *Model
	var p *Property

	assert.Empty(t, m.GetDataType())
	assert.Nil(t, m.GetComposedSchemas())
	assert.Empty(t, p.GetDataType())
	assert.Nil(t, p.GetComposedSchemas())
}

func TestModels_GetAndNames(t *testing.T) {
	models := Models{{Name: "Pet"}, {Name: "Dog"}}

	assert.Equal(t, []string{"Pet", "Dog"}, models.Names())
	assert.Equal(t, "Dog", models.Get("Dog").Name)
	assert.Nil(t, models.Get("Cat"))
}
