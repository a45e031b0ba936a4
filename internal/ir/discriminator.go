// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package ir

import (
	"slices"
	"sort"
)

// MappedModel links a discriminator value to the model it selects.
type MappedModel struct {
	MappingName string `yaml:"mappingName" json:"mappingName"`
	ModelName   string `yaml:"modelName" json:"modelName"`
}

// Discriminator is the resolved discriminator of a polymorphic model.
type Discriminator struct {
	PropertyName     string            `yaml:"propertyName" json:"propertyName"`
	PropertyBaseName string            `yaml:"propertyBaseName" json:"propertyBaseName"`
	Mapping          map[string]string `yaml:"mapping,omitempty" json:"mapping,omitempty"` // discriminator value -> model name
	MappedModels     []MappedModel     `yaml:"mappedModels,omitempty" json:"mappedModels,omitempty"`
}

// NewDiscriminator creates an empty discriminator for the given property.
func NewDiscriminator(propertyName, propertyBaseName string) *Discriminator {
	return &Discriminator{
		PropertyName:     propertyName,
		PropertyBaseName: propertyBaseName,
		Mapping:          make(map[string]string),
	}
}

// Has reports whether key is present in the mapping.
func (d *Discriminator) Has(key string) bool {
	if d == nil {
		return false
	}
	_, ok := d.Mapping[key]
	return ok
}

// HasModel reports whether any mapped model selects modelName.
func (d *Discriminator) HasModel(modelName string) bool {
	if d == nil {
		return false
	}
	for _, mm := range d.MappedModels {
		if mm.ModelName == modelName {
			return true
		}
	}
	return false
}

// Add records a mapping entry. An existing key is left untouched.
func (d *Discriminator) Add(key, modelName string) {
	if d.Mapping == nil {
		d.Mapping = make(map[string]string)
	}
	if _, ok := d.Mapping[key]; ok {
		return
	}
	d.Mapping[key] = modelName
	d.MappedModels = append(d.MappedModels, MappedModel{MappingName: key, ModelName: modelName})
}

// Remove drops key from the mapping and every mapped model carrying it.
func (d *Discriminator) Remove(key string) {
	delete(d.Mapping, key)
	d.MappedModels = slices.DeleteFunc(d.MappedModels, func(mm MappedModel) bool {
		return mm.MappingName == key
	})
}

// Keys returns the mapping keys in sorted order.
func (d *Discriminator) Keys() []string {
	if d == nil {
		return nil
	}
	keys := make([]string, 0, len(d.Mapping))
	for k := range d.Mapping {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SortMappedModels orders mapped models by mapping name.
func (d *Discriminator) SortMappedModels() {
	sort.SliceStable(d.MappedModels, func(i, j int) bool {
		return d.MappedModels[i].MappingName < d.MappedModels[j].MappingName
	})
}

// Clone returns a deep copy of d.
func (d *Discriminator) Clone() *Discriminator {
	if d == nil {
		return nil
	}
	c := &Discriminator{
		PropertyName:     d.PropertyName,
		PropertyBaseName: d.PropertyBaseName,
		Mapping:          make(map[string]string, len(d.Mapping)),
		MappedModels:     slices.Clone(d.MappedModels),
	}
	for k, v := range d.Mapping {
		c.Mapping[k] = v
	}
	return c
}
