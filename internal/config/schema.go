// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package config

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/google/jsonschema-go/jsonschema"
)

// Schema returns the JSON Schema of dartgen.yaml.
func Schema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:     "object",
		Required: []string{"version", "input"},
		Properties: map[string]*jsonschema.Schema{
			"version":      {Type: "integer", Minimum: ptr(1.0)},
			"input":        {Type: "string", MinLength: ptr(1)},
			"output":       {Type: "string"},
			"outputFormat": {Type: "string", Enum: []any{FormatYAML, FormatJSON}},
			"generator": {
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					"serializationLibrary":        {Type: "string"},
					"legacyDiscriminatorBehavior": {Type: "boolean"},
					"warnUnmatchedMappings":       {Type: "boolean"},
					"parallelism":                 {Type: "integer", Minimum: ptr(0.0)},
					"validateSpec":                {Type: "boolean"},
				},
				AdditionalProperties: noAdditional(),
			},
			"log": {
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					"level":       {Type: "string"},
					"development": {Type: "boolean"},
				},
				AdditionalProperties: noAdditional(),
			},
		},
		AdditionalProperties: noAdditional(),
	}
}

func noAdditional() *jsonschema.Schema {
	return &jsonschema.Schema{Not: &jsonschema.Schema{}}
}

// validateDocument checks a decoded YAML document against Schema.
func validateDocument(doc map[string]any) error {
	// Round-trip through JSON so numbers and nested maps take their JSON shapes.
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal config for validation: %w", err)
	}
	var instance any
	if err := json.Unmarshal(data, &instance); err != nil {
		return fmt.Errorf("failed to unmarshal config for validation: %w", err)
	}

	resolved, err := Schema().Resolve(&jsonschema.ResolveOptions{})
	if err != nil {
		return fmt.Errorf("failed to resolve config schema: %w", err)
	}
	if err := resolved.Validate(instance); err != nil {
		return fmt.Errorf("config does not match schema: %w", err)
	}
	return nil
}

func ptr[T any](v T) *T { return &v }
