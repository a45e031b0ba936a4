// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"github.com/charmbracelet/huh"
)

// RunInitForm runs the interactive form for the init command.
// It fills the provided pointers with user input.
func RunInitForm(input, output, format *string) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("OpenAPI document").
				Placeholder("openapi.yaml").
				Validate(documentValidator).
				Value(input),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Model output format").
				Options(
					huh.NewOption("YAML (recommended)", "yaml"),
					huh.NewOption("JSON", "json"),
				).
				Value(format),
			huh.NewInput().
				Title("Model output file").
				Description("Leave empty to print models to stdout").
				Value(output),
		),
	).WithTheme(Theme()).Run()
}
